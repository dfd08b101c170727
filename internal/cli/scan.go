package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rmarchan/subjuntivo/internal/pipeline"
)

var (
	scanOutJSON string
	scanOutCSV  string
	scanOutMD   string
	scanTimeout time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noRobots    bool
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch a web page and analyze its visible text",
	Long: `Scan downloads a page, strips markup, and runs the subjunctive
analysis over the visible text. Fetches honor robots.txt, are
rate-limited per host, and cached on disk.

Example:
  subjuntivo scan https://es.wikipedia.org/wiki/Subjuntivo
  subjuntivo scan https://example.com/cuento --csv verbos.csv --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&scanOutJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&scanOutCSV, "csv", "", "output CSV path (optional)")
	scanCmd.Flags().StringVar(&scanOutMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 2*time.Minute, "overall scan timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "", "HTTP User-Agent override")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")

	// Morphology flags
	scanCmd.Flags().StringVar(&morphProvider, "morph", "", "morphology provider for lemma refinement (openai)")
	scanCmd.Flags().StringVar(&morphModel, "morph-model", "", "morphology model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noRobots {
		cfg.HTTP.RespectRobots = false
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", scanTimeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", cfg.Cache.Enabled)
		fmt.Fprintln(os.Stderr)
	}

	p := pipeline.NewPipeline(cfg)

	report, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "✓ Found %d subjunctive forms in %d sentences\n",
			report.Summary.TotalOccurrences, report.Summary.SentenceCount)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, scanOutJSON, scanOutCSV, scanOutMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}
