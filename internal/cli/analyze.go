package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmarchan/subjuntivo/internal/model"
	"github.com/rmarchan/subjuntivo/internal/pipeline"
)

var (
	outJSON       string
	outCSV        string
	outMD         string
	forceFallback bool
	noPOSGate     bool
	noTriggers    bool
	morphProvider string
	morphModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a local file or stdin for subjunctive forms",
	Long: `Analyze reads Spanish text from a file, or from stdin when no file
is given, and reports every detected subjunctive verb form with its
tense, person, clause and lemma.

Example:
  subjuntivo analyze cuento.txt
  subjuntivo analyze cuento.txt --csv verbos.csv --json report.json
  cat cuento.txt | subjuntivo analyze`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
	analyzeCmd.Flags().StringVar(&outCSV, "csv", "", "output CSV path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path")

	analyzeCmd.Flags().BoolVar(&forceFallback, "force-fallback", false, "use the fallback tokenizer (no POS tags)")
	analyzeCmd.Flags().BoolVar(&noPOSGate, "no-pos-gate", false, "disable the POS gate on suffix rules")
	analyzeCmd.Flags().BoolVar(&noTriggers, "no-trigger-heuristic", false, "disable trigger-context broadening")

	analyzeCmd.Flags().StringVar(&morphProvider, "morph", "", "morphology provider for lemma refinement (openai)")
	analyzeCmd.Flags().StringVar(&morphModel, "morph-model", "", "morphology model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	var report *model.Report
	if len(args) == 1 {
		report, err = p.AnalyzeFile(ctx, args[0])
	} else {
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		report, err = p.AnalyzeText(ctx, "stdin", string(data))
	}
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	return p.RenderReport(report, outJSON, outCSV, outMD, cfg.Output.Verbose)
}

// buildConfig layers viper (config file, env) over the defaults, then
// applies command flags on top.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.Output.Verbose = true
	}
	if forceFallback {
		cfg.Tokenizer.ForceFallback = true
	}
	if noPOSGate {
		cfg.Classifier.POSGate = false
	}
	if noTriggers {
		cfg.Classifier.TriggerHeuristic = false
	}

	if morphProvider != "" {
		cfg.Morph.Provider = morphProvider
	}
	if morphModel != "" {
		cfg.Morph.Model = morphModel
	}
	if cfg.Morph.Provider == "openai" {
		cfg.Morph.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Morph.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
