// Package pipeline orchestrates the full analysis flow: acquire text
// from a file, stdin or a fetched page, strip HTML when present, run
// the analyzer, optionally refine lemmas, and render the report.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmarchan/subjuntivo/internal/analyze"
	"github.com/rmarchan/subjuntivo/internal/extract"
	"github.com/rmarchan/subjuntivo/internal/model"
	"github.com/rmarchan/subjuntivo/internal/morph"
)

// Pipeline ties the fetcher, the analyzer, the optional morphology
// enhancer and the renderers together.
type Pipeline struct {
	analyzer *analyze.Analyzer
	fetcher  *Fetcher
	renderer *Renderer
	enhancer *morph.Enhancer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) *Pipeline {
	var enhancer *morph.Enhancer
	if cfg.Morph.Provider != "" {
		e, err := morph.NewEnhancer(morph.ConfigFromModel(cfg.Morph))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: morphology provider unavailable: %v\n", err)
		} else {
			enhancer = e
		}
	}

	return &Pipeline{
		analyzer: analyze.New(cfg),
		fetcher:  NewFetcher(cfg),
		renderer: NewRenderer(cfg.Output.TopN),
		enhancer: enhancer,
		config:   cfg,
	}
}

// AnalyzeText analyzes raw text under the given subject name.
func (p *Pipeline) AnalyzeText(ctx context.Context, subject, text string) (*model.Report, error) {
	if extract.LooksLikeHTML(text) {
		plain, err := extract.Text(text)
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
		text = plain
	}

	report := p.analyzer.Analyze(text)
	report.Subject = subject

	p.refine(ctx, report)
	return report, nil
}

// AnalyzeFile reads and analyzes a local file. HTML files are reduced
// to visible text first.
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	subject := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	report, err := p.AnalyzeText(ctx, subject, string(data))
	if err != nil {
		return nil, err
	}
	report.Source = path
	return report, nil
}

// ScanURL fetches a page and analyzes its visible text.
func (p *Pipeline) ScanURL(ctx context.Context, url string) (*model.Report, error) {
	fetchResult, err := p.fetcher.FetchWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	report, err := p.AnalyzeText(ctx, fetchResult.Subject, fetchResult.Body)
	if err != nil {
		return nil, err
	}
	report.Source = fetchResult.FinalURL
	return report, nil
}

// AnalyzeSource dispatches on the source shape: URLs are fetched, all
// other sources are treated as file paths. Implements worker.Runner.
func (p *Pipeline) AnalyzeSource(ctx context.Context, source string) (*model.Report, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.ScanURL(ctx, source)
	}
	return p.AnalyzeFile(ctx, source)
}

// refine runs the optional lemma enhancer; a failure degrades to the
// baseline lemmas with a warning, never a failed analysis.
func (p *Pipeline) refine(ctx context.Context, report *model.Report) {
	if p.enhancer == nil || !p.enhancer.IsEnabled() {
		return
	}
	if err := p.enhancer.Refine(ctx, report); err != nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("lemma refinement skipped: %v", err))
	}
}

// RenderReport writes the requested output files and prints the
// summary block.
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, csvPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if csvPath != "" {
		if err := p.renderer.RenderCSV(report, csvPath); err != nil {
			return fmt.Errorf("render CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote CSV: %s\n", csvPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}
