package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fpt/internal/extract"
	"fpt/internal/parser"
	"fpt/internal/ui"
)

// ExtractCommand handles the extract command
type ExtractCommand struct {
	deps *deps
}

// NewExtractCommand creates a new ExtractCommand
func NewExtractCommand(d *deps) *ExtractCommand {
	return &ExtractCommand{deps: d}
}

// Execute runs the command
func (ec *ExtractCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := ec.deps.config
	log := ec.deps.logger(cmd)
	formatter := ui.NewFormatter(output(cmd))
	extractor := extract.NewExtractor(ec.deps.fs, cfg, parser.NewCorpusParser(), log)

	sources, err := extractor.Sources(cfg.SourcePattern)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		formatter.PrintNoSources(cfg.SourcePattern)
		return nil
	}
	log.Info("found test files", "count", len(sources), "pattern", cfg.SourcePattern)

	if cfg.Flags.Clean {
		if err := extractor.Clean(); err != nil {
			return err
		}
	}

	summary, err := extractor.Extract(sources)
	if err != nil {
		return fmt.Errorf("extraction failed after %d fixtures: %w", summary.Generated, err)
	}

	formatter.PrintExtractSummary(summary)
	return nil
}
