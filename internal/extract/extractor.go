package extract

import (
	"bufio"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/logger"
	"fpt/internal/parser"
)

const maxLineSize = 1024 * 1024

// Extractor turns corpus files into fixture directories
type Extractor struct {
	fs     afero.Fs
	config *config.Config
	parser parser.Parser
	log    logger.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(fs afero.Fs, cfg *config.Config, p parser.Parser, log logger.Logger) *Extractor {
	if log == nil {
		log = logger.Nop()
	}
	return &Extractor{fs: fs, config: cfg, parser: p, log: log}
}

// Sources returns the corpus files matching pattern, sorted so that
// fixture numbering is reproducible.
func (e *Extractor) Sources(pattern string) ([]string, error) {
	pattern = filepath.ToSlash(filepath.Clean(pattern))

	fsys := e.fs
	base := ""
	if filepath.IsAbs(pattern) {
		// io/fs paths are unrooted, glob below the static prefix instead
		base, pattern = doublestar.SplitPattern(pattern)
		fsys = afero.NewBasePathFs(e.fs, base)
	}

	matches, err := doublestar.Glob(afero.NewIOFS(fsys), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid source pattern %q: %w", pattern, err)
	}
	if base != "" {
		for i, m := range matches {
			matches[i] = filepath.Join(base, m)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Clean removes the output root and everything below it
func (e *Extractor) Clean() error {
	if err := e.fs.RemoveAll(e.config.OutputDir); err != nil {
		return fmt.Errorf("clean output dir %s: %w", e.config.OutputDir, err)
	}
	return nil
}

// Extract parses every file in order and writes a fixture per accepted line.
// Files are processed one at a time; a filesystem error stops the run and
// leaves fixtures written so far in place.
func (e *Extractor) Extract(paths []string) (domain.ExtractSummary, error) {
	summary := domain.ExtractSummary{OutputDir: e.config.OutputDir}

	if err := e.fs.MkdirAll(e.config.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	layout := NewLayout()
	for _, path := range paths {
		fileSummary, err := e.extractFile(path, layout)
		summary.Files = append(summary.Files, fileSummary)
		summary.Lines += fileSummary.Lines
		summary.Parsed += fileSummary.Parsed
		summary.Generated += fileSummary.Generated
		if err != nil {
			return summary, err
		}
	}

	return summary, nil
}

func (e *Extractor) extractFile(path string, layout *Layout) (domain.FileSummary, error) {
	summary := domain.FileSummary{Path: path}

	f, err := e.fs.Open(path)
	if err != nil {
		return summary, fmt.Errorf("open source %s: %w", path, err)
	}
	defer f.Close()

	e.log.Info("parsing source", "file", path)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		summary.Lines++

		record, ok := e.parser.ParseLine(scanner.Text())
		if ok {
			summary.Parsed++
			if err := e.writeFixture(layout.Next(record), record); err != nil {
				return summary, err
			}
			summary.Generated++
		}

		if e.config.ProgressEvery > 0 && summary.Lines%e.config.ProgressEvery == 0 {
			e.log.Info("progress", "file", path, "lines", summary.Lines, "parsed", summary.Parsed)
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read source %s: %w", path, err)
	}

	e.log.Info("source completed", "file", path, "lines", summary.Lines, "parsed", summary.Parsed)
	return summary, nil
}

func (e *Extractor) writeFixture(name string, record domain.Record) error {
	dir := filepath.Join(e.config.OutputDir, name)
	if err := e.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create fixture dir %s: %w", dir, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{e.config.InputFile, record.InputLine() + "\n"},
		{e.config.OutputFile, record.Result + "\n"},
	}
	for _, file := range files {
		path := filepath.Join(dir, file.name)
		if err := afero.WriteFile(e.fs, path, []byte(file.content), 0o644); err != nil {
			return fmt.Errorf("write fixture file %s: %w", path, err)
		}
	}

	e.log.Debug("fixture written", "dir", dir)
	return nil
}
