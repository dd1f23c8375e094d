package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"fpt/internal/config"
	"fpt/internal/domain"
)

// Scanner finds fixture directories below an output root
type Scanner struct {
	fs         afero.Fs
	inputFile  string
	outputFile string
}

// NewScanner creates a new Scanner using the fixture file names from cfg
func NewScanner(fs afero.Fs, cfg *config.Config) *Scanner {
	return &Scanner{
		fs:         fs,
		inputFile:  cfg.InputFile,
		outputFile: cfg.OutputFile,
	}
}

// Scan returns every directory under root holding both fixture files,
// sorted by fixture name.
func (s *Scanner) Scan(root string) ([]domain.Fixture, error) {
	var fixtures []domain.Fixture

	root = filepath.Clean(root)
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("fixture root does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixture root is not a directory: %s", root)
	}

	err = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}

		name := info.Name()
		// Skip hidden directories (starting with .)
		if path != root && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}

		in := filepath.Join(path, s.inputFile)
		out := filepath.Join(path, s.outputFile)
		if s.isFile(in) && s.isFile(out) {
			fixtures = append(fixtures, domain.Fixture{
				Name:       name,
				Dir:        path,
				InputPath:  in,
				OutputPath: out,
			})
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(fixtures, func(i, j int) bool {
		return lessFixtureName(fixtures[i].Name, fixtures[j].Name)
	})
	return fixtures, nil
}

func (s *Scanner) isFile(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// lessFixtureName orders {key}_{seq} names by key, then numerically by seq
func lessFixtureName(a, b string) bool {
	ka, na := splitSeq(a)
	kb, nb := splitSeq(b)
	if ka != kb {
		return ka < kb
	}
	if na != nb {
		return na < nb
	}
	return a < b
}

func splitSeq(name string) (string, int) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return name, 0
	}
	var n int
	if _, err := fmt.Sscanf(name[i+1:], "%d", &n); err != nil {
		return name, 0
	}
	return name[:i], n
}
