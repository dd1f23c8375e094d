package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"fpt/internal/config"
	"fpt/internal/domain"
)

// JSONStorage stores results in a JSON file under the configured results path.
type JSONStorage struct {
	fs  afero.Fs
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results JSON path.
func NewJSONStorage(fs afero.Fs, cfg *config.Config) *JSONStorage {
	return &JSONStorage{fs: fs, cfg: cfg}
}

// Save writes a run summary and its failures to the results file.
func (s *JSONStorage) Save(results []domain.RunResult, duration time.Duration, workers int, policy string) error {
	output := BuildOutput(results, duration, workers, policy)
	return s.SaveOutput(&output)
}

// Load reads the last run from the results file.
func (s *JSONStorage) Load() (*domain.RunOutput, error) {
	path := s.cfg.GetResultsPath()
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.RunOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the results file.
func (s *JSONStorage) SaveOutput(output *domain.RunOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
