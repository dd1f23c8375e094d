package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"fpt/internal/config"
	"fpt/internal/domain"
)

// Storage persists and loads run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.RunResult, duration time.Duration, workers int, policy string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved flags change).
	SaveOutput(output *domain.RunOutput) error
}

// New returns the storage backend selected by cfg.ResultsBackend
func New(fs afero.Fs, cfg *config.Config) (Storage, error) {
	switch strings.ToLower(cfg.ResultsBackend) {
	case "", "json":
		return NewJSONStorage(fs, cfg), nil
	case "mysql":
		return NewMySQLStorage(cfg), nil
	default:
		return nil, fmt.Errorf("unknown results backend %q", cfg.ResultsBackend)
	}
}

// BuildOutput summarizes results into the stored form. Only failed and
// errored fixtures are kept as details.
func BuildOutput(results []domain.RunResult, duration time.Duration, workers int, policy string) domain.RunOutput {
	meta := domain.RunMeta{
		TotalFixtures:   len(results),
		Policy:          policy,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Workers:         workers,
		Timestamp:       time.Now().Format(time.RFC3339),
	}

	details := make([]domain.Failure, 0)
	for _, r := range results {
		switch r.Status {
		case domain.StatusPassed:
			meta.PassedFixtures++
			continue
		case domain.StatusErrored:
			meta.ErroredFixtures++
		default:
			meta.FailedFixtures++
		}

		failure := domain.Failure{
			Fixture:  r.Fixture.Name,
			Dir:      r.Fixture.Dir,
			Status:   r.Status,
			Input:    r.Input,
			Expected: r.Expected,
			Actual:   strings.TrimSpace(r.Actual),
			Stderr:   strings.TrimSpace(r.Stderr),
		}
		if r.Error != nil {
			failure.Message = r.Error.Error()
		}
		details = append(details, failure)
	}

	return domain.RunOutput{Meta: meta, Details: details}
}
