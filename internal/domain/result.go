package domain

import "time"

// Status is the outcome of running one fixture
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusErrored Status = "errored"
)

// RunResult represents the result of running the program on one fixture
type RunResult struct {
	Fixture  Fixture
	Status   Status
	Input    string        // Input line passed to the program
	Expected string        // Expected output from the fixture
	Actual   string        // Program stdout
	Stderr   string        // Program stderr
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
}

// RunMeta contains metadata about a run
type RunMeta struct {
	TotalFixtures   int     `json:"total_fixtures"`
	PassedFixtures  int     `json:"passed_fixtures"`
	FailedFixtures  int     `json:"failed_fixtures"`
	ErroredFixtures int     `json:"errored_fixtures"`
	Policy          string  `json:"policy"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete output structure for a run
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
