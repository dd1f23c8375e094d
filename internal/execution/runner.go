package execution

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/afero"

	"fpt/internal/compare"
	"fpt/internal/config"
	"fpt/internal/domain"
)

// Runner runs the program under test against a single fixture
type Runner struct {
	fs         afero.Fs
	config     *config.Config
	comparator *compare.Comparator
}

// NewRunner creates a new Runner
func NewRunner(fs afero.Fs, cfg *config.Config, comparator *compare.Comparator) *Runner {
	return &Runner{fs: fs, config: cfg, comparator: comparator}
}

// Run feeds the fixture input line to the program as arguments and judges
// its stdout. Output on stderr or a non-zero exit marks the fixture errored.
func (r *Runner) Run(ctx context.Context, fixture domain.Fixture) domain.RunResult {
	start := time.Now()
	result := domain.RunResult{Fixture: fixture}

	input, err := afero.ReadFile(r.fs, fixture.InputPath)
	if err != nil {
		return r.errored(result, start, fmt.Errorf("read input: %w", err))
	}
	expected, err := afero.ReadFile(r.fs, fixture.OutputPath)
	if err != nil {
		return r.errored(result, start, fmt.Errorf("read expected output: %w", err))
	}
	result.Input = strings.TrimSpace(string(input))
	result.Expected = strings.TrimSpace(string(expected))

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.config.GetBinaryPath(), strings.Fields(result.Input)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	err = cmd.Run()
	result.Actual = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s", r.config.Timeout)
		}
		return r.errored(result, start, err)
	}
	if strings.TrimSpace(result.Stderr) != "" {
		return r.errored(result, start, nil)
	}

	result.Status = domain.StatusFailed
	if r.comparator.Match(result.Expected, result.Actual) {
		result.Status = domain.StatusPassed
	}
	result.Duration = time.Since(start)
	return result
}

func (r *Runner) errored(result domain.RunResult, start time.Time, err error) domain.RunResult {
	result.Status = domain.StatusErrored
	result.Error = err
	result.Duration = time.Since(start)
	return result
}
