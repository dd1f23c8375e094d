package execution

import (
	"context"
	"sync"
	"time"

	"fpt/internal/config"
	"fpt/internal/domain"
	"fpt/internal/logger"
)

// WorkerPool runs fixtures on a fixed number of workers
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	progress Progress
	log      logger.Logger
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, log logger.Logger) *WorkerPool {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkerPool{
		config: cfg,
		runner: runner,
		log:    log,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

type job struct {
	index   int
	fixture domain.Fixture
}

// Execute runs fixtures in parallel. Results come back in fixture order and
// hold only fixtures that completed. With failFast the first failed or
// errored fixture stops the run and later results are dropped.
func (wp *WorkerPool) Execute(ctx context.Context, fixtures []domain.Fixture, failFast bool) ([]domain.RunResult, time.Duration, error) {
	if len(fixtures) == 0 {
		return nil, 0, nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan job)
	go func() {
		defer close(jobs)
		for i, fixture := range fixtures {
			select {
			case <-ctx.Done():
				return
			case jobs <- job{index: i, fixture: fixture}:
			}
		}
	}()

	results := make([]domain.RunResult, len(fixtures))
	completed := make([]bool, len(fixtures))

	var mu sync.Mutex
	var done, passed, failed int
	var stopped bool
	startTime := time.Now()

	workerCount := wp.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(fixtures) {
		workerCount = len(fixtures)
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range jobs {
				result := wp.runner.Run(ctx, j.fixture)

				mu.Lock()
				if stopped {
					mu.Unlock()
					continue
				}
				results[j.index] = result
				completed[j.index] = true
				done++
				if result.Status == domain.StatusPassed {
					passed++
				} else {
					failed++
					wp.log.Debug("fixture did not pass", "worker", workerID, "fixture", j.fixture.Name, "status", result.Status)
				}
				if wp.progress != nil {
					wp.progress.Update(done, passed, failed)
				}
				if failFast && result.Status != domain.StatusPassed {
					stopped = true
					cancel()
				}
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}

	ordered := make([]domain.RunResult, 0, done)
	for i, ok := range completed {
		if ok {
			ordered = append(ordered, results[i])
		}
	}
	return ordered, time.Since(startTime), parent.Err()
}

var _ Executor = (*WorkerPool)(nil)
