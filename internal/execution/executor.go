package execution

import (
	"context"
	"time"

	"fpt/internal/domain"
)

// Executor runs fixtures and returns results
type Executor interface {
	Execute(ctx context.Context, fixtures []domain.Fixture, failFast bool) ([]domain.RunResult, time.Duration, error)
}

// Progress receives run progress updates
type Progress interface {
	Update(done, passed, failed int)
	Finish()
}
