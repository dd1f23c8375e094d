package ui

import "fpt/internal/domain"

// Viewer displays run failures
type Viewer interface {
	View(results *domain.RunOutput) error
}
