package extract

import (
	"fmt"

	"fpt/internal/domain"
)

// Layout assigns fixture directory names. Sequence numbers are kept per
// {op}_{type} key and start at 1 in first-seen order.
type Layout struct {
	counters map[string]int
}

// NewLayout creates an empty Layout
func NewLayout() *Layout {
	return &Layout{counters: make(map[string]int)}
}

// Next returns the directory name for record and advances its counter
func (l *Layout) Next(record domain.Record) string {
	key := record.Key()
	l.counters[key]++
	return fmt.Sprintf("%s_%d", key, l.counters[key])
}

// Count returns how many names were handed out for key
func (l *Layout) Count(key string) int {
	return l.counters[key]
}
