package parser

import "fpt/internal/domain"

// Parser turns corpus lines into records
type Parser interface {
	ParseLine(line string) (domain.Record, bool)
}
