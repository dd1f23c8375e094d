package parser

import (
	"strings"

	"fpt/internal/domain"
)

const (
	printTokens  = 3 // precision type operand
	binaryTokens = 5 // precision type operand1 op operand2
)

// CorpusParser parses lines of the form
//
//	precision type operand1 op operand2,result
//	precision type operand,result
type CorpusParser struct{}

// NewCorpusParser creates a new CorpusParser
func NewCorpusParser() *CorpusParser {
	return &CorpusParser{}
}

// ParseLine parses a single corpus line. ok is false for blank lines, lines
// without a comma and lines whose input part has neither 3 nor 5 tokens.
// A 5-token line cannot use print as its operator since print takes one operand.
func (p *CorpusParser) ParseLine(line string) (domain.Record, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.Record{}, false
	}

	input, result, found := strings.Cut(line, ",")
	if !found {
		return domain.Record{}, false
	}

	tokens := strings.Fields(input)
	record := domain.Record{
		Result: strings.TrimSpace(result),
	}

	switch len(tokens) {
	case printTokens:
		record.Precision = tokens[0]
		record.Type = tokens[1]
		record.Operation = domain.PrintOperation
		record.Operands = []string{tokens[2]}
	case binaryTokens:
		if tokens[3] == domain.PrintOperation {
			return domain.Record{}, false
		}
		record.Precision = tokens[0]
		record.Type = tokens[1]
		record.Operation = tokens[3]
		record.Operands = []string{tokens[2], tokens[4]}
	default:
		return domain.Record{}, false
	}

	return record, true
}
