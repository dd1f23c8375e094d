package domain

import "strings"

// PrintOperation is the operation of a single-operand record
const PrintOperation = "print"

var operationNames = map[string]string{
	"+":            "plus",
	"-":            "sub",
	"*":            "mult",
	"/":            "div",
	PrintOperation: PrintOperation,
}

// OperationName maps an operator symbol to its fixture name.
// Unknown symbols pass through unchanged.
func OperationName(symbol string) string {
	if name, ok := operationNames[symbol]; ok {
		return name
	}
	return symbol
}

// Record is one parsed corpus line.
// Operands holds one value for print and two for binary operations.
type Record struct {
	Precision string
	Type      string
	Operation string
	Operands  []string
	Result    string
}

// IsPrint reports whether the record is a single-operand print
func (r Record) IsPrint() bool {
	return r.Operation == PrintOperation
}

// InputLine rebuilds the line fed to the program under test:
// "p t a" for print and "p t op a b" for binary operations.
func (r Record) InputLine() string {
	parts := []string{r.Precision, r.Type}
	if !r.IsPrint() {
		parts = append(parts, r.Operation)
	}
	parts = append(parts, r.Operands...)
	return strings.Join(parts, " ")
}

// Key groups records that share a sequence counter
func (r Record) Key() string {
	return OperationName(r.Operation) + "_" + r.Type
}
