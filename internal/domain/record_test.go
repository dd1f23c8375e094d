package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationName(t *testing.T) {
	tests := map[string]string{
		"+":     "plus",
		"-":     "sub",
		"*":     "mult",
		"/":     "div",
		"print": "print",
		"%":     "%",
	}
	for symbol, want := range tests {
		t.Run(symbol, func(t *testing.T) {
			assert.Equal(t, want, OperationName(symbol))
		})
	}
}

func TestRecord_InputLine(t *testing.T) {
	t.Run("print", func(t *testing.T) {
		r := Record{Precision: "h", Type: "0", Operation: PrintOperation, Operands: []string{"3.14"}}
		assert.Equal(t, "h 0 3.14", r.InputLine())
		assert.Equal(t, "print_0", r.Key())
	})

	t.Run("binary puts the operator first", func(t *testing.T) {
		r := Record{Precision: "s", Type: "1", Operation: "+", Operands: []string{"2.0", "3.0"}}
		assert.Equal(t, "s 1 + 2.0 3.0", r.InputLine())
		assert.Equal(t, "plus_1", r.Key())
	})
}
