package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"fpt/internal/domain"
)

func TestCorpusParser_ParseLine(t *testing.T) {
	p := NewCorpusParser()

	tests := []struct {
		name   string
		line   string
		want   domain.Record
		wantOK bool
	}{
		{
			name:   "print record",
			line:   "h 0 3.14,3.14",
			want:   domain.Record{Precision: "h", Type: "0", Operation: "print", Operands: []string{"3.14"}, Result: "3.14"},
			wantOK: true,
		},
		{
			name:   "binary record",
			line:   "s 1 2.0 + 3.0,5.0",
			want:   domain.Record{Precision: "s", Type: "1", Operation: "+", Operands: []string{"2.0", "3.0"}, Result: "5.0"},
			wantOK: true,
		},
		{
			name:   "tabs and surrounding whitespace",
			line:   "  s\t2\t0x1p-3\t*\t-inf , -inf \n",
			want:   domain.Record{Precision: "s", Type: "2", Operation: "*", Operands: []string{"0x1p-3", "-inf"}, Result: "-inf"},
			wantOK: true,
		},
		{
			name:   "result keeps text after the first comma",
			line:   "h 0 1 / 0,inf,extra",
			want:   domain.Record{Precision: "h", Type: "0", Operation: "/", Operands: []string{"1", "0"}, Result: "inf,extra"},
			wantOK: true,
		},
		{
			name:   "unknown operator passes through",
			line:   "h 0 1 % 2,1",
			want:   domain.Record{Precision: "h", Type: "0", Operation: "%", Operands: []string{"1", "2"}, Result: "1"},
			wantOK: true,
		},
		{name: "four tokens", line: "h 0 1 +,1"},
		{name: "two tokens", line: "h 0,0"},
		{name: "six tokens", line: "h 0 1 + 2 3,3"},
		{name: "print used as binary operator", line: "h 0 1 print 2,3"},
		{name: "missing comma", line: "h 0 3.14 3.14"},
		{name: "blank line", line: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.ParseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCorpusParser_OperandCountMatchesOperation(t *testing.T) {
	p := NewCorpusParser()
	lines := []string{"h 0 1,1", "s 3 1 - 2,-1", "h 9 4 / 2,2", "s 0 -0,-0"}

	for _, line := range lines {
		r, ok := p.ParseLine(line)
		if !assert.True(t, ok, line) {
			continue
		}
		if r.IsPrint() {
			assert.Len(t, r.Operands, 1, line)
		} else {
			assert.Len(t, r.Operands, 2, line)
		}
	}
}
