package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"fpt/internal/domain"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

const (
	tableTop    = "┌─────────────────────────────────┬─────────────────────────────┐"
	tableMiddle = "├─────────────────────────────────┼─────────────────────────────┤"
	tableBottom = "└─────────────────────────────────┴─────────────────────────────┘"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out (stdout when nil)
func NewFormatter(out io.Writer) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	return &Formatter{out: out}
}

type row struct {
	label string
	value string
	c     *color.Color
}

func (f *Formatter) printHeader(title string) {
	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintf(f.out, "║%s║\n", center(title, 63))
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)
}

func (f *Formatter) printTable(rows []row) {
	fmt.Fprintln(f.out, tableTop)
	for i, r := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", r.label)
		r.c.Fprintf(f.out, "%-27s", r.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, tableMiddle)
		}
	}
	fmt.Fprintln(f.out, tableBottom)
}

// PrintExtractSummary prints file, line, record and fixture counts
func (f *Formatter) PrintExtractSummary(summary domain.ExtractSummary) {
	f.printHeader("Fixture Extraction")

	for _, file := range summary.Files {
		white.Fprintf(f.out, "  %s: ", file.Path)
		fmt.Fprintf(f.out, "%d lines, %d parsed, %d fixtures\n", file.Lines, file.Parsed, file.Generated)
	}
	if len(summary.Files) > 0 {
		fmt.Fprintln(f.out)
	}

	f.printTable([]row{
		{"Source Files", fmt.Sprint(len(summary.Files)), white},
		{"Lines Processed", fmt.Sprint(summary.Lines), white},
		{"Tests Parsed", fmt.Sprint(summary.Parsed), green},
		{"Lines Skipped", fmt.Sprint(summary.Skipped()), yellow},
		{"Fixtures Generated", fmt.Sprint(summary.Generated), green},
		{"Output Directory", summary.OutputDir, white},
	})

	fmt.Fprintln(f.out)
	green.Fprintf(f.out, "✓ Created %d fixture directories in %s\n", summary.Generated, summary.OutputDir)
}

// PrintNoSources reports an empty glob
func (f *Formatter) PrintNoSources(pattern string) {
	yellow.Fprintf(f.out, "No test files found matching pattern '%s'\n", pattern)
}

// PrintRunStats prints the stored meta statistics and a tree of failed fixtures
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta

	f.printHeader("Fixture Run Statistics")
	f.printTable([]row{
		{"Total Fixtures", fmt.Sprint(meta.TotalFixtures), white},
		{"Passed", fmt.Sprint(meta.PassedFixtures), green},
		{"Failed", fmt.Sprint(meta.FailedFixtures), red},
		{"Errored", fmt.Sprint(meta.ErroredFixtures), red},
		{"Policy", meta.Policy, white},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white},
		{"Workers", fmt.Sprint(meta.Workers), white},
		{"Timestamp", meta.Timestamp, white},
	})

	fmt.Fprintln(f.out)
	if meta.FailedFixtures == 0 && meta.ErroredFixtures == 0 {
		green.Fprintln(f.out, "✓ All fixtures passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d fixture(s) failed, %d errored\n", meta.FailedFixtures, meta.ErroredFixtures)
	fmt.Fprintln(f.out)
	f.printFailureTree(output.Details)
}

// printFailureTree groups failures by {op}_{type}
func (f *Formatter) printFailureTree(failures []domain.Failure) {
	groups := make(map[string][]domain.Failure)
	for _, failure := range failures {
		key, _ := splitFixtureName(failure.Fixture)
		groups[key] = append(groups[key], failure)
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		lastGroup := i == len(keys)-1
		branch, indent := "├── ", "│   "
		if lastGroup {
			branch, indent = "└── ", "    "
		}
		cyan.Fprintf(f.out, "%s%s\n", branch, key)

		for j, failure := range groups[key] {
			leaf := "├── "
			if j == len(groups[key])-1 {
				leaf = "└── "
			}
			fmt.Fprint(f.out, indent+leaf)
			red.Fprintf(f.out, "%s", failure.Fixture)
			fmt.Fprintf(f.out, " [%s] expected %q, got %q\n", failure.Status, failure.Expected, failure.Actual)
		}
	}
}

// PrintFixtureList prints fixtures; names in failed are marked with [F].
func (f *Formatter) PrintFixtureList(fixtures []domain.Fixture, failed map[string]struct{}) {
	green.Fprintf(f.out, "Found %d fixture(s):\n\n", len(fixtures))

	for i, fixture := range fixtures {
		branch := "├── "
		if i == len(fixtures)-1 {
			branch = "└── "
		}
		cyan.Fprintf(f.out, "%s%s", branch, fixture.Name)
		if _, ok := failed[fixture.Name]; ok {
			fmt.Fprint(f.out, " ")
			red.Fprint(f.out, "[F]")
		}
		fmt.Fprintln(f.out)
	}
}

// splitFixtureName splits "plus_0_12" into "plus_0" and "12"
func splitFixtureName(name string) (string, string) {
	i := strings.LastIndexByte(name, '_')
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i+1:]
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
