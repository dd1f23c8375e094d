package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/config"
	"fpt/internal/parser"
)

func newTestExtractor(t *testing.T, fs afero.Fs) *Extractor {
	t.Helper()
	cfg := config.New()
	cfg.OutputDir = "out"
	return NewExtractor(fs, cfg, parser.NewCorpusParser(), nil)
}

func writeSource(t *testing.T, fs afero.Fs, path string, lines ...string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func fixtureDirs(t *testing.T, fs afero.Fs, root string) []string {
	t.Helper()
	entries, err := afero.ReadDir(fs, root)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

func TestExtractor_Extract(t *testing.T) {
	t.Run("print record", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "src.tsv", "h 0 3.14,3.14")
		e := newTestExtractor(t, fs)

		summary, err := e.Extract([]string{"src.tsv"})
		require.NoError(t, err)

		assert.Equal(t, 1, summary.Generated)
		assert.Equal(t, "h 0 3.14\n", readFile(t, fs, "out/print_0_1/in.txt"))
		assert.Equal(t, "3.14\n", readFile(t, fs, "out/print_0_1/out.txt"))
	})

	t.Run("binary record is reordered", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "src.tsv", "s 1 2.0 + 3.0,5.0")
		e := newTestExtractor(t, fs)

		_, err := e.Extract([]string{"src.tsv"})
		require.NoError(t, err)

		assert.Equal(t, "s 1 + 2.0 3.0\n", readFile(t, fs, "out/plus_1_1/in.txt"))
		assert.Equal(t, "5.0\n", readFile(t, fs, "out/plus_1_1/out.txt"))
	})

	t.Run("same operation and type count up in file order", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "src.tsv", "s 1 2.0 * 3.0,6.0", "s 1 1.0 * 1.0,1.0")
		e := newTestExtractor(t, fs)

		_, err := e.Extract([]string{"src.tsv"})
		require.NoError(t, err)

		assert.Equal(t, "6.0\n", readFile(t, fs, "out/mult_1_1/out.txt"))
		assert.Equal(t, "1.0\n", readFile(t, fs, "out/mult_1_2/out.txt"))
	})

	t.Run("malformed lines are skipped", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "src.tsv",
			"h 0 1 +,1",
			"h 0 1 / 2,0.5",
			"no comma here",
			"",
		)
		e := newTestExtractor(t, fs)

		summary, err := e.Extract([]string{"src.tsv"})
		require.NoError(t, err)

		assert.Equal(t, 4, summary.Lines)
		assert.Equal(t, 1, summary.Parsed)
		assert.Equal(t, 3, summary.Skipped())
		assert.Equal(t, []string{"div_0_1"}, fixtureDirs(t, fs, "out"))
	})

	t.Run("counters continue across files", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "a.tsv", "h 0 1 - 1,0")
		writeSource(t, fs, "b.tsv", "h 0 2 - 1,1", "h 0 2,2")
		e := newTestExtractor(t, fs)

		summary, err := e.Extract([]string{"a.tsv", "b.tsv"})
		require.NoError(t, err)

		require.Len(t, summary.Files, 2)
		assert.Equal(t, 1, summary.Files[0].Generated)
		assert.Equal(t, 2, summary.Files[1].Generated)
		assert.Equal(t, 3, summary.Generated)
		assert.Equal(t, "1\n", readFile(t, fs, "out/sub_0_2/out.txt"))
		assert.Equal(t, []string{"print_0_1", "sub_0_1", "sub_0_2"}, fixtureDirs(t, fs, "out"))
	})

	t.Run("rerun reproduces names", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "src.tsv", "h 3 1 + 1,2", "h 3 1,1", "h 3 2 + 2,4")
		e := newTestExtractor(t, fs)

		_, err := e.Extract([]string{"src.tsv"})
		require.NoError(t, err)
		first := fixtureDirs(t, fs, "out")

		require.NoError(t, e.Clean())
		_, err = e.Extract([]string{"src.tsv"})
		require.NoError(t, err)

		assert.Equal(t, first, fixtureDirs(t, fs, "out"))
	})

	t.Run("missing source aborts but keeps earlier fixtures", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeSource(t, fs, "a.tsv", "h 0 1,1")
		e := newTestExtractor(t, fs)

		summary, err := e.Extract([]string{"a.tsv", "missing.tsv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrNotExist))

		assert.Equal(t, 1, summary.Generated)
		assert.Equal(t, []string{"print_0_1"}, fixtureDirs(t, fs, "out"))
	})
}

func TestExtractor_WriteFailurePropagates(t *testing.T) {
	base := afero.NewMemMapFs()
	writeSource(t, base, "src.tsv", "h 0 1,1")
	require.NoError(t, base.MkdirAll("out", 0o755))

	cfg := config.New()
	cfg.OutputDir = "out"
	e := NewExtractor(afero.NewReadOnlyFs(base), cfg, parser.NewCorpusParser(), nil)

	summary, err := e.Extract([]string{"src.tsv"})
	require.Error(t, err)
	assert.Equal(t, 0, summary.Generated)
}

func TestExtractor_Sources(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSource(t, fs, "itmo_tests/true_gen_float_b.tsv", "h 0 1,1")
	writeSource(t, fs, "itmo_tests/true_gen_float_a.tsv", "h 0 1,1")
	writeSource(t, fs, "itmo_tests/other.tsv", "h 0 1,1")
	e := newTestExtractor(t, fs)

	t.Run("relative pattern is sorted", func(t *testing.T) {
		files, err := e.Sources(config.DefaultSourcePattern)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"itmo_tests/true_gen_float_a.tsv",
			"itmo_tests/true_gen_float_b.tsv",
		}, files)
	})

	t.Run("no matches", func(t *testing.T) {
		files, err := e.Sources("corpus/*.csv")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("absolute pattern", func(t *testing.T) {
		dir := t.TempDir()
		osFs := afero.NewOsFs()
		writeSource(t, osFs, filepath.Join(dir, "true_gen_float_x.tsv"), "h 0 1,1")

		files, err := newTestExtractor(t, osFs).Sources(filepath.Join(dir, "true_gen_float_*.tsv"))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "true_gen_float_x.tsv")}, files)
	})
}
