package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/config"
	"fpt/internal/domain"
)

func sampleResults() []domain.RunResult {
	return []domain.RunResult{
		{Fixture: domain.Fixture{Name: "plus_0_1"}, Status: domain.StatusPassed},
		{Fixture: domain.Fixture{Name: "plus_0_2", Dir: "tests/itmo/plus_0_2"}, Status: domain.StatusFailed,
			Input: "h 0 + 1 1", Expected: "2", Actual: "3\n"},
		{Fixture: domain.Fixture{Name: "div_0_1"}, Status: domain.StatusErrored,
			Input: "h 0 / 1 0", Expected: "inf", Stderr: "division\n", Error: errors.New("exit status 1")},
	}
}

func TestBuildOutput(t *testing.T) {
	out := BuildOutput(sampleResults(), 1500*time.Millisecond, 4, "exact")

	assert.Equal(t, 3, out.Meta.TotalFixtures)
	assert.Equal(t, 1, out.Meta.PassedFixtures)
	assert.Equal(t, 1, out.Meta.FailedFixtures)
	assert.Equal(t, 1, out.Meta.ErroredFixtures)
	assert.Equal(t, "exact", out.Meta.Policy)
	assert.InDelta(t, 1.5, out.Meta.DurationSeconds, 1e-9)

	require.Len(t, out.Details, 2)
	assert.Equal(t, "plus_0_2", out.Details[0].Fixture)
	assert.Equal(t, "3", out.Details[0].Actual)
	assert.Equal(t, "division", out.Details[1].Stderr)
	assert.Equal(t, "exit status 1", out.Details[1].Message)
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	st := NewJSONStorage(fs, config.New())

	require.NoError(t, st.Save(sampleResults(), time.Second, 2, "first-token"))

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Meta.Workers)
	assert.Equal(t, "first-token", loaded.Meta.Policy)
	require.Len(t, loaded.Details, 2)

	loaded.Details[0].Resolved = true
	require.NoError(t, st.SaveOutput(loaded))

	again, err := st.Load()
	require.NoError(t, err)
	assert.True(t, again.Details[0].Resolved)
	assert.False(t, again.Details[1].Resolved)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	_, err := NewJSONStorage(afero.NewMemMapFs(), config.New()).Load()
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cfg := config.New()

	st, err := New(afero.NewMemMapFs(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &JSONStorage{}, st)

	cfg.ResultsBackend = "MySQL"
	st, err = New(afero.NewMemMapFs(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &MySQLStorage{}, st)

	cfg.ResultsBackend = "sqlite"
	_, err = New(afero.NewMemMapFs(), cfg)
	assert.Error(t, err)
}

func TestIsValidDatabaseName(t *testing.T) {
	tests := map[string]bool{
		"fpt_results":          true,
		"runs2026":             true,
		"":                     false,
		"drop`; --":            false,
		"a-b":                  false,
		strings.Repeat("a", 65): false,
	}
	for name, want := range tests {
		assert.Equal(t, want, isValidDatabaseName(name), "%q", name)
	}
}

func TestMySQLStorage_EnsureSchemaRejectsBadName(t *testing.T) {
	cfg := config.New()
	cfg.Database.Name = "bad name"

	err := NewMySQLStorage(cfg).EnsureSchema()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid database name")
}
