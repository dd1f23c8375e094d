package cli

import (
	"time"

	"fpt/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Processors int
	Filter     string
	Pattern    string
	OutputDir  string
	Clean      bool
	BinaryPath string
	Policy     string
	FailFast   bool
	Timeout    time.Duration
	LogLevel   string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Processors: f.Processors,
		Filter:     f.Filter,
		Pattern:    f.Pattern,
		OutputDir:  f.OutputDir,
		Clean:      f.Clean,
		BinaryPath: f.BinaryPath,
		Policy:     f.Policy,
		FailFast:   f.FailFast,
		Timeout:    f.Timeout,
		LogLevel:   f.LogLevel,
	}
}
