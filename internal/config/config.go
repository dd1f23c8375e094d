package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Extraction settings
	SourcePattern string
	OutputDir     string
	InputFile     string
	OutputFile    string

	// Execution settings
	BinaryPath string
	Processors int
	Timeout    time.Duration
	Policy     string

	// Results settings
	ResultsFile    string
	ResultsDir     string
	ResultsBackend string
	Database       Database

	LogLevel      string
	ProgressEvery int

	// Command flags
	Flags Flags
}

// Database holds MySQL connection settings for the results backend
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		SourcePattern:  DefaultSourcePattern,
		OutputDir:      DefaultOutputDir,
		InputFile:      DefaultInputFile,
		OutputFile:     DefaultOutputFile,
		BinaryPath:     DefaultBinaryPath,
		Processors:     DefaultProcessors,
		Timeout:        DefaultTimeout,
		Policy:         DefaultPolicy,
		ResultsFile:    DefaultResultsFile,
		ResultsDir:     DefaultResultsDir,
		ResultsBackend: DefaultResultsBackend,
		Database: Database{
			Host: DefaultDBHost,
			Port: DefaultDBPort,
			User: DefaultDBUser,
			Name: DefaultDBName,
		},
		LogLevel:      DefaultLogLevel,
		ProgressEvery: DefaultProgressEvery,
		Flags:         Flags{Processors: DefaultProcessors},
	}
}

// LoadEnv reads .env from the working directory (if present) and applies
// FPT_* overrides on top of the defaults.
func (c *Config) LoadEnv() {
	// .env is optional, plain environment variables work on their own
	_ = godotenv.Load()

	setString(&c.SourcePattern, "FPT_SOURCE_PATTERN")
	setString(&c.OutputDir, "FPT_OUTPUT_DIR")
	setString(&c.BinaryPath, "FPT_BINARY")
	setString(&c.Policy, "FPT_COMPARE_POLICY")
	setString(&c.ResultsBackend, "FPT_RESULTS_BACKEND")
	setString(&c.LogLevel, "FPT_LOG_LEVEL")
	setString(&c.Database.Host, "FPT_DB_HOST")
	setString(&c.Database.Port, "FPT_DB_PORT")
	setString(&c.Database.User, "FPT_DB_USERNAME")
	setString(&c.Database.Password, "FPT_DB_PASSWORD")
	setString(&c.Database.Name, "FPT_DB_DATABASE")

	if v := os.Getenv("FPT_PROCESSORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Processors = n
		}
	}
	if v := os.Getenv("FPT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Timeout = d
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Load creates a config, reads the environment and applies flags
func Load(flags Flags) *Config {
	cfg := New()
	cfg.LoadEnv()
	cfg.Apply(flags)
	return cfg
}

// Apply stores flags and lets non-zero values override the current settings
func (c *Config) Apply(flags Flags) {
	c.Flags = flags

	if flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if flags.Pattern != "" {
		c.SourcePattern = flags.Pattern
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.BinaryPath != "" {
		c.BinaryPath = flags.BinaryPath
	}
	if flags.Policy != "" {
		c.Policy = flags.Policy
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}
}

// GetResultsPath returns the absolute path to the results JSON file so that
// run and failures always agree on it.
func (c *Config) GetResultsPath() string {
	p := filepath.Join(c.ResultsDir, c.ResultsFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetBinaryPath resolves the program under test relative to the working directory
func (c *Config) GetBinaryPath() string {
	if filepath.IsAbs(c.BinaryPath) {
		return c.BinaryPath
	}
	if abs, err := filepath.Abs(c.BinaryPath); err == nil {
		return abs
	}
	return c.BinaryPath
}

// DSN builds the MySQL DSN. Without a database name it targets the server only.
func (d Database) DSN(withName bool) string {
	name := ""
	if withName {
		name = d.Name
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", d.User, d.Password, d.Host, d.Port, name)
}
