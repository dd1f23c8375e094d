package config

import "time"

const (
	// DefaultSourcePattern is the glob that selects test corpus files
	DefaultSourcePattern = "itmo_tests/true_gen_float_*.tsv"
	// DefaultOutputDir is where fixture directories are generated
	DefaultOutputDir = "tests/itmo"
	// DefaultInputFile is the fixture file holding the program input line
	DefaultInputFile = "in.txt"
	// DefaultOutputFile is the fixture file holding the expected result
	DefaultOutputFile = "out.txt"
	// DefaultBinaryPath is the program under test
	DefaultBinaryPath = "./main"
	// DefaultPolicy is the comparator policy name
	DefaultPolicy = "exact"
	// DefaultResultsFile is the default output JSON file name
	DefaultResultsFile = "run-results.json"
	// DefaultResultsDir is the default output directory
	DefaultResultsDir = "storage"
	// DefaultResultsBackend selects where run results are stored
	DefaultResultsBackend = "json"
	// DefaultProcessors is the default number of processors
	DefaultProcessors = 4
	// DefaultTimeout bounds a single program invocation
	DefaultTimeout = 10 * time.Second
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
	// DefaultProgressEvery is how many lines pass between extraction progress logs
	DefaultProgressEvery = 10000
)

// Database defaults for the MySQL results backend
const (
	DefaultDBHost = "127.0.0.1"
	DefaultDBPort = "3306"
	DefaultDBUser = "root"
	DefaultDBName = "fpt_results"
)
