package domain

// Fixture is one generated test case directory
type Fixture struct {
	Name       string // Directory name, {op}_{type}_{seq}
	Dir        string // Path to the fixture directory
	InputPath  string // Path to the input file
	OutputPath string // Path to the expected-output file
}
