package domain

// Failure represents a fixture that failed or errored
type Failure struct {
	Fixture  string `json:"fixture"`
	Dir      string `json:"dir"`
	Status   Status `json:"status"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Stderr   string `json:"stderr,omitempty"`
	Message  string `json:"message,omitempty"`
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
