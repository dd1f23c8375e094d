package compare

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Exit codes of the compare command
const (
	ExitMatch    = 0
	ExitMismatch = 1
	ExitUsage    = 2
)

// Policy selects how actual output is matched against the expected value
type Policy string

const (
	// PolicyExact compares the whole trimmed strings
	PolicyExact Policy = "exact"
	// PolicyFirstToken compares the trimmed expected value against the first
	// whitespace-delimited token of the actual output
	PolicyFirstToken Policy = "first-token"
)

// Policies lists the accepted policy names
var Policies = []Policy{PolicyExact, PolicyFirstToken}

// ParsePolicy validates a policy name
func ParsePolicy(name string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(name))); p {
	case PolicyExact, PolicyFirstToken:
		return p, nil
	case "":
		return PolicyExact, nil
	default:
		return "", fmt.Errorf("unknown compare policy %q (want %s or %s)", name, PolicyExact, PolicyFirstToken)
	}
}

// Comparator matches program output against expected output
type Comparator struct {
	fs     afero.Fs
	policy Policy
}

// NewComparator creates a Comparator reading expected files from fs
func NewComparator(fs afero.Fs, policy Policy) *Comparator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if policy == "" {
		policy = PolicyExact
	}
	return &Comparator{fs: fs, policy: policy}
}

// Policy returns the active policy
func (c *Comparator) Policy() Policy {
	return c.policy
}

// Match applies the policy to an expected and an actual string
func (c *Comparator) Match(expected, actual string) bool {
	expected = normalize(expected)
	actual = normalize(actual)

	if c.policy == PolicyFirstToken {
		fields := strings.Fields(actual)
		if len(fields) == 0 {
			return expected == ""
		}
		return fields[0] == expected
	}
	return expected == actual
}

// MatchFile reads the expected output from path and matches actual against it
func (c *Comparator) MatchFile(path, actual string) (bool, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return false, fmt.Errorf("read expected output %s: %w", path, err)
	}
	return c.Match(string(data), actual), nil
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimSpace(s)
}
