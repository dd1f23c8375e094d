package domain

// FileSummary holds per-source-file extraction counts
type FileSummary struct {
	Path      string `json:"path"`
	Lines     int    `json:"lines"`
	Parsed    int    `json:"parsed"`
	Generated int    `json:"generated"`
}

// ExtractSummary holds aggregate extraction counts
type ExtractSummary struct {
	OutputDir string        `json:"output_dir"`
	Files     []FileSummary `json:"files"`
	Lines     int           `json:"lines"`
	Parsed    int           `json:"parsed"`
	Generated int           `json:"generated"`
}

// Skipped is the number of lines that did not parse into a record
func (s ExtractSummary) Skipped() int {
	return s.Lines - s.Parsed
}
