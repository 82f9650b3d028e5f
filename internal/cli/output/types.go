package output

// LintSummary counts the issues of one lint run.
type LintSummary struct {
	FilesAnalyzed   int `json:"files_analyzed"`
	FilesWithIssues int `json:"files_with_issues"`
	TotalIssues     int `json:"total_issues"`
	Errors          int `json:"errors"`
	Warnings        int `json:"warnings"`
	Info            int `json:"info"`
	Hints           int `json:"hints"`
}

// LintOutput is the JSON document written by `guidelint lint --format json`.
type LintOutput struct {
	Summary LintSummary      `json:"summary"`
	Files   []LintFileResult `json:"files"`
	Skipped []SkippedFile    `json:"skipped,omitempty"`
}

// LintFileResult holds the diagnostics of one unit file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintDiagnostic is one diagnostic in JSON output.
type LintDiagnostic struct {
	RuleID    string `json:"rule_id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"end_line"`
	EndColumn int    `json:"end_column"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	DocURL    string `json:"doc_url,omitempty"`
}

// SkippedFile is a unit file that could not be loaded.
type SkippedFile struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}
