package model

import "splicer.dev/pkg/splicer/internal/cst"

// SessionSummary is what a finished mutation session reports to the UI.
type SessionSummary struct {
	Input        Path
	Output       Path
	Budget       int
	Seed         int64
	Records      []MutationRecord
	SyntaxIssues []cst.SyntaxIssue
}

// Applied returns the number of accepted edits.
func (s SessionSummary) Applied() int {
	return len(s.Records)
}
