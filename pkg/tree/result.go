package tree

// Status summarises a validation pass over one tree.
type Status string

const (
	// StatusValid means zero issues of any kind were recorded.
	StatusValid Status = "valid"
	// StatusWarning means only degradable or informational issues were
	// recorded and every repair succeeded.
	StatusWarning Status = "warning"
	// StatusInvalid means a fatal issue was recorded and no whole-tree
	// fallback was applied.
	StatusInvalid Status = "invalid"
)

// Result aggregates the issues of a single validation pass. Errors hold
// fatal, non-degradable issues; Warnings hold repaired or informational ones.
type Result struct {
	Status   Status  `json:"status"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

// NewResult returns a result in the valid state.
func NewResult() *Result {
	return &Result{Status: StatusValid, Errors: []Issue{}, Warnings: []Issue{}}
}

// Record routes an issue to errors or warnings by its fixed degradability
// and downgrades the status accordingly. Degradable and warning-only issues
// land in Warnings; fatal issues land in Errors.
func (r *Result) Record(issue Issue) {
	if issue.Fatal() {
		r.Errors = append(r.Errors, issue)
		r.Status = StatusInvalid
		return
	}
	r.Warnings = append(r.Warnings, issue)
	if r.Status == StatusValid {
		r.Status = StatusWarning
	}
}

// RecordAll records every issue in order.
func (r *Result) RecordAll(issues []Issue) {
	for _, issue := range issues {
		r.Record(issue)
	}
}

// Escalate moves every warning into the errors list while keeping the
// repairs that produced them. Used by strict reporting mode; the status is
// left untouched because the caller decides whether output is still usable.
func (r *Result) Escalate() {
	if len(r.Warnings) == 0 {
		return
	}
	r.Errors = append(r.Errors, r.Warnings...)
	r.Warnings = []Issue{}
}

// Metadata is attached to the final tree by the output assembler. It reports
// the validation outcome alongside provenance fields.
type Metadata struct {
	Version     string  `json:"version,omitempty"`
	Intent      string  `json:"intent,omitempty"`
	TraceID     string  `json:"trace_id,omitempty"`
	Status      Status  `json:"validation_status"`
	Errors      []Issue `json:"errors"`
	Warnings    []Issue `json:"warnings"`
	GeneratedAt string  `json:"generated_at,omitempty"`
}
