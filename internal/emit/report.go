// Package emit writes generated framework files under an output directory and
// records what was written in a run report.
package emit

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ReportDir and ReportFile locate the run report inside the output directory.
const (
	ReportDir  = ".svldoc"
	ReportFile = "report.json"
)

// Outcome is the final state of an export run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Report captures what an export run produced.
type Report struct {
	SchemaVersion  int                      `json:"schema_version"`
	RunID          string                   `json:"run_id"`
	Format         string                   `json:"format"`
	Start          time.Time                `json:"start"`
	End            time.Time                `json:"end"`
	Files          []string                 `json:"files"`
	Warnings       []string                 `json:"warnings,omitempty"`
	Errors         []string                 `json:"errors,omitempty"`
	StageDurations map[string]time.Duration `json:"stage_durations"`
	Outcome        Outcome                  `json:"outcome"`
}

// NewReport starts a report for format with a fresh run id.
func NewReport(format string) *Report {
	return &Report{
		SchemaVersion:  1,
		RunID:          uuid.NewString(),
		Format:         format,
		Start:          time.Now(),
		StageDurations: map[string]time.Duration{},
	}
}

// Warn records a non-fatal problem.
func (r *Report) Warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Fail records the error that aborted the run.
func (r *Report) Fail(err error) {
	r.Errors = append(r.Errors, err.Error())
}

// Finish stamps the end time and derives the outcome.
func (r *Report) Finish() {
	r.End = time.Now()
	sort.Strings(r.Files)
	switch {
	case len(r.Errors) > 0:
		r.Outcome = OutcomeFailed
	case len(r.Warnings) > 0:
		r.Outcome = OutcomeWarning
	default:
		r.Outcome = OutcomeSuccess
	}
}

// Summary returns a human-readable single-line summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("format=%s files=%d warnings=%d errors=%d duration=%s outcome=%s",
		r.Format, len(r.Files), len(r.Warnings), len(r.Errors), r.End.Sub(r.Start).Truncate(time.Millisecond), r.Outcome)
}

// Persist writes the report as JSON under root/.svldoc/report.json.
func (r *Report) Persist(root string) error {
	if r.End.IsZero() {
		r.Finish()
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report json: %w", err)
	}
	return WriteFileAtomic(filepath.Join(root, ReportDir, ReportFile), append(data, '\n'))
}
