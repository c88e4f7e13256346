package testutil

import (
	"fmt"
	"strings"
)

// Line is a single status line captured by RecordingReporter
type Line struct {
	Kind string // section, info, success, warning, failure, dry-run
	Text string
}

// RecordingReporter implements types.Reporter by keeping every line
type RecordingReporter struct {
	Lines []Line
}

// NewRecordingReporter creates an empty RecordingReporter
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) add(kind, format string, args ...interface{}) {
	r.Lines = append(r.Lines, Line{Kind: kind, Text: fmt.Sprintf(format, args...)})
}

func (r *RecordingReporter) Section(format string, args ...interface{}) {
	r.add("section", format, args...)
}

func (r *RecordingReporter) Info(format string, args ...interface{}) {
	r.add("info", format, args...)
}

func (r *RecordingReporter) Success(format string, args ...interface{}) {
	r.add("success", format, args...)
}

func (r *RecordingReporter) Warning(format string, args ...interface{}) {
	r.add("warning", format, args...)
}

func (r *RecordingReporter) Failure(format string, args ...interface{}) {
	r.add("failure", format, args...)
}

func (r *RecordingReporter) DryRun(format string, args ...interface{}) {
	r.add("dry-run", format, args...)
}

// Of returns the text of every line of the given kind
func (r *RecordingReporter) Of(kind string) []string {
	var out []string
	for _, line := range r.Lines {
		if line.Kind == kind {
			out = append(out, line.Text)
		}
	}
	return out
}

// Has reports whether a line of the given kind contains substr
func (r *RecordingReporter) Has(kind, substr string) bool {
	for _, text := range r.Of(kind) {
		if strings.Contains(text, substr) {
			return true
		}
	}
	return false
}
