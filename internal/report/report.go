// Package report aggregates verification results into a run summary.
// Summaries live for one run only and are not persisted anywhere.
package report

import (
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one reference check.
type Result struct {
	Code   int    `yaml:"code" json:"code"`
	Kind   string `yaml:"kind" json:"kind"`
	Name   string `yaml:"name" json:"name"`
	Status Status `yaml:"status" json:"status"`
	Detail string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

type Summary struct {
	RunID   string    `yaml:"run_id" json:"run_id"`
	Started time.Time `yaml:"started" json:"started"`
	Seconds float64   `yaml:"seconds" json:"seconds"`
	Passed  int       `yaml:"passed" json:"passed"`
	Failed  int       `yaml:"failed" json:"failed"`
	Skipped int       `yaml:"skipped" json:"skipped"`
	Results []Result  `yaml:"results" json:"results"`
}

func NewSummary() *Summary {
	return &Summary{
		RunID:   uuid.NewString(),
		Started: time.Now(),
	}
}

func (s *Summary) Add(r Result) {
	s.Results = append(s.Results, r)

	switch r.Status {
	case StatusPassed:
		s.Passed++
	case StatusFailed:
		s.Failed++
	case StatusSkipped:
		s.Skipped++
	}

	checksMetric.WithLabelValues(r.Kind, string(r.Status)).Inc()
}

// Done closes the summary and records the run duration.
func (s *Summary) Done() {
	s.Seconds = time.Since(s.Started).Seconds()
	runDuration.Observe(s.Seconds)
}

// ExitCode aggregates all results the way a test runner does: skipped
// checks are optional-feature gaps, not defects.
func (s *Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}

	return 0
}

func (s *Summary) Total() int {
	return len(s.Results)
}

func (s *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(s); err != nil {
		return err
	}

	return enc.Close()
}
