package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryCounts(t *testing.T) {
	s := NewSummary()
	require.NotEmpty(t, s.RunID)

	s.Add(Result{Code: 7030, Kind: "ellipsoid", Name: "WGS 84", Status: StatusPassed})
	s.Add(Result{Code: 8903, Kind: "prime_meridian", Name: "Paris", Status: StatusSkipped, Detail: "unsupported code"})
	s.Done()

	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 0, s.Failed)
	assert.Equal(t, 2, s.Total())
	assert.Equal(t, 0, s.ExitCode())

	s.Add(Result{Code: 4326, Kind: "crs", Name: "WGS 84", Status: StatusFailed, Detail: "Name(): expected..."})
	assert.Equal(t, 1, s.ExitCode())
}

func TestSummaryYAML(t *testing.T) {
	s := NewSummary()
	s.Add(Result{Code: 7030, Kind: "ellipsoid", Name: "WGS 84", Status: StatusPassed})
	s.Done()

	buf := new(bytes.Buffer)
	require.NoError(t, s.WriteYAML(buf))

	out := buf.String()
	assert.Contains(t, out, "run_id: "+s.RunID)
	assert.Contains(t, out, "code: 7030")
	assert.Contains(t, out, "status: passed")
	assert.NotContains(t, out, "detail:")
}
