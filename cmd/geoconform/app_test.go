package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akuznet/geoconform/internal/config"
)

func TestRunSuiteSelfTest(t *testing.T) {
	app := NewApp(config.NewAppConfig())

	sum := app.RunSuite()
	require.NotNil(t, sum)

	assert.Equal(t, 0, sum.Failed)
	assert.Equal(t, 0, sum.ExitCode())
	assert.Same(t, sum, app.Summary())
}

func TestRunSuiteKindFilter(t *testing.T) {
	cfg := config.NewAppConfig()
	require.NoError(t, cfg.Set("checks.kinds", []string{"ellipsoid"}))

	app := NewApp(cfg)
	sum := app.RunSuite()

	require.NotZero(t, sum.Total())

	for _, r := range sum.Results {
		assert.Equal(t, "ellipsoid", r.Kind)
	}
}
