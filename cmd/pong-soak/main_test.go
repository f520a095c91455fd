package main

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-pong/pong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() soakConfig {
	return soakConfig{
		matches:  6,
		points:   2,
		dt:       4,
		maxSteps: 50000,
		workers:  3,
		width:    800,
		height:   600,
		seed:     42,
	}
}

func TestRunSoak_PlaysEveryMatch(t *testing.T) {
	results, err := runSoak(testConfig())
	require.NoError(t, err)
	require.Len(t, results, 6)

	for _, res := range results {
		assert.Positive(t, res.Steps)
		assert.LessOrEqual(t, res.Steps, 50000)
		if res.Finished {
			assert.Equal(t, uint32(2), max(res.Left, res.Right))
		}
	}
}

func TestRunSoak_Reproducible(t *testing.T) {
	a, err := runSoak(testConfig())
	require.NoError(t, err)
	b, err := runSoak(testConfig())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRunSoak_InvalidArena(t *testing.T) {
	cfg := testConfig()
	cfg.width = 0

	_, err := runSoak(cfg)
	assert.ErrorIs(t, err, pong.ErrInvalidArena)
}

func TestRunSoak_DefaultWorkers(t *testing.T) {
	cfg := testConfig()
	cfg.workers = 0
	cfg.matches = 2

	results, err := runSoak(cfg)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
