package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-gol/internal/core"
	"mad-gol/pkg/golstate"
	"mad-gol/pkg/sims/life"
)

func TestBuiltinsRegistered(t *testing.T) {
	for name := range Builtin {
		_, ok := core.Rules()[name]
		assert.True(t, ok, name)
	}
	assert.Contains(t, core.Names(), "life")
}

func TestFromMap(t *testing.T) {
	c := FromMap("B3/S23", map[string]string{
		"engine":         "Simple",
		"wrap":           "false",
		"max_population": "500",
	})
	assert.Equal(t, Config{Rule: "B3/S23", Engine: "simple", Wrap: false, MaxPopulation: 500}, c)

	c = FromMap("B3/S23", map[string]string{"rule": "B36/S23", "max_population": "-1", "wrap": "maybe"})
	assert.Equal(t, "B36/S23", c.Rule)
	assert.Equal(t, 0, c.MaxPopulation)
	assert.True(t, c.Wrap)
}

func TestFactoriesBuildRequestedEngine(t *testing.T) {
	sim, err := core.Rules()["highlife"](nil)
	require.NoError(t, err)
	assert.Equal(t, golstate.KindSparse, sim.Native())

	sim, err = core.Rules()["seeds"](map[string]string{"engine": "dense"})
	require.NoError(t, err)
	assert.Equal(t, golstate.KindDense, sim.Native())
}

func TestBuildErrors(t *testing.T) {
	_, err := FromMap("B3/S23", map[string]string{"engine": "quantum"}).Build()
	assert.ErrorIs(t, err, ErrUnknownEngine)

	_, err = FromMap("nonsense", nil).Build()
	assert.ErrorIs(t, err, life.ErrInvalidRule)
}
