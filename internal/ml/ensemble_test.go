package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(v float64) *float64 { return &v }

func stumpTree() []TreeNode {
	return []TreeNode{
		{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
		{Leaf: leaf(-2)},
		{Leaf: leaf(2)},
	}
}

func TestTreeEnsembleScore(t *testing.T) {
	ensemble, err := NewTreeEnsemble(2, 0, [][]TreeNode{stumpTree()})
	require.NoError(t, err)

	proba, err := ensemble.Score([][]float64{{0, 9}, {1, 9}})
	require.NoError(t, err)
	require.Len(t, proba, 2)

	assert.InDelta(t, 1/(1+math.Exp(2)), proba[0], 1e-9)
	assert.InDelta(t, 1/(1+math.Exp(-2)), proba[1], 1e-9)
}

func TestTreeEnsembleBaseScoreShiftsMargin(t *testing.T) {
	ensemble, err := NewTreeEnsemble(2, 1.5, [][]TreeNode{stumpTree()})
	require.NoError(t, err)

	proba, err := ensemble.Score([][]float64{{1, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 1/(1+math.Exp(-3.5)), proba[0], 1e-9)
}

func TestTreeEnsembleRejectsBadShapes(t *testing.T) {
	ensemble, err := NewTreeEnsemble(2, 0, [][]TreeNode{stumpTree()})
	require.NoError(t, err)

	_, err = ensemble.Score([][]float64{{1}})
	assert.Error(t, err)

	_, err = ensemble.Score([][]float64{})
	assert.Error(t, err)
}

func TestNewTreeEnsembleValidation(t *testing.T) {
	_, err := NewTreeEnsemble(2, 0, nil)
	assert.Error(t, err, "no trees")

	_, err = NewTreeEnsemble(2, 0, [][]TreeNode{{}})
	assert.Error(t, err, "empty tree")

	badFeature := []TreeNode{
		{Feature: 7, Threshold: 0.5, Left: 1, Right: 2},
		{Leaf: leaf(0)},
		{Leaf: leaf(0)},
	}
	_, err = NewTreeEnsemble(2, 0, [][]TreeNode{badFeature})
	assert.Error(t, err, "feature index out of range")

	badChild := []TreeNode{
		{Feature: 0, Threshold: 0.5, Left: 5, Right: 1},
		{Leaf: leaf(0)},
	}
	_, err = NewTreeEnsemble(2, 0, [][]TreeNode{badChild})
	assert.Error(t, err, "child index out of range")
}
