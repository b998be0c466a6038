package construct_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pdroute/construct"
	"github.com/katalvlaran/pdroute/pdp"
)

// TestNewSolver_MissingFile surfaces the load failure at construction.
func TestNewSolver_MissingFile(t *testing.T) {
	_, err := construct.NewSolver("testdata/does-not-exist.txt", construct.DefaultOptions())
	assert.Error(t, err)
}

// TestNewSolver_BadOptions rejects invalid options before touching disk.
func TestNewSolver_BadOptions(t *testing.T) {
	opts := construct.DefaultOptions()
	opts.BeamWidth = 0
	_, err := construct.NewSolver("irrelevant", opts)
	assert.ErrorIs(t, err, construct.ErrBeamWidth)
}

// TestSolver_SolveProducesRoutes checks the flattened solution shape.
func TestSolver_SolveProducesRoutes(t *testing.T) {
	vehicles, calls := singleCallProblem(t, 100)
	s, err := construct.NewSolverFromProblem(vehicles, calls, construct.DefaultOptions())
	require.NoError(t, err)

	sol, err := s.MultiSolve(1)
	require.NoError(t, err)

	assert.Equal(t, 2.0, sol.Cost)
	assert.Empty(t, sol.Unserved)
	require.Len(t, sol.Routes, 1)

	route := sol.Routes[0]
	assert.Equal(t, 0, route.Vehicle)
	require.Len(t, route.Stops, 2)

	pickup := route.Stops[0]
	assert.Equal(t, pdp.Pickup, pickup.Role)
	assert.Equal(t, 0, pickup.Call)
	assert.Equal(t, 0, pickup.Node)
	assert.Equal(t, 0.0, pickup.Earliest)
	assert.Equal(t, 0.0, pickup.Latest)

	delivery := route.Stops[1]
	assert.Equal(t, pdp.Delivery, delivery.Role)
	assert.Equal(t, 1, delivery.Node)
	assert.Equal(t, 100.0, delivery.Latest)
}

// TestSolver_MultiSolveDeterminism: the cost-greedy policy must yield
// identical routes and cost across repeated multi-start runs.
func TestSolver_MultiSolveDeterminism(t *testing.T) {
	vehicles, calls := singleCallProblem(t, 100)
	s, err := construct.NewSolverFromProblem(vehicles, calls, construct.DefaultOptions())
	require.NoError(t, err)

	first, err := s.MultiSolve(3)
	require.NoError(t, err)
	second, err := s.MultiSolve(3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestSolver_RandomSeedReproducible: the random policy replays exactly
// under the same seed.
func TestSolver_RandomSeedReproducible(t *testing.T) {
	opts := construct.DefaultOptions()
	opts.Policy = construct.RandomPolicy
	opts.Seed = 1234

	run := func() construct.Solution {
		vehicles, calls := singleCallProblem(t, 100)
		s, err := construct.NewSolverFromProblem(vehicles, calls, opts)
		require.NoError(t, err)
		sol, err := s.MultiSolve(5)
		require.NoError(t, err)

		return sol
	}

	assert.Equal(t, run(), run())
}

// TestSolver_MultiSolveNoTrials rejects a non-positive trial count.
func TestSolver_MultiSolveNoTrials(t *testing.T) {
	vehicles, calls := singleCallProblem(t, 100)
	s, err := construct.NewSolverFromProblem(vehicles, calls, construct.DefaultOptions())
	require.NoError(t, err)

	_, err = s.MultiSolve(0)
	assert.ErrorIs(t, err, construct.ErrNoTrials)
}

// TestSolver_ResetBetweenSolves: consecutive Solve calls start from
// clean trees and agree.
func TestSolver_ResetBetweenSolves(t *testing.T) {
	vehicles, calls := singleCallProblem(t, 100)
	s, err := construct.NewSolverFromProblem(vehicles, calls, construct.DefaultOptions())
	require.NoError(t, err)

	first, err := s.Solve()
	require.NoError(t, err)
	second, err := s.Solve()
	require.NoError(t, err)

	assert.Equal(t, first.Cost, second.Cost)
	require.Len(t, second.Sequences[0], 2)
}
