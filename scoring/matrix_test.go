// SPDX-License-Identifier: MIT

package scoring_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/penalty"
	"github.com/katalvlaran/seqalign/scoring"
)

// build allocates and fills a matrix for a (columns) against b (rows).
func build(t *testing.T, a, b string, model penalty.Model, mode scoring.Mode, gaps scoring.GapModel) *scoring.Matrix {
	t.Helper()
	m := scoring.New([]rune(a), []rune(b), model, mode, gaps)
	m.Fill()
	require.True(t, m.Filled())

	return m
}

// TestNew_GlobalBoundary checks cumulative indel costs and boundary flags.
func TestNew_GlobalBoundary(t *testing.T) {
	model := penalty.Model{Match: 1, Mismatch: -1, Indel: -2, GapOpening: -2}
	m := scoring.New([]rune("ACG"), []rune("AC"), model, scoring.Global, scoring.Simple)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.False(t, m.Filled())

	for c := 1; c < m.Cols(); c++ {
		cell, err := m.At(0, c)
		require.NoError(t, err)
		assert.Equal(t, int64(-2*c), cell.Score)
		assert.Equal(t, scoring.FromLeft, cell.From)
	}
	for r := 1; r < m.Rows(); r++ {
		cell, err := m.At(r, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(-2*r), cell.Score)
		assert.Equal(t, scoring.FromTop, cell.From)
	}
	origin, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, scoring.Cell{}, origin)
}

// TestNew_LocalBoundary checks that local boundaries are zero restart points.
func TestNew_LocalBoundary(t *testing.T) {
	m := scoring.New([]rune("ACG"), []rune("AC"), penalty.Default(), scoring.Local, scoring.Affine)
	for c := 0; c < m.Cols(); c++ {
		cell, _ := m.At(0, c)
		assert.Equal(t, scoring.Cell{}, cell)
	}
	for r := 0; r < m.Rows(); r++ {
		cell, _ := m.At(r, 0)
		assert.Equal(t, scoring.Cell{}, cell)
	}
}

// TestFill_TieFlags verifies that every predecessor reaching the best score is flagged.
func TestFill_TieFlags(t *testing.T) {
	// A="AG" columns, B="A" row. At (1,2): diag=-1+(-1)=-2, left=1-1=0, top=-2-1=-3.
	m := build(t, "AG", "A", penalty.Default(), scoring.Global, scoring.Simple)
	cell, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cell.Score)
	assert.Equal(t, scoring.FromLeft, cell.From)

	// A="A", B="G": diag=-1, left=-1-1=-2, top=-2. Single diagonal flag.
	m = build(t, "A", "G", penalty.Default(), scoring.Global, scoring.Simple)
	cell, _ = m.At(1, 1)
	assert.Equal(t, int64(-1), cell.Score)
	assert.Equal(t, scoring.FromDiagonal, cell.From)

	// A="AB", B="BA" with zero indel cost creates a three-way tie at (2,2).
	zero := penalty.Model{Match: 1, Mismatch: -1, Indel: 0, GapOpening: 0}
	m = build(t, "AB", "BA", zero, scoring.Global, scoring.Simple)
	cell, _ = m.At(2, 2)
	assert.Equal(t, int64(1), cell.Score)
	assert.True(t, cell.From.Has(scoring.FromLeft))
	assert.True(t, cell.From.Has(scoring.FromTop))
	assert.Equal(t, "left|top", cell.From.String())
}

// TestFill_LocalFloorHasNoFlags verifies the restart floor marks a stop cell.
func TestFill_LocalFloorHasNoFlags(t *testing.T) {
	m := build(t, "T", "G", penalty.Default(), scoring.Local, scoring.Simple)
	cell, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cell.Score)
	assert.Equal(t, scoring.Direction(0), cell.From)
	assert.Equal(t, "none", cell.From.String())
}

// TestFill_AffineGapScores checks I/D opening and extension terms.
func TestFill_AffineGapScores(t *testing.T) {
	model := penalty.Model{Match: 1, Mismatch: -1, Indel: -1, GapOpening: -5}
	m := build(t, "AAA", "A", model, scoring.Global, scoring.Affine)

	// I[1,1] = S[1,0] + open = -1 - 5
	ins, _, err := scoring.GapScores(m, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-6), ins)

	// I[1,2] = max(S[1,1]+open, I[1,1]+indel) = max(1-5, -7) = -4
	ins, _, _ = scoring.GapScores(m, 1, 2)
	assert.Equal(t, int64(-4), ins)

	// I[1,3] = max(S[1,2]+open, I[1,2]+indel) = max(0-5, -5) = -5 (tie)
	ins, _, _ = scoring.GapScores(m, 1, 3)
	assert.Equal(t, int64(-5), ins)

	// D[1,c] has only the opening term: S[0,c] + open
	_, del, _ := scoring.GapScores(m, 1, 3)
	assert.Equal(t, int64(-3-5), del)

	// Simple matrices report zero gap scores.
	s := build(t, "AAA", "A", model, scoring.Global, scoring.Simple)
	ins, del, err = scoring.GapScores(s, 1, 2)
	require.NoError(t, err)
	assert.Zero(t, ins)
	assert.Zero(t, del)
}

// TestAt_OutOfRange verifies indexers return ErrOutOfRange, never panic.
func TestAt_OutOfRange(t *testing.T) {
	m := scoring.New([]rune("AC"), []rune("A"), penalty.Default(), scoring.Global, scoring.Simple)
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(rc[0], rc[1])
		assert.ErrorIs(t, err, scoring.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
		_, _, err = scoring.GapScores(m, rc[0], rc[1])
		assert.ErrorIs(t, err, scoring.ErrOutOfRange)
	}
}

// TestFillContext_Cancelled leaves the matrix unfilled.
func TestFillContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := scoring.New([]rune("ACGT"), []rune("ACGT"), penalty.Default(), scoring.Global, scoring.Simple)
	err := m.FillContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.Filled())

	_, _, err = m.Start()
	assert.ErrorIs(t, err, scoring.ErrNotFilled)
	_, err = m.Trace(scoring.Coord{})
	assert.ErrorIs(t, err, scoring.ErrNotFilled)
}

// TestNew_EmptySequenceIsFilled needs no interior computation.
func TestNew_EmptySequenceIsFilled(t *testing.T) {
	m := scoring.New(nil, []rune("ACG"), penalty.Default(), scoring.Global, scoring.Simple)
	assert.True(t, m.Filled())
	start, score, err := m.Start()
	require.NoError(t, err)
	assert.Equal(t, scoring.Coord{Row: 3, Col: 0}, start)
	assert.Equal(t, int64(-3), score)
}

func TestModeAndGapModelStrings(t *testing.T) {
	assert.Equal(t, "global", scoring.Global.String())
	assert.Equal(t, "local", scoring.Local.String())
	assert.Equal(t, "simple", scoring.Simple.String())
	assert.Equal(t, "affine", scoring.Affine.String())
}
