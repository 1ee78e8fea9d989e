// SPDX-License-Identifier: MIT

package scoring_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/penalty"
	"github.com/katalvlaran/seqalign/scoring"
)

// randomSeq draws n symbols from alphabet using r.
func randomSeq(r *rand.Rand, n int, alphabet string) []rune {
	symbols := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = symbols[r.Intn(len(symbols))]
	}

	return out
}

// TestFillConcurrent_MatchesFill compares every cell of the anti-diagonal
// fill against the row-by-row fill, for all four mode/gap combinations.
// Lengths are large enough that diagonals are split across workers.
func TestFillConcurrent_MatchesFill(t *testing.T) {
	rng := rand.New(rand.NewSource(20150516))
	a := randomSeq(rng, 900, "ACGT")
	b := randomSeq(rng, 700, "ACGT")
	pm := penalty.Model{Match: 2, Mismatch: -1, Indel: -1, GapOpening: -4}

	for _, mode := range []scoring.Mode{scoring.Global, scoring.Local} {
		for _, gaps := range []scoring.GapModel{scoring.Simple, scoring.Affine} {
			t.Run(mode.String()+"/"+gaps.String(), func(t *testing.T) {
				seq := scoring.New(a, b, pm, mode, gaps)
				seq.Fill()

				par := scoring.New(a, b, pm, mode, gaps)
				require.NoError(t, par.FillConcurrent(context.Background(), 4))
				require.True(t, par.Filled())

				for r := 0; r < seq.Rows(); r++ {
					for c := 0; c < seq.Cols(); c++ {
						want, _ := seq.At(r, c)
						got, _ := par.At(r, c)
						if want != got {
							t.Fatalf("cell (%d,%d): got %+v, want %+v", r, c, got, want)
						}
					}
				}

				s1, _, _ := seq.Start()
				s2, _, _ := par.Start()
				tb1, err := seq.Trace(s1)
				require.NoError(t, err)
				tb2, err := par.Trace(s2)
				require.NoError(t, err)
				assert.Equal(t, tb1, tb2)
			})
		}
	}
}

// TestFillConcurrent_Workers checks the worker-count contract.
func TestFillConcurrent_Workers(t *testing.T) {
	m := scoring.New([]rune("ACGT"), []rune("AGT"), penalty.Default(), scoring.Global, scoring.Simple)
	assert.ErrorIs(t, m.FillConcurrent(context.Background(), -1), scoring.ErrWorkers)
	assert.False(t, m.Filled())

	// 0 and 1 fall back to the sequential fill.
	require.NoError(t, m.FillConcurrent(context.Background(), 1))
	assert.True(t, m.Filled())
}

// TestFillConcurrent_Cancelled stops before the first diagonal.
func TestFillConcurrent_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := scoring.New([]rune("ACGT"), []rune("AGT"), penalty.Default(), scoring.Local, scoring.Affine)
	assert.ErrorIs(t, m.FillConcurrent(ctx, 8), context.Canceled)
	assert.False(t, m.Filled())
}
