// SPDX-License-Identifier: MIT

package scoring_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqalign/penalty"
	"github.com/katalvlaran/seqalign/scoring"
)

// benchmarkFill runs fill + start + trace on n×n random DNA with the given
// worker count (0 = sequential).
func benchmarkFill(b *testing.B, n, workers int, mode scoring.Mode, gaps scoring.GapModel) {
	rng := rand.New(rand.NewSource(1))
	x := randomSeq(rng, n, "ACGT")
	y := randomSeq(rng, n, "ACGT")
	pm := penalty.Model{Match: 1, Mismatch: -1, Indel: -1, GapOpening: -3}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		m := scoring.New(x, y, pm, mode, gaps)
		if err := m.FillConcurrent(context.Background(), workers); err != nil {
			b.Fatalf("fill failed: %v", err)
		}
		start, _, _ := m.Start()
		if _, err := m.Trace(start); err != nil {
			b.Fatalf("trace failed: %v", err)
		}
	}
}

// BenchmarkFill_GlobalSimple500 is Needleman–Wunsch on 500×500.
func BenchmarkFill_GlobalSimple500(b *testing.B) {
	benchmarkFill(b, 500, 0, scoring.Global, scoring.Simple)
}

// BenchmarkFill_LocalAffine500 is local Gotoh on 500×500.
func BenchmarkFill_LocalAffine500(b *testing.B) {
	benchmarkFill(b, 500, 0, scoring.Local, scoring.Affine)
}

// BenchmarkFill_GlobalSimple2000 is the sequential baseline for the
// concurrent variant below.
func BenchmarkFill_GlobalSimple2000(b *testing.B) {
	benchmarkFill(b, 2000, 0, scoring.Global, scoring.Simple)
}

// BenchmarkFillConcurrent_GlobalSimple2000 splits anti-diagonals over 4 workers.
func BenchmarkFillConcurrent_GlobalSimple2000(b *testing.B) {
	benchmarkFill(b, 2000, 4, scoring.Global, scoring.Simple)
}
