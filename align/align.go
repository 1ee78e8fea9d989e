// SPDX-License-Identifier: MIT

package align

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/katalvlaran/seqalign/penalty"
	"github.com/katalvlaran/seqalign/scoring"
)

// Result is one optimal alignment.
// AlignedA and AlignedB have equal length; '-' marks a gap.
type Result struct {
	Score    int    `json:"score" yaml:"score"`
	AlignedA string `json:"aligned_a" yaml:"aligned_a"`
	AlignedB string `json:"aligned_b" yaml:"aligned_b"`
}

// Align computes an optimal alignment of a and b. See AlignContext.
func Align(a, b string, method Method, penalties *penalty.Config, opts ...Option) (Result, error) {
	return AlignContext(context.Background(), a, b, method, penalties, opts...)
}

// AlignContext computes an optimal alignment of a and b with method under
// penalties (nil = penalty.Default()).
//
// Implementation:
//   - Stage 1: decode both sequences into symbols (ErrParameter).
//   - Stage 2: normalize penalties (ErrParameter wrapping penalty.ErrMalformed).
//   - Stage 3: resolve the method (ErrUnknownAlgorithm, ErrNotImplemented).
//   - Stage 4: fill the score matrix, sequentially or by anti-diagonals.
//   - Stage 5: pick the start cell and trace back.
//
// ctx is only consulted between rows (or anti-diagonals) of the fill; a
// cancelled call returns ctx.Err() wrapped and no result.
// Complexity: O(n·m) time and memory.
func AlignContext(ctx context.Context, a, b string, method Method, penalties *penalty.Config, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	seqA, err := symbols("A", a)
	if err != nil {
		return Result{}, err
	}
	seqB, err := symbols("B", b)
	if err != nil {
		return Result{}, err
	}

	model, err := normalize(penalties)
	if err != nil {
		return Result{}, err
	}

	mode, gaps, err := method.plan()
	if err != nil {
		return Result{}, err
	}

	began := time.Now()
	m := scoring.New(seqA, seqB, model, mode, gaps)
	if err = m.FillConcurrent(ctx, o.workers); err != nil {
		return Result{}, fmt.Errorf("align: fill %s: %w", method.Description(), err)
	}
	start, score, err := m.Start()
	if err != nil {
		return Result{}, fmt.Errorf("align: start: %w", err)
	}
	tb, err := m.Trace(start)
	if err != nil {
		return Result{}, fmt.Errorf("align: trace: %w", err)
	}

	o.logger.LogAttrs(ctx, slog.LevelDebug, "alignment complete",
		slog.String("method", method.Description()),
		slog.String("mode", mode.String()),
		slog.String("gaps", gaps.String()),
		slog.Bool("affine_penalties", model.Affine()),
		slog.Int("len_a", len(seqA)),
		slog.Int("len_b", len(seqB)),
		slog.Int("workers", o.workers),
		slog.Int64("score", score),
		slog.Duration("elapsed", time.Since(began)),
	)

	return Result{Score: int(score), AlignedA: tb.AlignedA, AlignedB: tb.AlignedB}, nil
}

// symbols decodes s into runes; a string that is not valid UTF-8 is not a
// sequence of symbols.
func symbols(name, s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: sequence %s is not valid UTF-8", ErrParameter, name)
	}

	return []rune(s), nil
}

// normalize resolves the caller's penalties into a complete model.
func normalize(p *penalty.Config) (penalty.Model, error) {
	if p == nil {
		return penalty.Default(), nil
	}
	m, err := p.Normalize()
	if err != nil {
		return penalty.Model{}, fmt.Errorf("%w: %w", ErrParameter, err)
	}

	return m, nil
}
