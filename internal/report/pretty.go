// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// match line glyphs
const (
	glyphMatch    = '|'
	glyphMismatch = '.'
	glyphGap      = ' '
)

// palette colors one column of the pretty view by its glyph.
type palette struct {
	header, match, mismatch, gap lipgloss.Style
}

// newPalette builds the styles on a renderer bound to w, so color support
// is detected for the actual destination.
func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)

	return palette{
		header:   r.NewStyle().Bold(true),
		match:    r.NewStyle().Foreground(lipgloss.Color("2")),
		mismatch: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		gap:      r.NewStyle().Faint(true),
	}
}

// MatchLine marks each aligned column: '|' for equal symbols, '.' for
// different ones, ' ' when either side is a gap.
func MatchLine(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		switch {
		case ra[i] == '-' || rb[i] == '-':
			sb.WriteRune(glyphGap)
		case ra[i] == rb[i]:
			sb.WriteRune(glyphMatch)
		default:
			sb.WriteRune(glyphMismatch)
		}
	}

	return sb.String()
}

// writePretty prints a header and the three alignment lines.
func writePretty(w io.Writer, rec Record, styled bool) error {
	marks := MatchLine(rec.AlignedA, rec.AlignedB)
	header := fmt.Sprintf("%s  score=%d  %s", rec.Method, rec.Score, rec.Penalties)
	lines := []string{header, rec.AlignedA, marks, rec.AlignedB}

	if styled {
		p := newPalette(w)
		lines[0] = p.header.Render(header)
		lines[1] = p.colorize(rec.AlignedA, marks)
		lines[3] = p.colorize(rec.AlignedB, marks)
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}

// colorize renders each rune of s in the style of its column's mark.
func (p palette) colorize(s, marks string) string {
	rs, rm := []rune(s), []rune(marks)
	var sb strings.Builder
	for i, r := range rs {
		style := p.gap
		if i < len(rm) {
			switch rm[i] {
			case glyphMatch:
				style = p.match
			case glyphMismatch:
				style = p.mismatch
			}
		}
		sb.WriteString(style.Render(string(r)))
	}

	return sb.String()
}
