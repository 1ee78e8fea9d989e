// SPDX-License-Identifier: MIT

// Package report serializes alignment results for the command line.
//
// Formats:
//
//	csv   : one record "score;alignedA;alignedB"
//	json  : one object with method, penalties and the result
//	yaml  : same fields as json
//	pretty: score plus the two aligned lines around a match line
//	         ('|' match, '.' mismatch, ' ' gap), optionally colored
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/penalty"
)

// Format names an output encoding.
type Format string

const (
	CSV    Format = "csv"
	JSON   Format = "json"
	YAML   Format = "yaml"
	Pretty Format = "pretty"
)

// Separator splits the fields of a csv record.
const Separator = ';'

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{CSV, JSON, YAML, Pretty}
}

// ParseFormat reads a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Record is everything a report can show about one alignment.
type Record struct {
	Method    string        `json:"method" yaml:"method"`
	Penalties penalty.Model `json:"penalties" yaml:"penalties"`
	Score     int           `json:"score" yaml:"score"`
	AlignedA  string        `json:"aligned_a" yaml:"aligned_a"`
	AlignedB  string        `json:"aligned_b" yaml:"aligned_b"`
}

// Write encodes rec to w in format f. styled only affects Pretty.
func Write(w io.Writer, f Format, rec Record, styled bool) error {
	switch f {
	case CSV:
		return writeCSV(w, rec)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rec)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}

		return enc.Close()
	case Pretty:
		return writePretty(w, rec, styled)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// writeCSV emits the one-line score;alignedA;alignedB record. Fields are
// written verbatim: symbols are never quoted or escaped, so a separator
// inside a sequence is printed as is.
func writeCSV(w io.Writer, rec Record) error {
	_, err := fmt.Fprintf(w, "%d%c%s%c%s\n", rec.Score, Separator, rec.AlignedA, Separator, rec.AlignedB)

	return err
}
