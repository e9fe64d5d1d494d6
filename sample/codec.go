package sample

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hsp-iit/learn-ltl/trace"
)

// Sentinel errors surfaced at the serialisation boundary, per the
// error handling design's error kinds.
var (
	ErrFileIO               = errors.New("sample: file i/o error")
	ErrParseFormat          = errors.New("sample: malformed or unsupported sample document")
	ErrAritySearchExhausted = errors.New("sample: could not determine a consistent variable count for this document")
)

// doc is the shared, format-agnostic document shape both the .json and
// the .ron codec parse into and serialise from: var_names plus two
// lists of traces, each trace a list of time steps, each step a list of
// N booleans.
type doc struct {
	VarNames       []string   `json:"var_names,omitempty"`
	PositiveTraces [][][]bool `json:"positive_traces"`
	NegativeTraces [][][]bool `json:"negative_traces"`
}

// Load reads a sample document from path, dispatching on file
// extension (".json" or ".ron"), and builds a Sample from it.
//
// The original implementations this module is derived from store the
// trace width N as a compile-time generic parameter and so must
// brute-force try successive N values until one lets the document
// parse. Go's dynamic slice types don't share that limitation: N is
// read directly off var_names (if present) or off the width of the
// document's own trace data. ErrAritySearchExhausted plays the
// equivalent role here: it is returned when the document's own data
// disagrees about its width (e.g. steps of differing lengths), the
// functional situation the brute-force search existed to detect.
func Load(path string) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileIO, path, err)
	}
	var d doc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		d, err = decodeJSON(data)
	case ".ron":
		d, err = decodeRON(data)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrParseFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFormat, path, err)
	}
	return fromDoc(d)
}

// Save writes s to path in the format implied by its extension.
func Save(path string, s *Sample) error {
	d := toDoc(s)
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = encodeJSON(d)
	case ".ron":
		data, err = encodeRON(d)
	default:
		return fmt.Errorf("%w: unsupported extension %q", ErrParseFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrParseFormat, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFileIO, path, err)
	}
	return nil
}

func fromDoc(d doc) (*Sample, error) {
	n, err := inferArity(d)
	if err != nil {
		return nil, err
	}
	names := d.VarNames
	s := New(n, names)
	for _, raw := range d.PositiveTraces {
		tr, err := traceFromBits(raw, n)
		if err != nil {
			return nil, err
		}
		if err := s.AddPositive(tr); err != nil {
			return nil, err
		}
	}
	for _, raw := range d.NegativeTraces {
		tr, err := traceFromBits(raw, n)
		if err != nil {
			return nil, err
		}
		if err := s.AddNegative(tr); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func toDoc(s *Sample) doc {
	d := doc{VarNames: s.Names}
	for _, tr := range s.Positive {
		d.PositiveTraces = append(d.PositiveTraces, traceToBits(tr, s.N))
	}
	for _, tr := range s.Negative {
		d.NegativeTraces = append(d.NegativeTraces, traceToBits(tr, s.N))
	}
	return d
}

func traceFromBits(raw [][]bool, n int) (trace.Trace, error) {
	tr := make(trace.Trace, len(raw))
	for i, step := range raw {
		if len(step) != n {
			return nil, fmt.Errorf("%w: time step %d has %d values, want %d", ErrParseFormat, i, len(step), n)
		}
		tr[i] = trace.NewValuation(step)
	}
	return tr, nil
}

func traceToBits(tr trace.Trace, n int) [][]bool {
	out := make([][]bool, len(tr))
	for i, step := range tr {
		out[i] = step.Bits(n)
	}
	return out
}

// inferArity determines N from the document: the length of var_names
// when present, otherwise the width of the first time step found in
// either trace list. It returns ErrAritySearchExhausted when no
// consistent width can be determined (conflicting step widths, or
// var_names disagreeing with the trace data).
func inferArity(d doc) (int, error) {
	n := -1
	if len(d.VarNames) > 0 {
		n = len(d.VarNames)
	}
	for _, list := range [][][][]bool{d.PositiveTraces, d.NegativeTraces} {
		for _, tr := range list {
			for _, step := range tr {
				if n == -1 {
					n = len(step)
					continue
				}
				if len(step) != n {
					return 0, fmt.Errorf("%w: inconsistent step width %d, expected %d", ErrAritySearchExhausted, len(step), n)
				}
			}
		}
	}
	if n == -1 {
		// No var_names and no non-empty traces to measure: a width-0
		// sample of only empty traces (or no traces at all) is valid.
		n = 0
	}
	return n, nil
}
