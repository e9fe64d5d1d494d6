package sample

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hsp-iit/learn-ltl/trace"
)

func buildSample(t *testing.T) *Sample {
	t.Helper()
	s := New(2, []string{"x0", "x1"})
	if err := s.AddPositive(trace.Trace{v(true, false), v(false, true)}); err != nil {
		t.Fatal(err)
	}
	if err := s.AddNegative(trace.Trace{v(false, false)}); err != nil {
		t.Fatal(err)
	}
	return s
}

// TestRoundTrip is property 7 of spec.md §8: Load(Save(s)) reproduces
// the same positive/negative trace sets, for both supported extensions.
func TestRoundTrip(t *testing.T) {
	for _, ext := range []string{".json", ".ron"} {
		t.Run(ext, func(t *testing.T) {
			s := buildSample(t)
			path := filepath.Join(t.TempDir(), "sample"+ext)
			if err := Save(path, s); err != nil {
				t.Fatal(err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if got.N != s.N {
				t.Fatalf("N = %d, want %d", got.N, s.N)
			}
			if diff := cmp.Diff(s.Names, got.Names); diff != "" {
				t.Errorf("var-name table mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(bitsOf(s.Positive, s.N), bitsOf(got.Positive, got.N)); diff != "" {
				t.Errorf("positive traces mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(bitsOf(s.Negative, s.N), bitsOf(got.Negative, got.N)); diff != "" {
				t.Errorf("negative traces mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with an unsupported extension should fail")
	}
}

func TestLoadInconsistentStepWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ron")
	body := "positive_traces: [\n  [[true, false], [true]],\n]\nnegative_traces: []\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with inconsistent step widths should fail")
	}
}

func TestLoadDefaultsVarNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.ron")
	body := "positive_traces: [\n  [[true, false]],\n]\nnegative_traces: []\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Names, []string{"x0", "x1"}; len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Names = %v, want %v", got, want)
	}
}

// bitsOf converts a trace set to a plain [][]bool representation so
// cmp.Diff can compare it by value instead of by Valuation's unexported
// bit-packed layout.
func bitsOf(traces []trace.Trace, n int) [][][]bool {
	out := make([][][]bool, len(traces))
	for i, tr := range traces {
		out[i] = traceToBits(tr, n)
	}
	return out
}
