// Package export writes computed sequences in machine-readable formats: the
// OEIS b-file, and JSON or YAML reports selected by file extension.
package export

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agbru/dangle/internal/cevian"
	"github.com/agbru/dangle/internal/orchestration"
)

// ErrUnknownFormat is returned for an export path whose extension is not
// .json, .yaml or .yml.
var ErrUnknownFormat = errors.New("unknown export format")

// Report is the exported description of a run.
type Report struct {
	Shape     string          `json:"shape" yaml:"shape"`
	Method    string          `json:"method" yaml:"method"`
	Tolerance float64         `json:"tolerance" yaml:"tolerance"`
	Entries   []Entry         `json:"entries" yaml:"entries"`
	Witnesses *WitnessListing `json:"witnesses,omitempty" yaml:"witnesses,omitempty"`
}

// Entry is one value of the sequence. Rule is set where the closed form
// applies.
type Entry struct {
	N     int  `json:"n" yaml:"n"`
	Value int  `json:"value" yaml:"value"`
	Rule  *int `json:"rule,omitempty" yaml:"rule,omitempty"`
}

// WitnessListing holds the concurrent triples of a single n.
type WitnessListing struct {
	N       int      `json:"n" yaml:"n"`
	Triples [][3]int `json:"triples" yaml:"triples,flow"`
}

// NewReport assembles a report from a computed batch. witnesses may be nil.
func NewReport(shape cevian.Triangle, method string, tolerance float64, entries []orchestration.SequenceEntry, witnesses *orchestration.SequenceEntry) Report {
	r := Report{
		Shape:     shape.String(),
		Method:    method,
		Tolerance: tolerance,
		Entries:   make([]Entry, len(entries)),
	}
	for i, e := range entries {
		r.Entries[i] = Entry{N: e.N, Value: e.Value}
		if cevian.RuleApplies(e.N, shape) {
			rule := cevian.RuleValue(e.N)
			r.Entries[i].Rule = &rule
		}
	}
	if witnesses != nil {
		listing := &WitnessListing{N: witnesses.N, Triples: make([][3]int, len(witnesses.Witnesses))}
		for i, t := range witnesses.Witnesses {
			listing.Triples[i] = [3]int{t.I, t.J, t.K}
		}
		r.Witnesses = listing
	}
	return r
}

// WriteBFile writes "n a(n)" lines with offset 1.
func WriteBFile(path string, values []int) error {
	return writeFile(path, func(w *bufio.Writer) error {
		for i, v := range values {
			if _, err := fmt.Fprintf(w, "%d %d\n", i+1, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteReport writes r as JSON or YAML depending on the extension of path.
func WriteReport(path string, r Report) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return WriteJSON(path, r)
	case ".yaml", ".yml":
		return WriteYAML(path, r)
	default:
		return fmt.Errorf("%w %q (use .json, .yaml or .yml)", ErrUnknownFormat, ext)
	}
}

// WriteJSON writes r as indented JSON.
func WriteJSON(path string, r Report) error {
	return writeFile(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	})
}

// WriteYAML writes r as YAML.
func WriteYAML(path string, r Report) error {
	return writeFile(path, func(w *bufio.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	})
}

// LoadReport reads a report written by WriteReport.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	var r Report
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &r)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &r)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}

// writeFile creates path (and its directory) and runs fill on a buffered
// writer, reporting the first of the fill, flush and close errors.
func writeFile(path string, fill func(*bufio.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return w.Flush()
}
