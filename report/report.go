// Package report collects benchmark results and renders them as text or YAML.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gaarutyunov/binpacking/binpack"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown report format: %s", s)
	}
}

type Instance struct {
	Objects    int    `yaml:"objects"`
	Capacity   uint64 `yaml:"capacity"`
	Min        uint64 `yaml:"min"`
	Max        uint64 `yaml:"max"`
	Sum        uint64 `yaml:"sum"`
	LowerBound int    `yaml:"lower_bound"`
}

type Entry struct {
	Algorithm string `yaml:"algorithm"`
	Bins      int    `yaml:"bins,omitempty"`
	// Deviation is the excess over the lower bound in percent.
	Deviation float64 `yaml:"deviation"`
	Seconds   float64 `yaml:"seconds"`
	Error     string  `yaml:"error,omitempty"`
}

type Report struct {
	Instance Instance `yaml:"instance"`
	Results  []Entry  `yaml:"results"`
}

func New(inst binpack.Instance) *Report {
	return &Report{
		Instance: Instance{
			Objects:    inst.Len(),
			Capacity:   inst.Capacity,
			Min:        inst.MinWeight,
			Max:        inst.MaxWeight,
			Sum:        inst.SumWeight,
			LowerBound: inst.LowerBound(),
		},
	}
}

// Entry builds the report line of one run. err takes precedence over res.
func (r *Report) Entry(name string, res binpack.Result, elapsed time.Duration, err error) Entry {
	if err != nil {
		return Entry{Algorithm: name, Error: err.Error()}
	}

	e := Entry{
		Algorithm: name,
		Bins:      res.Bins,
		Seconds:   elapsed.Seconds(),
	}

	if lb := r.Instance.LowerBound; lb > 0 {
		e.Deviation = float64(res.Bins-lb) / float64(lb) * 100
	}

	return e
}

func (r *Report) Add(entries ...Entry) {
	r.Results = append(r.Results, entries...)
}

func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case YAML:
		return r.WriteYAML(w)
	default:
		return r.WriteText(w)
	}
}

func (r *Report) WriteText(w io.Writer) error {
	var builder strings.Builder

	fmt.Fprintf(&builder, "#objects:\t%d\n", r.Instance.Objects)
	fmt.Fprintf(&builder, "capacity:\t%d\n", r.Instance.Capacity)
	fmt.Fprintf(&builder, "min:\t%d\n", r.Instance.Min)
	fmt.Fprintf(&builder, "max:\t%d\n", r.Instance.Max)
	fmt.Fprintf(&builder, "sum:\t%d\n", r.Instance.Sum)
	fmt.Fprintf(&builder, "lower bound:\t%d\n\n", r.Instance.LowerBound)

	for _, e := range r.Results {
		if e.Error != "" {
			fmt.Fprintf(&builder, "%s: error: %s\n", e.Algorithm, e.Error)
			continue
		}

		fmt.Fprintf(&builder, "%s: %d bins, +%.2f%%, %.6fs\n", e.Algorithm, e.Bins, e.Deviation, e.Seconds)
	}

	_, err := io.WriteString(w, builder.String())

	return err
}

func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}
