// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render writes command results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an output format. It implements flag.Value so it can be bound to
// a command-line flag, and encoding.TextUnmarshaler so it can be read from
// TOML.
type Format int

const (
	// Text is a human readable table.
	Text Format = iota
	// JSON is indented JSON.
	JSON
	// YAML is a YAML document.
	YAML
)

// FormatPtr returns a pointer to f, for registering flags.
func FormatPtr(f Format) *Format {
	return &f
}

// String implements flag.Value and fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Set implements flag.Value.
func (f *Format) Set(v string) error {
	switch strings.ToLower(v) {
	case "text":
		*f = Text
	case "json":
		*f = JSON
	case "yaml", "yml":
		*f = YAML
	default:
		return fmt.Errorf("invalid format %q, must be 'text', 'json' or 'yaml'", v)
	}
	return nil
}

// Get implements flag.Getter.
func (f *Format) Get() any {
	return *f
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	return f.Set(string(b))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Texter is implemented by results that know how to print themselves as
// text.
type Texter interface {
	WriteText(w io.Writer) error
}

// Write writes v to w in format f.
func Write(w io.Writer, f Format, v Texter) error {
	switch f {
	case Text:
		return v.WriteText(w)
	case JSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling json: %w", err)
		}
		b = append(b, '\n')
		_, err = w.Write(b)
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %v", f)
	}
}

// Snapshot is the order of a chain's payloads after one step of a demo.
type Snapshot struct {
	Step   string `json:"step" yaml:"step"`
	Values []int  `json:"values" yaml:"values,flow"`
}

// Trace is the sequence of snapshots one node shape went through.
type Trace struct {
	Shape string     `json:"shape" yaml:"shape"`
	Steps []Snapshot `json:"steps" yaml:"steps"`
}

// Traces is a Texter over several traces.
type Traces []Trace

// WriteText implements Texter.
func (ts Traces) WriteText(w io.Writer) error {
	for _, t := range ts {
		if _, err := fmt.Fprintf(w, "%s:\n", t.Shape); err != nil {
			return err
		}
		for _, s := range t.Steps {
			vals := make([]string, len(s.Values))
			for i, v := range s.Values {
				vals[i] = fmt.Sprint(v)
			}
			if _, err := fmt.Fprintf(w, "  %-12s %s\n", s.Step+":", strings.Join(vals, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
