// SPDX-License-Identifier: MIT
// Package param: reading descriptor maps from YAML and JSON.

package param

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/amwg/ndarray"
)

// rawDescriptor is the loosely typed file form of a Descriptor.
type rawDescriptor struct {
	Type  string `yaml:"type" json:"type"`
	Dim   any    `yaml:"dim" json:"dim"`
	Lower any    `yaml:"lower" json:"lower"`
	Upper any    `yaml:"upper" json:"upper"`
	Init  any    `yaml:"init" json:"init"`
}

// UnmarshalYAML decodes a descriptor mapping such as
// {type: int, dim: [3, 3], lower: 0, init: 2}.
func (d *Descriptor) UnmarshalYAML(node *yaml.Node) error {
	var raw rawDescriptor
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: %w: %w", node.Line, ErrDecode, err)
	}
	parsed, err := raw.descriptor()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed

	return nil
}

// UnmarshalJSON decodes the JSON form of a descriptor.
func (d *Descriptor) UnmarshalJSON(b []byte) error {
	var raw rawDescriptor
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	parsed, err := raw.descriptor()
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// LoadYAML reads a name → descriptor mapping from r.
func LoadYAML(r io.Reader) (map[string]Descriptor, error) {
	out := make(map[string]Descriptor)
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		if err == io.EOF {
			return out, nil
		}
		return nil, err
	}

	return out, nil
}

// LoadJSON reads a name → descriptor mapping from r.
func LoadJSON(r io.Reader) (map[string]Descriptor, error) {
	out := make(map[string]Descriptor)
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// descriptor converts the file form into a Descriptor.
func (r rawDescriptor) descriptor() (Descriptor, error) {
	var d Descriptor
	d.Type = Type(strings.ToLower(strings.TrimSpace(r.Type)))

	dim, err := decodeDim(r.Dim)
	if err != nil {
		return Descriptor{}, err
	}
	d.Dim = dim

	if d.Lower, err = decodeBound("lower", r.Lower); err != nil {
		return Descriptor{}, err
	}
	if d.Upper, err = decodeBound("upper", r.Upper); err != nil {
		return Descriptor{}, err
	}

	if r.Init != nil {
		a, err := ndarray.FromNested(r.Init)
		if err != nil {
			return Descriptor{}, fmt.Errorf("init: %w: %w", ErrDecode, err)
		}
		if a.IsScalar() && !isList(r.Init) {
			d.Init = InitValue(a.Value())
		} else {
			d.Init = InitArray(a)
		}
	}

	return d, nil
}

// decodeDim accepts nil, a single number, or a list of numbers.
func decodeDim(v any) ([]int, error) {
	if v == nil {
		return nil, nil
	}
	a, err := ndarray.FromNested(v)
	if err != nil || a.Rank() != 1 {
		return nil, fmt.Errorf("dim %v: %w", v, ErrDecode)
	}
	dim := make([]int, a.Len())
	for i := range dim {
		f := a.Flat(i)
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("dim %v: non-integer extent: %w", v, ErrDecode)
		}
		dim[i] = int(f)
	}

	return dim, nil
}

// decodeBound accepts nil (not given), a number, or an infinity spelling.
func decodeBound(field string, v any) (*float64, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return Bound(x), nil
	case int:
		return Bound(float64(x)), nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "inf", "+inf", "infinity", "+infinity", ".inf":
			return Bound(math.Inf(1)), nil
		case "-inf", "-infinity", "-.inf":
			return Bound(math.Inf(-1)), nil
		}
	}

	return nil, fmt.Errorf("%s %v: %w", field, v, ErrDecode)
}

// isList reports whether v was written as a list in the source document.
func isList(v any) bool {
	_, ok := v.([]any)
	return ok
}
