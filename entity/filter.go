package entity

import (
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FilterKind represents a filter predicate type.
type FilterKind int

const (
	Unknown FilterKind = iota

	// Substring
	Includes
	Excludes

	// Relational
	MoreThan
	LessThan
	MoreThanOrEqual
	LessThanOrEqual
	Equal

	// Range
	WithinRange
	OutsideRange
)

var kindNames = map[FilterKind]string{
	Includes:        "includes",
	Excludes:        "excludes",
	MoreThan:        "moreThan",
	LessThan:        "lessThan",
	MoreThanOrEqual: "moreThanOrEqual",
	LessThanOrEqual: "lessThanOrEqual",
	Equal:           "equal",
	WithinRange:     "withinRange",
	OutsideRange:    "outsideRange",
}

var kindFromName = map[string]FilterKind{}

func init() {
	for kind, name := range kindNames {
		kindFromName[name] = kind
	}
}

// ParseFilterKind maps a kind name such as "withinRange" to its FilterKind.
// Unrecognized names yield Unknown.
func ParseFilterKind(name string) FilterKind {
	return kindFromName[name]
}

// String returns the kind's name.
func (kind FilterKind) String() string {
	name, ok := kindNames[kind]
	if !ok {
		return "unknown"
	}
	return name
}

// IsComparison reports whether kind is one of the relational kinds.
func (kind FilterKind) IsComparison() bool {
	switch kind {
	case MoreThan, LessThan, MoreThanOrEqual, LessThanOrEqual, Equal:
		return true
	}
	return false
}

// IsRange reports whether kind expects a [lo, hi] value.
func (kind FilterKind) IsRange() bool {
	return kind == WithinRange || kind == OutsideRange
}

// MarshalYAML implements yaml.Marshaler.
func (kind FilterKind) MarshalYAML() (any, error) {
	return kind.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (kind *FilterKind) UnmarshalYAML(node *yaml.Node) (err error) {

	var name string
	err = node.Decode(&name)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode filter type")
		return
	}

	*kind = ParseFilterKind(name)
	return
}

// Range is an inclusive [lo, hi] pair; lo <= hi is not enforced.
type Range [2]float64

// Min returns the lower bound.
func (rng Range) Min() float64 { return rng[0] }

// Max returns the upper bound.
func (rng Range) Max() float64 { return rng[1] }

// FilterValue holds either a scalar (string or number) or a Range.
// The zero value is the empty string scalar.
type FilterValue struct {
	scalar any
	rng    *Range
}

// Text returns a string scalar value.
func Text(s string) FilterValue {
	return FilterValue{scalar: s}
}

// Number returns a numeric scalar value.
func Number(f float64) FilterValue {
	return FilterValue{scalar: f}
}

// Between returns a range value.
func Between(lo, hi float64) FilterValue {
	return FilterValue{rng: &Range{lo, hi}}
}

// IsRange reports whether the value is a range.
func (fv FilterValue) IsRange() bool {
	return fv.rng != nil
}

// Range returns the range and true when the value is a range.
func (fv FilterValue) Range() (Range, bool) {
	if fv.rng == nil {
		return Range{}, false
	}
	return *fv.rng, true
}

// Scalar returns the scalar (string or float64) and true when the value
// is not a range.
func (fv FilterValue) Scalar() (any, bool) {
	if fv.rng != nil {
		return nil, false
	}
	if fv.scalar == nil {
		return "", true
	}
	return fv.scalar, true
}

// String formats the value for display.
func (fv FilterValue) String() string {
	if rng, ok := fv.Range(); ok {
		return fmt.Sprintf("[%s, %s]", formatFloat(rng[0]), formatFloat(rng[1]))
	}
	scalar, _ := fv.Scalar()
	return Value{Raw: scalar}.String()
}

// MarshalYAML implements yaml.Marshaler.
func (fv FilterValue) MarshalYAML() (any, error) {
	if rng, ok := fv.Range(); ok {
		return []float64{rng[0], rng[1]}, nil
	}
	scalar, _ := fv.Scalar()
	return scalar, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (fv *FilterValue) UnmarshalYAML(node *yaml.Node) (err error) {

	switch node.Kind {
	case yaml.SequenceNode:
		var pair []float64
		err = node.Decode(&pair)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode range value")
			return
		}
		if len(pair) != 2 {
			err = errors.Errorf("range value needs 2 bounds, got %d", len(pair))
			return
		}
		*fv = Between(pair[0], pair[1])

	case yaml.ScalarNode:
		var scalar any
		err = node.Decode(&scalar)
		if err != nil {
			err = errors.Wrapf(err, "failed to decode scalar value")
			return
		}
		switch val := scalar.(type) {
		case int:
			*fv = Number(float64(val))
		case float64:
			*fv = Number(val)
		case string:
			*fv = Text(val)
		default:
			*fv = Text(Value{Raw: val}.String())
		}

	default:
		err = errors.Errorf("unsupported filter value at line %d", node.Line)
	}
	return
}

// Filter is a named predicate over one or more record paths.
// A record passes when the value at any of Keys satisfies the predicate.
type Filter struct {
	Name  string      `yaml:"name"`
	Kind  FilterKind  `yaml:"type"`
	Keys  []string    `yaml:"keys"`
	Value FilterValue `yaml:"value"`
}

// Clone returns a copy that shares no key slice with f.
func (f Filter) Clone() Filter {
	f.Keys = append([]string(nil), f.Keys...)
	return f
}
