// Package predicate holds the filtering primitives: substring match and
// mismatch, relational comparison and range membership.
//
// Relational and range predicates coerce operands to numbers; anything
// that does not coerce becomes NaN and every comparison against NaN is
// false.
package predicate

import (
	"math"
	"strings"

	nt "vista/entity"
	"vista/keypath"
)

// Predicate tests a single resolved value.
type Predicate func(val any) bool

// Includes reports whether the stringified value contains the needle,
// ignoring case.
func Includes(val, needle any) bool {
	hay := strings.ToLower(nt.Value{Raw: val}.String())
	return strings.Contains(hay, strings.ToLower(nt.Value{Raw: needle}.String()))
}

// Excludes is the negation of Includes.
func Excludes(val, needle any) bool {
	return !Includes(val, needle)
}

// Compare applies a relational kind to val and target.
// Equal compares raw values; the others compare numerically.
// A kind that is not relational yields false.
func Compare(val, target any, kind nt.FilterKind) bool {

	if kind == nt.Equal {
		return strictEqual(val, target)
	}

	a := nt.Value{Raw: val}.Number()
	b := nt.Value{Raw: target}.Number()

	switch kind {
	case nt.MoreThan:
		return a > b
	case nt.LessThan:
		return a < b
	case nt.MoreThanOrEqual:
		return a >= b
	case nt.LessThanOrEqual:
		return a <= b
	}
	return false
}

// CheckRange tests val against an inclusive range.
// WithinRange holds for lo <= v <= hi and OutsideRange for v < lo or v > hi.
func CheckRange(val any, rng nt.Range, kind nt.FilterKind) bool {

	switch kind {
	case nt.WithinRange:
		return Compare(val, rng.Min(), nt.MoreThanOrEqual) && Compare(val, rng.Max(), nt.LessThanOrEqual)
	case nt.OutsideRange:
		return Compare(val, rng.Min(), nt.LessThan) || Compare(val, rng.Max(), nt.MoreThan)
	}
	return false
}

// AnyKey reports whether the value at any of keys satisfies pred.
func AnyKey(rec nt.Record, keys []string, pred Predicate) bool {
	for _, key := range keys {
		if pred(keypath.Resolve(rec, key)) {
			return true
		}
	}
	return false
}

// Coerce converts a scalar to a number for setters, using 0 where the
// value is not numeric.
func Coerce(val any) float64 {
	f := nt.Value{Raw: val}.Number()
	if math.IsNaN(f) {
		return 0
	}
	return f
}

// unexported

func strictEqual(a, b any) bool {

	va, vb := nt.Value{Raw: a}, nt.Value{Raw: b}
	if va.IsNumber() && vb.IsNumber() {
		fa, _ := va.Float()
		fb, _ := vb.Float()
		return fa == fb
	}

	switch ta := a.(type) {
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case nil:
		return b == nil
	}
	return false
}
