package filter

import (
	nt "vista/entity"
	"vista/predicate"
	"vista/snapshot"
)

// Evaluate folds filters over records in order, keeping the records that
// pass every filter. The input slice is never modified.
//
// A filter with no keys, an unknown kind, or a value whose shape does not
// suit its kind narrows nothing.
func Evaluate(records []nt.Record, filters []nt.Filter) []nt.Record {
	acc := snapshot.Copy(records)
	for _, f := range filters {
		acc = Apply(acc, f)
	}
	return acc
}

// Apply runs a single filter over records.
func Apply(records []nt.Record, f nt.Filter) []nt.Record {

	if len(f.Keys) == 0 {
		return records
	}

	pred, ok := predicateFor(f)
	if !ok {
		return records
	}

	kept := make([]nt.Record, 0, len(records))
	for _, rec := range records {
		if predicate.AnyKey(rec, f.Keys, pred) {
			kept = append(kept, rec)
		}
	}
	return kept
}

// unexported

func predicateFor(f nt.Filter) (pred predicate.Predicate, ok bool) {

	switch {
	case f.Kind == nt.Includes || f.Kind == nt.Excludes:
		needle, isScalar := f.Value.Scalar()
		if !isScalar {
			return
		}
		if f.Kind == nt.Includes {
			return func(val any) bool { return predicate.Includes(val, needle) }, true
		}
		return func(val any) bool { return predicate.Excludes(val, needle) }, true

	case f.Kind.IsComparison():
		target, isScalar := f.Value.Scalar()
		if !isScalar {
			return
		}
		return func(val any) bool { return predicate.Compare(val, target, f.Kind) }, true

	case f.Kind.IsRange():
		rng, isRange := f.Value.Range()
		if !isRange {
			return
		}
		return func(val any) bool { return predicate.CheckRange(val, rng, f.Kind) }, true
	}
	return
}
