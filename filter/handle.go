package filter

import (
	"slices"

	nt "vista/entity"
)

// Handle is a view of one active filter with setters bound to its name.
// Setters on a handle whose filter has since been removed do nothing.
type Handle interface {
	// Filter returns the filter with its value fitted to its kind.
	Filter() nt.Filter
	// ToggleKey adds path to the filter's keys or removes it.
	ToggleKey(path string)
	// SetType changes the kind, coercing the stored value to the new shape.
	SetType(kind nt.FilterKind)
}

// ScalarHandle is the handle for substring and relational filters.
type ScalarHandle struct {
	base
}

// Value returns the scalar value.
func (hdl ScalarHandle) Value() any {
	scalar, _ := hdl.Filter().Value.Scalar()
	return scalar
}

// SetValue stores a new scalar; strings stay text and numbers stay numbers.
func (hdl ScalarHandle) SetValue(val any) {

	hdl.eng.modify(hdl.name, func(f *nt.Filter) {
		f.Value = scalarValue(val)
	})
}

// RangeHandle is the handle for range filters.
type RangeHandle struct {
	base
}

// Min returns the lower bound.
func (hdl RangeHandle) Min() float64 {
	return hdl.bounds().Min()
}

// Max returns the upper bound.
func (hdl RangeHandle) Max() float64 {
	return hdl.bounds().Max()
}

// SetMin sets the lower bound, to 0 when no value is given.
func (hdl RangeHandle) SetMin(val ...float64) {
	hdl.setBound(0, val)
}

// SetMax sets the upper bound, to 0 when no value is given.
func (hdl RangeHandle) SetMax(val ...float64) {
	hdl.setBound(1, val)
}

// unexported

type base struct {
	eng  *Engine
	name string
	snap nt.Filter
}

func (eng *Engine) handle(f nt.Filter) Handle {

	b := base{eng: eng, name: f.Name, snap: f.Clone()}
	if f.Kind.IsRange() {
		return RangeHandle{b}
	}
	return ScalarHandle{b}
}

func (b base) Filter() nt.Filter {

	f, ok := b.eng.current(b.name)
	if !ok {
		f = b.snap.Clone()
	}
	f.Value = reshape(f.Value, f.Kind)
	return f
}

func (b base) ToggleKey(path string) {

	b.eng.modify(b.name, func(f *nt.Filter) {
		idx := slices.Index(f.Keys, path)
		if idx < 0 {
			f.Keys = append(slices.Clone(f.Keys), path)
			return
		}
		f.Keys = slices.Delete(slices.Clone(f.Keys), idx, idx+1)
	})
}

func (b base) SetType(kind nt.FilterKind) {

	b.eng.modify(b.name, func(f *nt.Filter) {
		f.Kind = kind
		f.Value = reshape(f.Value, kind)
	})
}

func (hdl RangeHandle) bounds() nt.Range {
	rng, _ := hdl.Filter().Value.Range()
	return rng
}

func (hdl RangeHandle) setBound(side int, val []float64) {

	bound := 0.0
	if len(val) > 0 {
		bound = val[0]
	}

	hdl.eng.modify(hdl.name, func(f *nt.Filter) {
		rng, _ := reshape(f.Value, nt.WithinRange).Range()
		rng[side] = bound
		f.Value = nt.Between(rng.Min(), rng.Max())
	})
}

func scalarValue(val any) nt.FilterValue {

	switch v := val.(type) {
	case nt.FilterValue:
		return v
	case string:
		return nt.Text(v)
	}

	value := nt.Value{Raw: val}
	if value.IsNumber() {
		f, _ := value.Float()
		return nt.Number(f)
	}
	return nt.Text(value.String())
}
