package sorted

import (
	"math"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	nt "vista/entity"
	"vista/keypath"
)

// ComparisonValues resolves key on both records, swapping them for a
// descending sort so that comparators always order ascending.
// With no key the records themselves are returned.
func ComparisonValues(a, b nt.Record, key string, dir nt.Direction) (any, any) {

	if key == "" {
		if dir == nt.Ascending {
			return a, b
		}
		return b, a
	}

	if dir == nt.Ascending {
		return keypath.Resolve(a, key), keypath.Resolve(b, key)
	}
	return keypath.Resolve(b, key), keypath.Resolve(a, key)
}

// Basic orders numbers numerically, strings lexically and false before
// true. A number and a string compare as numbers, with a string that is
// not numeric after every number. Between other kinds bools come before
// numbers and strings.
//
// Missing values (nil, NaN and any non-string, non-bool value that does
// not coerce to a number) tie with each other and sort after every
// present value.
func Basic(a, b any) int {

	if res, ok := rankMissing(a, b); ok {
		return res
	}

	va, vb := nt.Value{Raw: a}, nt.Value{Raw: b}

	switch {
	case isString(a) && isString(b):
		return strings.Compare(a.(string), b.(string))

	case isBool(a) != isBool(b):
		if isBool(a) {
			return -1
		}
		return 1
	}
	return compareFloat(va.Number(), vb.Number())
}

// Numeric coerces both values to numbers before comparing; values that do
// not coerce sort last.
func Numeric(a, b any) int {
	return compareFloat(nt.Value{Raw: a}.Number(), nt.Value{Raw: b}.Number())
}

// DateTime compares values as timestamps; unparseable values sort last.
func DateTime(a, b any) int {
	return compareFloat(nt.Value{Raw: a}.Timestamp(), nt.Value{Raw: b}.Timestamp())
}

// AlphaNumeric compares text with embedded numbers ordered by value, so
// "item2" sorts before "item10". Case is ignored except to put upper case
// first between otherwise equal strings.
func AlphaNumeric(a, b any) int {

	sa, sb := collatable(a), collatable(b)

	collator.Lock()
	res := collator.CompareString(sa, sb)
	collator.Unlock()

	if res != 0 {
		return res
	}
	return strings.Compare(sa, sb)
}

// Builtin returns the comparator for a sort type, Basic for unknown types.
func Builtin(typ nt.SortType) nt.Comparator {

	switch typ {
	case nt.SortDateTime:
		return DateTime
	case nt.SortAlphaNumeric:
		return AlphaNumeric
	case nt.SortNumeric:
		return Numeric
	}
	return Basic
}

// unexported

var collator = struct {
	sync.Mutex
	*collate.Collator
}{
	Collator: collate.New(language.Und, collate.Numeric, collate.IgnoreCase),
}

// compareFloat orders NaN after every number.
func compareFloat(a, b float64) int {

	nanA, nanB := math.IsNaN(a), math.IsNaN(b)
	switch {
	case nanA && nanB:
		return 0
	case nanA:
		return 1
	case nanB:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func collatable(val any) string {

	switch v := val.(type) {
	case string:
		return v
	}

	value := nt.Value{Raw: val}
	if !value.IsNumber() {
		return ""
	}

	f := value.Number()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ""
	}
	return value.String()
}

// rankMissing orders missing values last, reporting false when neither
// value is missing.
func rankMissing(a, b any) (int, bool) {

	ma, mb := missing(a), missing(b)
	switch {
	case ma && mb:
		return 0, true
	case ma:
		return 1, true
	case mb:
		return -1, true
	}
	return 0, false
}

func missing(val any) bool {

	switch val.(type) {
	case string, bool:
		return false
	}
	return math.IsNaN(nt.Value{Raw: val}.Number())
}

func isString(val any) bool {
	_, ok := val.(string)
	return ok
}

func isBool(val any) bool {
	_, ok := val.(bool)
	return ok
}
