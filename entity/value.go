package entity

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Value wraps a field value and provides loose conversion helpers.
//
// Conversions never fail on unexpected types: String falls back to "",
// Number to NaN and Timestamp to NaN so that filters and comparators can
// treat missing or odd values as ordinary data.
type Value struct {
	Raw any
}

// String returns the value as a string, "" for nil.
func (v Value) String() string {
	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case bool:
		return strconv.FormatBool(raw)
	case json.Number:
		return raw.String()
	case time.Time:
		return raw.Format(time.RFC3339)
	}

	if f, ok := asFloat(v.Raw); ok {
		return formatFloat(f)
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Number coerces the value to a float64, returning NaN when it cannot.
// Empty and blank strings coerce to 0 and booleans to 1 or 0.
func (v Value) Number() float64 {
	switch raw := v.Raw.(type) {
	case nil:
		return math.NaN()
	case bool:
		if raw {
			return 1
		}
		return 0
	case string:
		return parseNumber(raw)
	case json.Number:
		return parseNumber(raw.String())
	case time.Time:
		return float64(raw.UnixMilli())
	}

	if f, ok := asFloat(v.Raw); ok {
		return f
	}
	return math.NaN()
}

// IsNumber reports whether the raw value is a Go numeric type.
func (v Value) IsNumber() bool {
	_, ok := asFloat(v.Raw)
	return ok
}

// Float returns the value as a float64 if it is numeric.
func (v Value) Float() (float64, error) {
	f, ok := asFloat(v.Raw)
	if !ok {
		return 0, errors.Errorf("value is not numeric: %T", v.Raw)
	}
	return f, nil
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	b, ok := v.Raw.(bool)
	if !ok {
		return false, errors.Errorf("value is not a bool: %T", v.Raw)
	}
	return b, nil
}

// Time returns the value as a time.Time, parsing strings and treating
// numbers as epoch milliseconds.
func (v Value) Time() (time.Time, error) {
	switch raw := v.Raw.(type) {
	case time.Time:
		return raw, nil
	case string:
		return parseTime(raw)
	}

	if f, ok := asFloat(v.Raw); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return time.UnixMilli(int64(f)), nil
	}
	return time.Time{}, errors.Errorf("value is not a time: %T", v.Raw)
}

// Timestamp returns epoch milliseconds, NaN when the value is not a time.
func (v Value) Timestamp() float64 {
	t, err := v.Time()
	if err != nil {
		return math.NaN()
	}
	return float64(t.UnixMilli())
}

// unexported

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"2006-01",
	"2006",
	"Mon Jan 02 2006 15:04:05 GMT-0700", // Date.prototype.toString
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.RubyDate,
	time.ANSIC,
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"01/02/2006",
}

func parseTime(in string) (t time.Time, err error) {

	in = strings.TrimSpace(in)
	if idx := strings.Index(in, " ("); idx > 0 && strings.HasSuffix(in, ")") {
		in = in[:idx] // zone name suffix as in "GMT+0100 (British Summer Time)"
	}

	for _, layout := range timeLayouts {
		t, err = time.Parse(layout, in)
		if err == nil {
			return
		}
	}

	err = errors.Errorf("failed to parse %q as time", in)
	return
}

func parseNumber(in string) float64 {

	in = strings.TrimSpace(in)
	switch in {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	lower := strings.ToLower(in)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(in, "_") {
		return math.NaN()
	}

	if strings.HasPrefix(lower, "0x") || strings.HasPrefix(lower, "0o") || strings.HasPrefix(lower, "0b") {
		i, err := strconv.ParseInt(in, 0, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(i)
	}

	f, err := strconv.ParseFloat(in, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func asFloat(raw any) (float64, bool) {
	switch n := raw.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
