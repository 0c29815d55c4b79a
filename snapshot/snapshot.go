// Package snapshot takes working copies of record collections and derives
// structural keys used to tell when a collection changed by value.
package snapshot

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/zeebo/xxh3"

	nt "vista/entity"
)

// Copy returns a shallow duplicate of records, safe to reorder.
func Copy(records []nt.Record) []nt.Record {
	dup := make([]nt.Record, len(records))
	copy(dup, records)
	return dup
}

// Canonical returns a deep serialization of val with map keys in sorted
// order, so structurally equal values yield equal keys.
func Canonical(val any) string {
	data, err := json.Marshal(val)
	if err != nil {
		// NaN and other values json refuses; fmt also sorts map keys
		return fmt.Sprintf("%#v", val)
	}
	return string(data)
}

// Fingerprint hashes the canonical form of every record in order.
func Fingerprint(records []nt.Record) uint64 {
	hasher := xxh3.New()
	for _, rec := range records {
		hasher.WriteString(Canonical(rec))
		hasher.Write([]byte{0x1e})
	}
	return hasher.Sum64()
}

// Tracker remembers the fingerprint of the last collection it was shown.
type Tracker struct {
	seen bool
	sum  uint64
}

// Changed reports whether records differ by value from the previous call,
// and records them as seen. The first call always reports a change.
func (trk *Tracker) Changed(records []nt.Record) bool {
	sum := Fingerprint(records)
	if trk.seen && sum == trk.sum {
		return false
	}

	trk.seen = true
	trk.sum = sum
	return true
}
