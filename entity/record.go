package entity

// Record is one item of a collection: a field name to value mapping whose
// values may nest further maps ([map[string]any]) and sequences ([]any).
type Record = map[string]any
