// Package fixture provides sample records shared by tests.
package fixture

import (
	"context"

	nt "vista/entity"
)

// People returns six records with nested prices.
// Each call returns fresh maps.
func People() []nt.Record {
	return []nt.Record{
		person("Simon", "Simon", 100, "100", "123444", "Wed Jul 31 1985 10:33:30 GMT+0100 (British Summer Time)", "GBP", "1200"),
		person("eamon", "eamon", 100, "1001", "123444", "Thu Jul 31 1958 10:33:30 GMT+0100 (British Summer Time)", "GBP", "1200"),
		person("emma2", "emma", 90, "0012", "123444", "Mon Jul 31 1978 10:33:30 GMT+0100 (British Summer Time)", "GBP", "120000"),
		person("Mike", "Mike", 10, "10", "1234s", "Sat Dec 23 1944 10:33:30 GMT+0000 (Greenwich Mean Time)", "GBP", "12000"),
		person("Emma", "Emma", 1, "1", "234s", "Mon Feb 02 1998 10:33:30 GMT+0000 (Greenwich Mean Time)", "GBP", "120"),
		person("Oreo", "Oreo", 101, "199", "34s", "Sat Oct 17 2026 09:12:00 GMT+0100 (British Summer Time)", "ZAR", "12"),
	}
}

// Ids returns the id of each record, in order.
func Ids(records []nt.Record) []string {
	ids := make([]string, len(records))
	for i, rec := range records {
		ids[i], _ = rec["id"].(string)
	}
	return ids
}

func person(id, name string, count int, number, complexKey, createdAt, currency, amount string) nt.Record {
	return nt.Record{
		"id":         id,
		"name":       name,
		"count":      count,
		"number":     number,
		"complexKey": complexKey,
		"createdAt":  createdAt,
		"price": map[string]any{
			"currency": currency,
			"amount":   amount,
		},
	}
}

// Logger records log calls.
type Logger struct {
	Infos  []string
	Errors []error
}

// Info records msg.
func (lgr *Logger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.Infos = append(lgr.Infos, msg)
}

// Error records err.
func (lgr *Logger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.Errors = append(lgr.Errors, err)
}
