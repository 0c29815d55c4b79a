// Package message holds the bubbletea messages passed around browse.
package message

import (
	nt "vista/entity"
)

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// RecordsMsg carries records fetched from the source
type RecordsMsg struct {
	Records []nt.Record
}
