package vista

import (
	"context"

	nt "vista/entity"
)

// Static is a Source over records held in memory.
type Static struct {
	Label string
	Data  []nt.Record
}

// Name returns the label.
func (st *Static) Name() string {
	return st.Label
}

// Records returns the held records.
func (st *Static) Records(ctx context.Context) ([]nt.Record, error) {
	return st.Data, nil
}
