package entity

// Column describes how a record path is shown in a table.
type Column struct {
	Field  string `yaml:"field"`
	Label  string `yaml:"label,omitempty"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Header returns the label, falling back to the field path.
func (col Column) Header() string {
	if col.Label != "" {
		return col.Label
	}
	return col.Field
}
