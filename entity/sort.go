package entity

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction; anything but Ascending flips to
// Ascending.
func (dir Direction) Flip() Direction {
	if dir == Ascending {
		return Descending
	}
	return Ascending
}

// SortType names a built-in comparator for a sort key.
type SortType string

const (
	SortBasic        SortType = "basic"
	SortAlphaNumeric SortType = "alphanumeric"
	SortDateTime     SortType = "datetime"
	SortNumeric      SortType = "numeric"
)

// Comparator orders two resolved values, returning a negative number when
// a sorts first, positive when b does, zero for a tie.
type Comparator func(a, b any) int
