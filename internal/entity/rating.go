package entity

// Rating holds the submitted values for one book. It shares the book's ID
// and carries a denormalized copy of the title that is kept in sync when
// the book is updated.
type Rating struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Values  []int   `json:"values"`
	Average float64 `json:"average"`
}

// TopBook is a projection of Rating served by the /top endpoint. It is
// recomputed on every query and never stored.
type TopBook struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Average float64 `json:"average"`
}
