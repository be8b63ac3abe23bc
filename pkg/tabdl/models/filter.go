package models

// FilterSpec maps a view filter field to the candidate values to keep.
// Values are scalars compared by equality.
type FilterSpec map[string][]any

// Empty reports whether no filter fields are set.
func (f FilterSpec) Empty() bool {
	return len(f) == 0
}

// ViewFilter is the filter clause of a single scoped query: Field must be one
// of Values.
type ViewFilter struct {
	// Field is the view filter field name.
	Field string `json:"field"`
	// Values holds the already formatted values.
	Values []string `json:"values"`
}
