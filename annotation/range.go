package annotation

import "fmt"

// Range is an inclusive span of zero-based line indices.
type Range struct {
	Start int `json:"start_line" yaml:"start_line"`
	End   int `json:"end_line"   yaml:"end_line"`
}

// Line returns a [Range] covering the single line i.
func Line(i int) Range {
	return Range{Start: i, End: i}
}

// Len returns the number of lines in r.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// Contains reports whether line i is inside r.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i <= r.End
}

// String formats r as "start-end".
func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
