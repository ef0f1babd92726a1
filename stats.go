package dynarr

import "fmt"

// Stats is a structured debug description of an array. It reports
// logical sizes and growth bookkeeping only, never buffer addresses.
type Stats struct {
	Len    int `json:"len"`
	Cap    int `json:"cap"`
	Grows  int `json:"grows"`
	Copied int `json:"copied"`
}

// Stats returns the current debug description. Grows counts
// reallocation events since construction (or the last Reset/CopyFrom);
// Copied counts elements moved by those reallocations.
func (a *Array[T]) Stats() Stats {
	return Stats{
		Len:    a.size,
		Cap:    len(a.buf),
		Grows:  a.grows,
		Copied: a.copied,
	}
}

// LoadFactor returns Len/Cap, or 0 for an array with no storage.
func (s Stats) LoadFactor() float64 {
	if s.Cap == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Cap)
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("dynarr.Array{len:%d cap:%d grows:%d}", a.size, len(a.buf), a.grows)
}
