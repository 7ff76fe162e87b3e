package loc

// Loc is a single position in an abbreviation: the 0-based byte offset
// from the start of the input.
type Loc struct {
	Start int
}

// Range anchors an ExpandError/DiagnosticMessage to the span of input
// that produced it: Loc.Start plus a length, 0 when only a point (not a
// span) is known.
type Range struct {
	Loc Loc
	Len int
}

func (r Range) End() int {
	return r.Loc.Start + r.Len
}
