// Package numbering implements the `$`-run directive grammar shared by
// every literal string in the HTML dialect (tag names, classes, ids,
// attribute values, inline text). See spec §4.4.
package numbering

import "fmt"

// Directive is one `$`-run, optionally modified by a trailing `@` clause.
type Directive struct {
	Digits    int // width of the zero-padded number, i.e. the run length
	Ascending bool
	Base      int
}

// Segment is either literal text (Directive == nil) or a numbering
// directive to instantiate per clone.
type Segment struct {
	Literal   string
	Directive *Directive
}

// Value returns the zero-padded decimal value for clone index i (0-based)
// out of n total clones.
func (d *Directive) Value(i, n int) string {
	var v int
	if d.Ascending {
		v = d.Base + i
	} else {
		v = (n + d.Base - 1) - i
	}
	return fmt.Sprintf("%0*d", d.Digits, v)
}

// Split breaks s into a sequence of literal/Directive segments. A string
// with no `$` directives splits into a single literal Segment, matching
// spec §4.4 ("the result of splitting a string with no directives is the
// string itself").
func Split(s string) []Segment {
	var segs []Segment
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			segs = append(segs, Segment{Literal: string(lit)})
			lit = lit[:0]
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && s[i+1] == '$':
			lit = append(lit, '$')
			i += 2
		case c == '$':
			k := 0
			for i < len(s) && s[i] == '$' {
				k++
				i++
			}
			ascending := true
			base := 1
			if i < len(s) && s[i] == '@' {
				i++
				if i < len(s) && s[i] == '-' {
					ascending = false
					i++
				}
				digitsStart := i
				for i < len(s) && s[i] >= '0' && s[i] <= '9' {
					i++
				}
				if i > digitsStart {
					base = atoi(s[digitsStart:i])
				}
			}
			flush()
			segs = append(segs, Segment{Directive: &Directive{Digits: k, Ascending: ascending, Base: base}})
		default:
			lit = append(lit, c)
			i++
		}
	}
	flush()

	if len(segs) == 0 {
		return []Segment{{Literal: ""}}
	}
	return segs
}

// Instantiate renders segs for clone i (0-based) of n total clones.
func Instantiate(segs []Segment, i, n int) string {
	out := make([]byte, 0, 16)
	for _, seg := range segs {
		if seg.Directive != nil {
			out = append(out, seg.Directive.Value(i, n)...)
		} else {
			out = append(out, seg.Literal...)
		}
	}
	return string(out)
}

// HasDirective reports whether any segment of segs is a numbering
// directive, i.e. whether this string needs per-clone instantiation at
// all rather than being reusable verbatim across clones.
func HasDirective(segs []Segment) bool {
	for _, seg := range segs {
		if seg.Directive != nil {
			return true
		}
	}
	return false
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
