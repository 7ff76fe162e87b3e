// Package htmlexpr implements the HTML-like dialect of spec §4.2-§4.6: a
// recursive-descent parser producing a tagged-variant AST (Expr), an
// alias/lorem resolution pass, the AST-to-string transformer, and the
// four output tag-makers.
package htmlexpr

import "github.com/emmetio/goexpand/internal/numbering"

// Expr is the HTML abbreviation AST (spec §3). It is a closed set of six
// variants, each a distinct type implementing isExpr so a type switch over
// Expr is a total pattern match (§9 "AST polymorphism").
type Expr interface {
	isExpr()
}

// TextPart is a literal string carrying its own numbering directives
// (spec §3 "Properties carry their value as a TextPart so numbering is
// evaluated per clone").
type TextPart struct {
	Segments []numbering.Segment
}

func NewTextPart(s string) TextPart {
	return TextPart{Segments: numbering.Split(s)}
}

func (tp TextPart) HasDirective() bool {
	return numbering.HasDirective(tp.Segments)
}

// Resolve instantiates tp for clone i of n, collapsing it to a single
// literal segment. Resolving an already-resolved TextPart is a no-op.
func (tp TextPart) Resolve(i, n int) TextPart {
	return TextPart{Segments: []numbering.Segment{{Literal: numbering.Instantiate(tp.Segments, i, n)}}}
}

func (tp TextPart) String() string {
	return tp.Resolve(0, 1).Segments[0].Literal
}

// LoremSpec marks a lorem-ipsum generation request; the actual words are
// produced lazily during transform, seeded from Options (spec §4.6).
type LoremSpec struct {
	Count int
}

// TextContent is either literal text or a lorem request, never both.
type TextContent struct {
	Part  TextPart
	Lorem *LoremSpec
}

func (tc *TextContent) resolve(i, n int) *TextContent {
	if tc == nil {
		return nil
	}
	if tc.Lorem != nil {
		return &TextContent{Lorem: tc.Lorem}
	}
	r := tc.Part.Resolve(i, n)
	return &TextContent{Part: r}
}

// Prop is an attribute key/value pair. Value carries numbering the same
// way any other literal does.
type Prop struct {
	Key   string
	Value TextPart
}

// FilterExpr is the top-level node: an expression plus its output filter
// chain (spec §4.8).
type FilterExpr struct {
	Filters []string
	Body    Expr
}

func (*FilterExpr) isExpr() {}

// ListExpr is a sibling sequence whose output joins with newlines. It is
// how `(X)*N` and bare `X*N` desugar (spec §4.4 "Clones... wrap in a
// List").
type ListExpr struct {
	Items []Expr
}

func (*ListExpr) isExpr() {}

// TagExpr is an element node. Snippet marks a name that resolved against
// the snippet table (spec §3 "Snippet... a raw string... where child markup
// is inserted") rather than the generic tag-maker path: its Text/children
// are substituted into the snippet's own `${child}` sentinel instead of
// being wrapped in `<name>...</name>`.
type TagExpr struct {
	Name    string
	HasBody bool
	Snippet bool
	ID      *TextPart
	Classes []TextPart
	Props   []Prop
	Text    *TextContent
}

func (*TagExpr) isExpr() {}

// TextExpr is free text from `{...}` or a lorem marker.
type TextExpr struct {
	Content TextContent
}

func (*TextExpr) isExpr() {}

// ParentChildExpr is `A>B`.
type ParentChildExpr struct {
	Parent Expr
	Child  Expr
}

func (*ParentChildExpr) isExpr() {}

// SiblingExpr is `A+B`. A chain `A+B+C` right-associates:
// Sibling(A, Sibling(B, C)).
type SiblingExpr struct {
	Left  Expr
	Right Expr
}

func (*SiblingExpr) isExpr() {}

// cloneInstantiate deep-copies e, collapsing every TextPart/TextContent it
// carries for clone i of n total clones. It is used both to materialise
// `*N` multiplication (one call per clone index) and, with (0, 1), as the
// single finishing pass that instantiates numbering directives that were
// never inside any multiplier.
func cloneInstantiate(e Expr, i, n int) Expr {
	switch t := e.(type) {
	case *FilterExpr:
		return &FilterExpr{Filters: append([]string(nil), t.Filters...), Body: cloneInstantiate(t.Body, i, n)}
	case *ListExpr:
		items := make([]Expr, len(t.Items))
		for idx, it := range t.Items {
			items[idx] = cloneInstantiate(it, i, n)
		}
		return &ListExpr{Items: items}
	case *TagExpr:
		nt := &TagExpr{Name: t.Name, HasBody: t.HasBody, Snippet: t.Snippet}
		if t.ID != nil {
			r := t.ID.Resolve(i, n)
			nt.ID = &r
		}
		if t.Classes != nil {
			nt.Classes = make([]TextPart, len(t.Classes))
			for idx, c := range t.Classes {
				nt.Classes[idx] = c.Resolve(i, n)
			}
		}
		if t.Props != nil {
			nt.Props = make([]Prop, len(t.Props))
			for idx, p := range t.Props {
				nt.Props[idx] = Prop{Key: p.Key, Value: p.Value.Resolve(i, n)}
			}
		}
		nt.Text = t.Text.resolve(i, n)
		return nt
	case *TextExpr:
		if t.Content.Lorem != nil {
			return &TextExpr{Content: TextContent{Lorem: t.Content.Lorem}}
		}
		return &TextExpr{Content: TextContent{Part: t.Content.Part.Resolve(i, n)}}
	case *ParentChildExpr:
		return &ParentChildExpr{Parent: cloneInstantiate(t.Parent, i, n), Child: cloneInstantiate(t.Child, i, n)}
	case *SiblingExpr:
		return &SiblingExpr{Left: cloneInstantiate(t.Left, i, n), Right: cloneInstantiate(t.Right, i, n)}
	default:
		return e
	}
}

// Finalize instantiates every numbering directive left over after parsing
// that was never inside a `*N` multiplier, using the implicit (i=0, n=1)
// "single clone" identity.
func Finalize(e Expr) Expr {
	return cloneInstantiate(e, 0, 1)
}
