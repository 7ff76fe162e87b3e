package htmlexpr

import (
	"math/rand"
	"strings"

	"github.com/emmetio/goexpand/internal/tables"
)

// RenderOptions mirrors the relevant subset of the driver's Options (spec
// §6) that the HTML transformer needs.
type RenderOptions struct {
	IndentWidth       int
	SelfClosingStyle  string
	JSX               bool
	JSXBracesForClass bool
	Lorem             *rand.Rand
	LeafPlaceholder   string
	loremWords        []string
}

// Render walks fe's body to a single output string: it resolves the
// formatter from fe.Filters (defaulting to the html tag-maker), renders
// the tree, then applies any post-filters (spec §4.5, §4.8).
func Render(fe *FilterExpr, tbl *tables.Tables, opts RenderOptions) string {
	opts.loremWords = tbl.LoremWords
	tm, rest := lookupTagMaker(fe.Filters)
	out := renderExpr(fe.Body, tbl, tm, 0, opts)
	return applyPostFilters(out, rest)
}

func renderExpr(e Expr, tbl *tables.Tables, tm tagMaker, indent int, opts RenderOptions) string {
	switch t := e.(type) {
	case *ListExpr:
		parts := make([]string, len(t.Items))
		for i, it := range t.Items {
			parts[i] = renderExpr(it, tbl, tm, indent, opts)
		}
		return strings.Join(parts, "\n")
	case *TextExpr:
		return renderText(&t.Content, opts)
	case *SiblingExpr:
		left := renderExpr(t.Left, tbl, tm, indent, opts)
		right := renderExpr(t.Right, tbl, tm, indent, opts)
		return left + "\n" + right
	case *ParentChildExpr:
		return renderParentChild(t, tbl, tm, indent, opts)
	case *TagExpr:
		return renderTag(t, nil, tbl, tm, indent, opts)
	default:
		return ""
	}
}

// renderParentChild distributes a child over every item of a cloned
// (`*N`) parent (spec §4.4: the multiplier binds to the parent alone, but
// each clone still needs its own copy of the child subtree).
func renderParentChild(pc *ParentChildExpr, tbl *tables.Tables, tm tagMaker, indent int, opts RenderOptions) string {
	if list, ok := pc.Parent.(*ListExpr); ok {
		parts := make([]string, len(list.Items))
		for i, item := range list.Items {
			parts[i] = renderParentChild(&ParentChildExpr{Parent: item, Child: pc.Child}, tbl, tm, indent, opts)
		}
		return strings.Join(parts, "\n")
	}
	tag, ok := pc.Parent.(*TagExpr)
	if !ok {
		// A non-tag parent: a bare text node, or a grouped compound
		// expression like `(div>p)>span`/`(a+b)>c` (spec §4.2
		// `parent_child := pexpr '>' subexpr`, not limited to a single
		// tag). The child simply renders below the whole group's output.
		return renderExpr(pc.Parent, tbl, tm, indent, opts) + "\n" + renderExpr(pc.Child, tbl, tm, indent, opts)
	}
	return renderTag(tag, pc.Child, tbl, tm, indent, opts)
}

func renderText(tc *TextContent, opts RenderOptions) string {
	if tc.Lorem != nil {
		if opts.Lorem == nil {
			opts.Lorem = rand.New(rand.NewSource(1))
		}
		return GenerateLorem(opts.Lorem, opts.loremWords, tc.Lorem.Count)
	}
	return tc.Part.String()
}

func renderTag(tag *TagExpr, child Expr, tbl *tables.Tables, tm tagMaker, indent int, opts RenderOptions) string {
	if tag.Snippet {
		return renderSnippetTag(tag, child, tbl, tm, indent, opts)
	}

	settings := tbl.TagSettings(tag.Name)
	noContent := child == nil && tag.Text == nil
	rec := tagRecord{
		Name:        tag.Name,
		SelfClosing: !tag.HasBody || (settings.SelfClosing && noContent),
	}
	if tag.ID != nil {
		rec.ID = tag.ID.String()
	}
	for _, c := range tag.Classes {
		rec.Classes = append(rec.Classes, c.String())
	}
	for _, p := range tag.Props {
		rec.Props = append(rec.Props, KV{Key: p.Key, Value: p.Value.String()})
	}

	if rec.SelfClosing {
		return tm(rec, "", true, indent, opts)
	}

	inner := ""
	leaf := true
	switch {
	case child != nil:
		inner = renderExpr(child, tbl, tm, indent+1, opts)
		leaf = isLeaf(child)
	case tag.Text != nil:
		inner = renderText(tag.Text, opts)
	case opts.LeafPlaceholder != "":
		inner = opts.LeafPlaceholder
	}
	return tm(rec, inner, leaf, indent, opts)
}

// isLeaf reports whether e renders as inline text rather than indented
// block content, so the tag-makers know whether to keep it on one line.
func isLeaf(e Expr) bool {
	switch e.(type) {
	case *TextExpr:
		return true
	default:
		return false
	}
}

// renderSnippetTag substitutes the snippet's literal pieces and its single
// `${child}` sentinel (spec §3 "Snippet... where child markup is
// inserted"). child, if any, renders at the same indent as the snippet's
// own text since a snippet's template already carries its own layout.
func renderSnippetTag(tag *TagExpr, child Expr, tbl *tables.Tables, tm tagMaker, indent int, opts RenderOptions) string {
	snip := tbl.HTMLSnippets[tag.Name]
	pieces := snip.Pieces(compileHTMLSnippet)

	var inner string
	switch {
	case child != nil:
		// child renders at indent+1 and so already carries its own
		// absolute prefix on every line; only the snippet's own literal
		// text needs prefix inserted after its internal newlines.
		inner = renderExpr(child, tbl, tm, indent+1, opts)
	case tag.Text != nil:
		inner = renderText(tag.Text, opts)
	}

	prefix := pad(indent, opts.IndentWidth)
	var b strings.Builder
	for _, p := range pieces {
		switch p.Kind {
		case tables.ChildPiece:
			b.WriteString(inner)
		default:
			b.WriteString(strings.ReplaceAll(p.Literal, "\n", "\n"+prefix))
		}
	}
	return prefix + b.String()
}

// compileHTMLSnippet splits a raw HTML snippet template on the literal
// sentinel `${child}` into LiteralPiece/ChildPiece runs (spec §3).
func compileHTMLSnippet(raw string) []tables.Piece {
	const sentinel = "${child}"
	var pieces []tables.Piece
	for {
		idx := strings.Index(raw, sentinel)
		if idx < 0 {
			if raw != "" {
				pieces = append(pieces, tables.Piece{Kind: tables.LiteralPiece, Literal: raw})
			}
			break
		}
		if idx > 0 {
			pieces = append(pieces, tables.Piece{Kind: tables.LiteralPiece, Literal: raw[:idx]})
		}
		pieces = append(pieces, tables.Piece{Kind: tables.ChildPiece})
		raw = raw[idx+len(sentinel):]
	}
	return pieces
}
