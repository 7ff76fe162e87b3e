package htmlexpr

import (
	"regexp"

	"github.com/emmetio/goexpand/internal/scanner"
)

// loremNamePattern matches `lorem`, `ipsum`, or either followed by a decimal
// word count (spec §4.6: "lorem" and "lorem123" both request that many
// words; "ipsum" is a plain alias for "lorem").
var loremNamePattern = regexp.MustCompile(`^(?:lorem|ipsum)([0-9]*)$`)

// loremSpecFor reports whether name is a lorem/ipsum generator name and, if
// so, the requested word count (spec §4.6 default is 30 words).
func loremSpecFor(name string) (*LoremSpec, bool) {
	m := loremNamePattern.FindStringSubmatch(name)
	if m == nil {
		return nil, false
	}
	n := 30
	if m[1] != "" {
		n = atoiSimple(m[1])
	}
	return &LoremSpec{Count: n}, true
}

func atoiSimple(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// isBare reports whether a parsed tag carries no decoration at all, the
// precondition for both the lorem-wrapping-div rule and the trailing-`+`
// alias tie-break (spec §4.2, §4.3).
func isBare(tag *TagExpr) bool {
	return tag.ID == nil && tag.Classes == nil && tag.Props == nil && tag.Text == nil
}

// resolveTag is the single alias/lorem/tag-settings resolution point every
// parsed tag passes through (spec §4.3). It:
//  1. special-cases a bare lorem/ipsum name into a TextExpr (wrapped back
//     into a decorated div if the tag carried decorations, per spec §4.3
//     "strip the wrapping div as well" when it didn't);
//  2. tries the trailing-`+` alias tie-break ("A+" at the end of "A+B"
//     where the alias table has a "A+" entry re-expands that alias instead
//     of starting a sibling) when the tag is otherwise bare;
//  3. tries a plain alias lookup on the tag name;
//  4. otherwise returns the tag as-is, applying TagSettings defaults.
//
// Alias bodies are parsed once and reused as a template: resolveTag parses
// the alias's abbreviation text fresh for every occurrence rather than
// caching a tree, because id/text overrides and class/prop merges (spec
// §4.3's merge semantics) apply per-occurrence, not once per alias.
func resolveTag(tag *TagExpr, rest scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	if spec, ok := loremSpecFor(tag.Name); ok {
		if isBare(tag) {
			return &TextExpr{Content: TextContent{Lorem: spec}}, rest, nil
		}
		wrapped := &TagExpr{Name: "div", HasBody: true, ID: tag.ID, Classes: tag.Classes, Props: tag.Props,
			Text: &TextContent{Lorem: spec}}
		return wrapped, rest, nil
	}

	if isBare(tag) {
		if r2, err := scanner.Literal(rest, "+"); err == nil {
			if raw, ok := ctx.Tables.HTMLAliases[tag.Name+"+"]; ok {
				expanded, err := expandAlias(raw, ctx)
				if err != nil {
					return nil, rest, err
				}
				return expanded, r2, nil
			}
		}
	}

	if raw, ok := ctx.Tables.HTMLAliases[tag.Name]; ok {
		expanded, err := expandAlias(raw, ctx)
		if err != nil {
			return nil, rest, err
		}
		return mergeAliasInto(expanded, tag), rest, nil
	}

	if _, ok := ctx.Tables.HTMLSnippets[tag.Name]; ok {
		tag.Snippet = true
		return tag, rest, nil
	}

	return applyTagSettings(tag, ctx), rest, nil
}

// expandAlias parses an alias table entry (itself an abbreviation, spec
// §4.3) to completion. Aliases never carry numbering or filters of their
// own, so the result is finalized immediately.
func expandAlias(raw string, ctx *Context) (Expr, error) {
	c := scanner.New(raw)
	body, rest, err := parseSiblings(c, ctx)
	if err != nil {
		return nil, err
	}
	if !rest.Done() {
		return nil, scanner.Fail(rest, "end of alias expansion")
	}
	return Finalize(body), nil
}

// mergeAliasInto applies spec §4.3's merge rule to the expanded alias tree:
// the *outermost* element of the expansion receives the occurrence's id/text
// (override) and classes/props (union, occurrence's entries last).
func mergeAliasInto(expanded Expr, occurrence *TagExpr) Expr {
	outer := outermostTag(expanded)
	if outer == nil {
		return expanded
	}
	if occurrence.ID != nil {
		outer.ID = occurrence.ID
	}
	if occurrence.Text != nil {
		outer.Text = occurrence.Text
	}
	outer.Classes = append(outer.Classes, occurrence.Classes...)
	outer.Props = append(outer.Props, occurrence.Props...)
	return expanded
}

// outermostTag walks down the leftmost/parent spine of e to find the single
// TagExpr a merge should apply to, matching how an alias's expansion is
// always rooted at one element even when it is itself `a>b` or `a+b`.
func outermostTag(e Expr) *TagExpr {
	switch t := e.(type) {
	case *TagExpr:
		return t
	case *ParentChildExpr:
		return outermostTag(t.Parent)
	case *SiblingExpr:
		return outermostTag(t.Left)
	case *ListExpr:
		if len(t.Items) == 0 {
			return nil
		}
		return outermostTag(t.Items[0])
	default:
		return nil
	}
}

// applyTagSettings fills in HasBody from the tag-settings table's
// self-closing/void flag when the abbreviation didn't explicitly override
// it with a trailing `/`, and prepends any default attributes the tag
// doesn't already specify (spec §4.5 "default attributes").
func applyTagSettings(tag *TagExpr, ctx *Context) *TagExpr {
	ts := ctx.Tables.TagSettings(tag.Name)
	if ts.SelfClosing {
		tag.HasBody = false
	}
	if len(ts.DefaultAttr) > 0 {
		have := map[string]bool{}
		for _, p := range tag.Props {
			have[p.Key] = true
		}
		var defaults []Prop
		for _, kv := range ts.DefaultAttr {
			if !have[kv.Key] {
				defaults = append(defaults, Prop{Key: kv.Key, Value: NewTextPart(kv.Value)})
			}
		}
		tag.Props = append(defaults, tag.Props...)
	}
	return tag
}
