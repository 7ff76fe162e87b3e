package htmlexpr

import (
	"strconv"
	"strings"

	"github.com/emmetio/goexpand/internal/scanner"
	"github.com/emmetio/goexpand/internal/tables"
)

// Context carries everything a parse needs besides the input text: the
// static tables (for alias/lorem resolution, spec §4.3), the JSX
// attribute-grammar toggle, and a pathological-nesting guard (spec §5
// "may impose a depth cap").
type Context struct {
	Tables        *tables.Tables
	JSX           bool
	MaxExpansions int
	expansions    int
}

func (ctx *Context) charge(n int) error {
	ctx.expansions += n
	if ctx.MaxExpansions > 0 && ctx.expansions > ctx.MaxExpansions {
		return scanner.Fail(scanner.New(""), "expansion limit exceeded")
	}
	return nil
}

var tagNamePattern = `[A-Za-z!][A-Za-z0-9:!$@-]*`
var identPattern = `[A-Za-z0-9_$@-]+`
var digitsPattern = `[0-9]+`
var attrNamePattern = `[A-Za-z_:][A-Za-z0-9_:-]*`

// Parse parses a full abbreviation (expression plus optional filter
// chain, spec §4.2 top level) and returns its AST with every numbering
// directive that was never inside a `*N` multiplier already instantiated.
func Parse(input string, ctx *Context) (*FilterExpr, error) {
	exprText, filters := splitFilters(input)
	c := scanner.New(exprText)
	body, rest, err := parseSiblings(c, ctx)
	if err != nil {
		return nil, err
	}
	if !rest.Done() {
		return nil, scanner.Fail(rest, "end of input")
	}
	return &FilterExpr{Filters: filters, Body: Finalize(body)}, nil
}

// splitFilters implements spec §4.2's top-level split: the rightmost
// unescaped `|` that is not inside `{...}` or `"..."`. Per spec §9 Open
// Questions, the "not inside quotes/braces" check is a weak heuristic
// (reject a candidate split point if its tail still contains a `"` or
// `}`) and this re-implementation keeps that limitation rather than
// trying to fix it silently.
func splitFilters(input string) (string, []string) {
	var candidates []int
	depth := 0
	inQuote := false
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '"':
			inQuote = !inQuote
		case '{':
			if !inQuote {
				depth++
			}
		case '}':
			if !inQuote && depth > 0 {
				depth--
			}
		case '|':
			if !inQuote && depth == 0 {
				candidates = append(candidates, i)
			}
		}
	}
	for i := len(candidates) - 1; i >= 0; i-- {
		pos := candidates[i]
		tail := input[pos+1:]
		if strings.ContainsAny(tail, "\"}") {
			continue
		}
		head := input[:pos]
		parts := strings.Split(tail, "|")
		filters := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				filters = append(filters, p)
			}
		}
		return head, filters
	}
	return input, nil
}

// parseSiblings implements `siblings := sibling ('+' subexpr)?`, right
// associating a chain `A+B+C` into Sibling(A, Sibling(B, C)).
func parseSiblings(c scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	left, rest, err := parseSibling(c, ctx)
	if err != nil {
		return nil, c, err
	}
	if _, rest2, err2 := scanner.Literal(rest, "+"); err2 == nil {
		right, rest3, err3 := parseSiblings(rest2, ctx)
		if err3 != nil {
			return nil, c, err3
		}
		return &SiblingExpr{Left: left, Right: right}, rest3, nil
	}
	return left, rest, nil
}

// parseSibling implements `sibling := pexpr | multiplier | tag | text`
// plus the parent_child production, folded together: parse one primary
// atom, then greedily apply a trailing `*N` multiplier or a trailing
// `>child`, per spec §4.2's tie-break ("*N binds tighter than + and >").
func parseSibling(c scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	atom, rest, err := parsePrimary(c, ctx)
	if err != nil {
		return nil, c, err
	}

	if n, rest2, ok := tryMultiplier(rest); ok {
		if err := ctx.charge(n); err != nil {
			return nil, c, err
		}
		items := make([]Expr, n)
		for i := 0; i < n; i++ {
			items[i] = cloneInstantiate(atom, i, n)
		}
		atom = &ListExpr{Items: items}
		rest = rest2
	}

	if _, rest2, err2 := scanner.Literal(rest, ">"); err2 == nil {
		if list, ok := atom.(*ListExpr); ok {
			// atom is a `*N` clone set: each clone needs its own copy of
			// the child, numbered against the same clone index, or every
			// clone would render identical child content (spec §4.4).
			child, rest3, err3 := parseSiblings(rest2, ctx)
			if err3 != nil {
				return nil, c, err3
			}
			n := len(list.Items)
			items := make([]Expr, n)
			for idx, item := range list.Items {
				items[idx] = &ParentChildExpr{Parent: item, Child: cloneInstantiate(child, idx, n)}
			}
			return &ListExpr{Items: items}, rest3, nil
		}
		// Any other parent — a single tag, or a grouped compound expression
		// like `(div>p)` or `(a+b)` — just attaches the child as-is (spec
		// §4.2 `parent_child := pexpr '>' subexpr`, not limited to a bare
		// tag).
		child, rest3, err3 := parseSiblings(rest2, ctx)
		if err3 != nil {
			return nil, c, err3
		}
		return &ParentChildExpr{Parent: atom, Child: child}, rest3, nil
	}

	return atom, rest, nil
}

// tryMultiplier matches a trailing `*N` (N decimal digits). It never
// errors; absence of a multiplier is simply `ok == false`.
func tryMultiplier(c scanner.Cursor) (int, scanner.Cursor, bool) {
	afterStar, err := scanner.Literal(c, "*")
	if err != nil {
		return 0, c, false
	}
	groups, rest, err := scanner.Match(afterStar, digitsPattern, "*n where n is a number")
	if err != nil {
		return 0, c, false
	}
	n, convErr := strconv.Atoi(groups[0])
	if convErr != nil || n < 1 {
		return 0, c, false
	}
	return n, rest, true
}

// parsePrimary implements `pexpr | tag | text`.
func parsePrimary(c scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	if group, rest, err := parseGroup(c, ctx); err == nil {
		return group, rest, nil
	}
	if text, rest, err := parseText(c); err == nil {
		return &TextExpr{Content: TextContent{Part: text}}, rest, nil
	}
	return parseTag(c, ctx)
}

// parseGroup implements `pexpr := '(' subexpr ')'`.
func parseGroup(c scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	rest, err := scanner.Literal(c, "(")
	if err != nil {
		return nil, c, err
	}
	body, rest2, err := parseSiblings(rest, ctx)
	if err != nil {
		return nil, c, err
	}
	rest3, err := scanner.Literal(rest2, ")")
	if err != nil {
		return nil, c, scanner.Fail(rest2, "')'")
	}
	return body, rest3, nil
}

// parseText implements the balanced-brace `{...}` text grammar (spec
// §4.2): `\}` escapes, nested `{...}` increases depth, and the inner text
// is unescaped (`\x` -> `x`) before numbering splitting.
func parseText(c scanner.Cursor) (TextPart, scanner.Cursor, error) {
	rest, err := scanner.Literal(c, "{")
	if err != nil {
		return TextPart{}, c, err
	}
	s := rest.Rest()
	depth := 1
	var raw []byte
	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == '\\' && i+1 < len(s):
			raw = append(raw, s[i+1])
			i += 2
		case ch == '{':
			depth++
			raw = append(raw, ch)
			i++
		case ch == '}':
			depth--
			if depth == 0 {
				i++
				return NewTextPart(string(raw)), rest.Advance(i), nil
			}
			raw = append(raw, ch)
			i++
		default:
			raw = append(raw, ch)
			i++
		}
	}
	return TextPart{}, c, scanner.Fail(c, "inner text")
}

// parseTag implements the `tag` production: an optional name, optional
// `#id`, any number of `.class`, an optional `[attrs]`, and an optional
// `{text}`; resolves aliases/lorem once the tag is fully parsed (spec
// §4.3).
func parseTag(c scanner.Cursor, ctx *Context) (Expr, scanner.Cursor, error) {
	name := ""
	rest := c
	hasBody := true
	if groups, r, err := scanner.Match(c, tagNamePattern, "tag name"); err == nil {
		name = groups[0]
		rest = r
		if r2, err := scanner.Literal(rest, "/"); err == nil {
			hasBody = false
			rest = r2
		}
	}

	var id *TextPart
	if r, err := scanner.Literal(rest, "#"); err == nil {
		if groups, r2, err2 := scanner.Match(r, identPattern, "id"); err2 == nil {
			tp := NewTextPart(groups[0])
			id = &tp
			rest = r2
		} else {
			return nil, c, err2
		}
	}

	var classes []TextPart
	for {
		r, err := scanner.Literal(rest, ".")
		if err != nil {
			break
		}
		groups, r2, err2 := scanner.Match(r, identPattern, "class name")
		if err2 != nil {
			return nil, c, err2
		}
		classes = append(classes, NewTextPart(groups[0]))
		rest = r2
	}

	if name == "" && (id != nil || classes != nil) {
		name = "div"
	}

	var props []Prop
	if r, err := scanner.Literal(rest, "["); err == nil {
		p, r2, err2 := parseAttrs(r, ctx)
		if err2 != nil {
			return nil, c, err2
		}
		props = p
		rest = r2
	}

	var text *TextContent
	if tp, r, err := parseText(rest); err == nil {
		text = &TextContent{Part: tp}
		rest = r
	}

	if name == "" {
		return nil, c, scanner.Fail(c, "tag, text, or group")
	}

	tag := &TagExpr{Name: name, HasBody: hasBody, ID: id, Classes: classes, Props: props, Text: text}
	resolved, rest2, err := resolveTag(tag, rest, ctx)
	if err != nil {
		return nil, c, err
	}
	return resolved, rest2, nil
}

// parseAttrs implements the `[...]` attribute grammar: space-separated
// `name`, `name=value`, `name="value"`, and (JSX mode) `name={expr}`.
func parseAttrs(c scanner.Cursor, ctx *Context) ([]Prop, scanner.Cursor, error) {
	rest := c
	var props []Prop
	for {
		for {
			if r, err := scanner.Literal(rest, " "); err == nil {
				rest = r
				continue
			}
			break
		}
		if r, err := scanner.Literal(rest, "]"); err == nil {
			return props, r, nil
		}
		groups, r, err := scanner.Match(rest, attrNamePattern, "attribute name")
		if err != nil {
			return nil, c, err
		}
		key := groups[0]
		rest = r

		if r2, err := scanner.Literal(rest, "="); err == nil {
			value, r3, err2 := parseAttrValue(r2, ctx)
			if err2 != nil {
				return nil, c, err2
			}
			props = append(props, Prop{Key: key, Value: value})
			rest = r3
		} else {
			props = append(props, Prop{Key: key, Value: NewTextPart("")})
		}
	}
}

func parseAttrValue(c scanner.Cursor, ctx *Context) (TextPart, scanner.Cursor, error) {
	if r, err := scanner.Literal(c, `"`); err == nil {
		s := r.Rest()
		var raw []byte
		i := 0
		for i < len(s) && s[i] != '"' {
			if s[i] == '\\' && i+1 < len(s) {
				raw = append(raw, s[i+1])
				i += 2
				continue
			}
			raw = append(raw, s[i])
			i++
		}
		if i >= len(s) {
			return TextPart{}, c, scanner.Fail(c, `closing '"'`)
		}
		return NewTextPart(string(raw)), r.Advance(i + 1), nil
	}
	if ctx.JSX {
		if r, err := scanner.Literal(c, "{"); err == nil {
			s := r.Rest()
			depth := 1
			i := 0
			for i < len(s) && depth > 0 {
				switch s[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				i++
			}
			if depth != 0 {
				return TextPart{}, c, scanner.Fail(c, "closing '}'")
			}
			return NewTextPart("{" + s[:i]), r.Advance(i), nil
		}
	}
	s := c.Rest()
	i := 0
	for i < len(s) && !isUnquotedValueTerminator(s[i]) {
		i++
	}
	if i == 0 {
		return TextPart{}, c, scanner.Fail(c, "attribute value")
	}
	return NewTextPart(s[:i]), c.Advance(i), nil
}

func isUnquotedValueTerminator(b byte) bool {
	switch b {
	case ' ', ',', '+', '>', '{', '}', ')', ']':
		return true
	}
	return false
}
