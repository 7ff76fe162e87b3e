package htmlexpr

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// tagRecord is a TagExpr reduced to the plain data every formatter needs:
// no AST, no numbering, just rendered strings (spec §4.5 "four
// formatters... render from the same resolved record").
type tagRecord struct {
	Name        string
	ID          string
	Classes     []string
	Props       []KV
	SelfClosing bool
}

// KV is a rendered (already-numbering-resolved) attribute pair.
type KV struct {
	Key   string
	Value string
}

// tagMaker renders one element given its already-rendered inner content.
// leaf reports whether inner came from plain text/lorem (so it may be
// placed on the same line) as opposed to block children (which the html
// and haml makers put on their own indented lines).
type tagMaker func(rec tagRecord, inner string, leaf bool, indent int, opts RenderOptions) string

func pad(indent, width int) string {
	return strings.Repeat(" ", indent*width)
}

// jsxPropName rewrites class/for to their JSX counterparts (spec §4.2
// "JSX-style className") when opts.JSX is set.
func jsxPropName(key string, jsx bool) string {
	if !jsx {
		return key
	}
	switch key {
	case "class":
		return "className"
	case "for":
		return "htmlFor"
	default:
		return key
	}
}

func htmlAttrs(rec tagRecord, opts RenderOptions) string {
	var b strings.Builder
	if rec.ID != "" {
		fmt.Fprintf(&b, ` id="%s"`, rec.ID)
	}
	if len(rec.Classes) > 0 {
		classAttr := jsxPropName("class", opts.JSX)
		if opts.JSX && opts.JSXBracesForClass {
			fmt.Fprintf(&b, ` %s={"%s"}`, classAttr, strings.Join(rec.Classes, " "))
		} else {
			fmt.Fprintf(&b, ` %s="%s"`, classAttr, strings.Join(rec.Classes, " "))
		}
	}
	for _, p := range rec.Props {
		key := jsxPropName(p.Key, opts.JSX)
		if p.Value == "" {
			if opts.JSX {
				fmt.Fprintf(&b, ` %s`, key)
			} else {
				fmt.Fprintf(&b, ` %s=""`, key)
			}
			continue
		}
		if opts.JSX && strings.HasPrefix(p.Value, "{") {
			fmt.Fprintf(&b, ` %s=%s`, key, p.Value)
		} else {
			fmt.Fprintf(&b, ` %s="%s"`, key, p.Value)
		}
	}
	return b.String()
}

// htmlTagMaker is the default formatter (spec §4.5).
func htmlTagMaker(rec tagRecord, inner string, leaf bool, indent int, opts RenderOptions) string {
	prefix := pad(indent, opts.IndentWidth)
	attrs := htmlAttrs(rec, opts)
	if rec.SelfClosing {
		return fmt.Sprintf("%s<%s%s%s>", prefix, rec.Name, attrs, opts.SelfClosingStyle)
	}
	open := fmt.Sprintf("%s<%s%s>", prefix, rec.Name, attrs)
	close := fmt.Sprintf("</%s>", rec.Name)
	if inner == "" {
		return open + close
	}
	if leaf {
		return open + inner + close
	}
	// inner was rendered at indent+1 already (renderTag passes indent+1
	// down), so it carries its own absolute prefix on every line.
	return open + "\n" + inner + "\n" + prefix + close
}

// commentedHTMLTagMaker wraps htmlTagMaker: when id or classes were
// present, wraps the rendered element between an opening and closing
// comment keyed on them (the `c` filter, spec §4.5: "`<!-- #id.classes
// -->\nBODY\n<!-- /#id.classes -->`").
func commentedHTMLTagMaker(rec tagRecord, inner string, leaf bool, indent int, opts RenderOptions) string {
	base := htmlTagMaker(rec, inner, leaf, indent, opts)
	if rec.ID == "" && len(rec.Classes) == 0 {
		return base
	}
	var key strings.Builder
	if rec.ID != "" {
		fmt.Fprintf(&key, "#%s", rec.ID)
	}
	for _, c := range rec.Classes {
		fmt.Fprintf(&key, ".%s", c)
	}
	prefix := pad(indent, opts.IndentWidth)
	return fmt.Sprintf("%s<!-- %s -->\n%s\n%s<!-- /%s -->", prefix, key.String(), base, prefix, key.String())
}

// hamlTagMaker renders HAML: `%tag#id.class{:attr => "val"}` with
// indentation-based nesting instead of closing tags (spec §4.5).
func hamlTagMaker(rec tagRecord, inner string, leaf bool, indent int, opts RenderOptions) string {
	prefix := pad(indent, opts.IndentWidth)
	var head strings.Builder
	head.WriteString(prefix)
	if rec.Name != "div" || (rec.ID == "" && len(rec.Classes) == 0) {
		fmt.Fprintf(&head, "%%%s", rec.Name)
	}
	if rec.ID != "" {
		fmt.Fprintf(&head, "#%s", rec.ID)
	}
	for _, c := range rec.Classes {
		fmt.Fprintf(&head, ".%s", c)
	}
	if len(rec.Props) > 0 {
		parts := make([]string, len(rec.Props))
		for i, p := range rec.Props {
			parts[i] = fmt.Sprintf(":%s => %q", p.Key, p.Value)
		}
		fmt.Fprintf(&head, "{%s}", strings.Join(parts, ", "))
	}
	if rec.SelfClosing {
		head.WriteString("/")
	}
	if inner == "" {
		return head.String()
	}
	if leaf {
		fmt.Fprintf(&head, " %s", inner)
		return head.String()
	}
	return head.String() + "\n" + inner
}

// hiccupTagMaker renders Hiccup/ClojureScript vectors: `[:tag {:attr
// "val"} child ...]` (spec §4.5).
func hiccupTagMaker(rec tagRecord, inner string, leaf bool, indent int, opts RenderOptions) string {
	prefix := pad(indent, opts.IndentWidth)
	var sel strings.Builder
	sel.WriteString(rec.Name)
	if rec.ID != "" {
		fmt.Fprintf(&sel, "#%s", rec.ID)
	}
	for _, c := range rec.Classes {
		fmt.Fprintf(&sel, ".%s", c)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s[:%s", prefix, sel.String())
	if len(rec.Props) > 0 {
		parts := make([]string, len(rec.Props))
		for i, p := range rec.Props {
			parts[i] = fmt.Sprintf(":%s %q", strcase.ToLowerCamel(p.Key), p.Value)
		}
		fmt.Fprintf(&b, " {%s}", strings.Join(parts, " "))
	}
	if inner != "" {
		if leaf {
			fmt.Fprintf(&b, " %q", inner)
		} else {
			b.WriteString("\n" + inner)
		}
	}
	b.WriteString("]")
	return b.String()
}

func lookupTagMaker(filters []string) (tagMaker, []string) {
	if len(filters) == 0 {
		return htmlTagMaker, nil
	}
	switch filters[0] {
	case "haml":
		return hamlTagMaker, filters[1:]
	case "hic":
		return hiccupTagMaker, filters[1:]
	case "c":
		return commentedHTMLTagMaker, filters[1:]
	case "html":
		return htmlTagMaker, filters[1:]
	default:
		return htmlTagMaker, filters
	}
}

// applyPostFilters implements the `e` post-filter (spec §4.5, §4.8): XML
// escape the fully rendered output. Any filter besides `e` (and the ones
// already consumed as the base formatter choice) is ignored, matching
// spec §1's non-goal "coverage of every Emmet feature not present in the
// source".
func applyPostFilters(s string, filters []string) string {
	for _, f := range filters {
		if f == "e" {
			s = xmlEscape(s)
		}
	}
	return s
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
