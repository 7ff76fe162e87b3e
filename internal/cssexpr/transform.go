package cssexpr

import (
	"strconv"
	"strings"

	"github.com/emmetio/goexpand/internal/tables"
)

// RenderOptions mirrors the CSS-relevant subset of the driver's Options
// (spec §6).
type RenderOptions struct {
	Sass         bool
	ColorCase    string // "auto" | "upper" | "lower"; "auto" defers to Tables.CSSColorCase
	ColorShorten bool
}

// Render expands a full CSS/Sass abbreviation (spec §4.7, steps 1-6): it
// tokenises on `+`, renders each subexpression (including vendor-prefix
// duplication), and joins the results with newlines.
func Render(input string, tbl *tables.Tables, opts RenderOptions) string {
	tokens := Tokenize(input)
	lines := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		lines = append(lines, renderToken(tok, tbl, opts))
	}
	return strings.Join(lines, "\n")
}

func renderToken(tok string, tbl *tables.Tables, opts RenderOptions) string {
	t := ParseToken(tok)

	snippets := tbl.CSSSnippets
	if opts.Sass {
		if _, ok := tbl.SassSnippets[t.Key]; ok {
			snippets = tbl.SassSnippets
		}
	}
	snip, hasSnippet := snippets[t.Key]

	propertyName := t.Key
	var raw string
	if hasSnippet {
		raw = snip.Raw
		if idx := strings.IndexByte(raw, ':'); idx >= 0 {
			propertyName = strings.TrimSpace(raw[:idx])
		}
	}

	unitless := tbl.CSSUnitlessProperties[propertyName]
	args := ParseArgs(t.ArgsTail, tbl)

	colorCase := opts.ColorCase
	if colorCase == "" || colorCase == "auto" {
		colorCase = tbl.CSSColorCase
		if colorCase == "" || colorCase == "auto" {
			colorCase = "lower"
		}
	}
	// A bare bool can't express "caller didn't say": shortening is on if
	// either the caller or the loaded preferences ask for it.
	colorShorten := opts.ColorShorten || tbl.CSSColorShorten

	var rendered string
	if hasSnippet {
		rendered = renderSnippet(snip, args, unitless, colorCase, colorShorten)
	} else {
		rendered = renderFallback(t.Key, args, unitless, colorCase, colorShorten)
	}

	rendered = applyImportant(rendered, t.Important, opts.Sass)

	prefixes := vendorPrefixes(t, tbl, propertyName)
	if len(prefixes) == 0 {
		return rendered
	}
	out := make([]string, 0, len(prefixes)+1)
	for _, p := range prefixes {
		out = append(out, "-"+p+"-"+rendered)
	}
	out = append(out, rendered)
	return strings.Join(out, "\n")
}

func renderSnippet(snip *tables.Snippet, args []Arg, unitless bool, colorCase string, colorShorten bool) string {
	pieces := snip.Pieces(compileCSSSnippet)
	var b strings.Builder
	for _, p := range pieces {
		switch p.Kind {
		case tables.PlaceholderPiece:
			if p.Index < len(args) {
				b.WriteString(args[p.Index].Render(unitless, colorCase, colorShorten))
			} else {
				b.WriteString(p.Default)
			}
		default:
			b.WriteString(p.Literal)
		}
	}
	return b.String()
}

// renderFallback implements spec §4.7.3's "Otherwise fall back to `key:
// arg1 arg2 …;`" when key isn't in the snippet table.
func renderFallback(key string, args []Arg, unitless bool, colorCase string, colorShorten bool) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Render(unitless, colorCase, colorShorten)
	}
	return key + ": " + strings.Join(parts, " ") + ";"
}

// applyImportant implements spec §4.7.3 step 4: replace the trailing `;`
// with ` !important;`, or in Sass mode strip the trailing `;` entirely.
func applyImportant(rendered string, important bool, sass bool) string {
	if important {
		if strings.HasSuffix(rendered, ";") {
			rendered = strings.TrimSuffix(rendered, ";") + " !important;"
		} else {
			rendered = rendered + " !important"
		}
	}
	if sass {
		rendered = strings.TrimSuffix(rendered, ";")
	}
	return rendered
}

// vendorPrefixes resolves the set of prefix names to duplicate this
// rendered line under (spec §4.7.3 step 5).
func vendorPrefixes(t Token, tbl *tables.Tables, propertyName string) []string {
	switch t.Vendor {
	case VendorExplicit:
		return t.VendorSet
	case VendorAuto:
		if list, ok := tbl.CSSVendorPrefixesByProp[propertyName]; ok {
			return list
		}
		return []string{"webkit", "moz", "ms", "o"}
	default:
		return nil
	}
}

// compileCSSSnippet parses a raw CSS snippet template into Pieces (spec
// §4.7.3, §9 "Snippet templates"): `${N}` / `${N:default}` placeholders
// (1-based N) and bare `|` auto-incrementing placeholders.
func compileCSSSnippet(raw string) []tables.Piece {
	var pieces []tables.Piece
	counter := 0
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, tables.Piece{Kind: tables.LiteralPiece, Literal: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(raw) {
		switch {
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{':
			j := strings.IndexByte(raw[i+2:], '}')
			if j < 0 {
				lit.WriteByte(raw[i])
				i++
				continue
			}
			inner := raw[i+2 : i+2+j]
			idxStr, def := inner, ""
			if c := strings.IndexByte(inner, ':'); c >= 0 {
				idxStr, def = inner[:c], inner[c+1:]
			}
			n, err := strconv.Atoi(idxStr)
			if err != nil || n < 1 {
				lit.WriteByte(raw[i])
				i++
				continue
			}
			flush()
			pieces = append(pieces, tables.Piece{Kind: tables.PlaceholderPiece, Index: n - 1, Default: def})
			counter = n
			i = i + 2 + j + 1
		case raw[i] == '|':
			flush()
			pieces = append(pieces, tables.Piece{Kind: tables.PlaceholderPiece, Index: counter})
			counter++
			i++
		default:
			lit.WriteByte(raw[i])
			i++
		}
	}
	flush()
	return pieces
}
