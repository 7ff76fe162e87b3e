package cssexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emmetio/goexpand/internal/tables"
)

// ArgKind discriminates a parsed CSS argument (spec §4.7.2).
type ArgKind int

const (
	NumberArg ArgKind = iota
	ColorArg
	AnythingArg
)

// Arg is one parsed argument. Number/Unit are kept apart (rather than
// pre-joined) because whether the unit is emitted at all depends on the
// property name, which is resolved by the caller after the snippet
// lookup (spec §4.7.2 "unit handling").
type Arg struct {
	Kind ArgKind
	Num  string
	Unit string
	Text string // ColorArg: "#rrggbb" (or "rgb(r,g,b)"), already normalised; AnythingArg: resolved text
}

// Render returns this argument's substitution text for property unitless.
func (a Arg) Render(unitless bool, colorCase string, colorShorten bool) string {
	switch a.Kind {
	case NumberArg:
		if unitless {
			return a.Num
		}
		return a.Num + a.Unit
	case ColorArg:
		return formatColor(a.Text, colorCase, colorShorten)
	default:
		return a.Text
	}
}

// ParseArgs parses a token's argsTail into a sequence of arguments (spec
// §4.7.2 "Parse argsTail as a sequence of arguments").
func ParseArgs(argsTail string, tbl *tables.Tables) []Arg {
	var args []Arg
	s := argsTail
	for {
		s = strings.TrimLeft(s, " ")
		if s == "" {
			return args
		}
		arg, rest, ok := parseOneArg(s, tbl)
		if !ok {
			// Unrecognised leading character: skip it rather than loop
			// forever: no argument kind in spec §4.7.2 matches punctuation
			// on its own (e.g. a stray comma).
			s = s[1:]
			continue
		}
		args = append(args, arg)
		s = rest
	}
}

func parseOneArg(s string, tbl *tables.Tables) (Arg, string, bool) {
	if arg, rest, ok := parseNumber(s, tbl); ok {
		return arg, rest, true
	}
	if arg, rest, ok := parseColor(s, tbl); ok {
		return arg, rest, true
	}
	return parseAnything(s, tbl)
}

func parseNumber(s string, tbl *tables.Tables) (Arg, string, bool) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	sawDigit := false
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		if s[i] != '.' {
			sawDigit = true
		}
		i++
	}
	if !sawDigit {
		return Arg{}, s, false
	}
	numStr := s[:i]

	unitStart := i
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	rawUnit := s[unitStart:i]
	if rawUnit == "" && i < len(s) && s[i] == '-' {
		rawUnit = "-"
		i++
	}

	var unit string
	switch {
	case rawUnit == "":
		if strings.Contains(numStr, ".") {
			unit = tbl.CSSFloatUnit
		} else {
			unit = tbl.CSSIntUnit
		}
	default:
		if alias, ok := tbl.CSSUnitAliases[rawUnit]; ok {
			unit = alias
		} else {
			unit = rawUnit
		}
	}
	return Arg{Kind: NumberArg, Num: numStr, Unit: unit}, s[i:], true
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func parseColor(s string, tbl *tables.Tables) (Arg, string, bool) {
	if len(s) == 0 || s[0] != '#' {
		return Arg{}, s, false
	}
	i := 1
	for i < len(s) && i < 7 && isHex(s[i]) {
		i++
	}
	if i == 1 {
		return Arg{}, s, false
	}
	hex := normalizeHex(s[1:i])
	rest := s[i:]

	rgb := false
	if strings.HasPrefix(rest, "rgb") {
		rgb = true
		rest = rest[3:]
	} else if len(rest) > 0 && isAlpha(rest[0]) {
		letter := string(rest[0])
		if _, ok := tbl.CSSKeywordAliases[letter]; ok {
			rest = rest[1:]
		}
	}

	text := "#" + hex
	if rgb {
		r, _ := strconv.ParseInt(hex[0:2], 16, 32)
		g, _ := strconv.ParseInt(hex[2:4], 16, 32)
		b, _ := strconv.ParseInt(hex[4:6], 16, 32)
		text = fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
	}
	return Arg{Kind: ColorArg, Text: text}, rest, true
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// normalizeHex expands a 1-6 char hex run to exactly 6 characters (spec §3
// "CSS hex colors after normalisation are exactly 6 hex characters before
// optional 3-char shortening"): 1 -> repeat to 6, 2 -> triple, 3 -> double
// each, 4-6 -> pad/trim to 6.
func normalizeHex(h string) string {
	switch len(h) {
	case 1:
		return strings.Repeat(h, 6)
	case 2:
		return strings.Repeat(h, 3)
	case 3:
		var b strings.Builder
		for _, c := range h {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return b.String()
	default:
		h = h + strings.Repeat("0", 6)
		return h[:6]
	}
}

func parseAnything(s string, tbl *tables.Tables) (Arg, string, bool) {
	i := 0
	for i < len(s) && s[i] != ' ' && s[i] != '+' {
		i++
	}
	if i == 0 {
		return Arg{}, s, false
	}
	token := s[:i]
	if alias, ok := tbl.CSSKeywordAliases[token]; ok {
		token = alias
	}
	return Arg{Kind: AnythingArg, Text: token}, s[i:], true
}

// formatColor applies shortening and case preferences to an already
// 6-char-normalised hex color.
func formatColor(color, colorCase string, shorten bool) string {
	if !strings.HasPrefix(color, "#") || len(color) != 7 {
		return applyCase(color, colorCase)
	}
	hex := color[1:]
	if shorten && canShorten(hex) {
		hex = string([]byte{hex[0], hex[2], hex[4]})
	}
	return applyCase("#"+hex, colorCase)
}

func canShorten(hex string) bool {
	return hex[0] == hex[1] && hex[2] == hex[3] && hex[4] == hex[5]
}

func applyCase(s, mode string) string {
	switch mode {
	case "upper":
		return strings.ToUpper(s)
	case "lower":
		return strings.ToLower(s)
	default:
		return strings.ToLower(s)
	}
}
