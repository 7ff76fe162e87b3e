// Package cssexpr implements the CSS-like dialect of spec §4.7: `+`
// tokenisation, per-token key/vendor/important parsing, argument parsing,
// snippet-template rendering, and vendor-prefix expansion.
package cssexpr

// Tokenize splits input on `+`, then re-joins a split that was actually a
// continuation of the previous token's argument list rather than a new
// subexpression (spec §4.7.1): the right side begins with a space, `#`, a
// digit, `$`, or `-` followed by a digit.
func Tokenize(input string) []string {
	raw := splitPlus(input)
	if len(raw) == 0 {
		return raw
	}
	out := []string{raw[0]}
	for _, tok := range raw[1:] {
		if isContinuation(tok) {
			out[len(out)-1] = out[len(out)-1] + "+" + tok
		} else {
			out = append(out, tok)
		}
	}
	return out
}

func splitPlus(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '+' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func isContinuation(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	switch {
	case c == ' ' || c == '#' || c == '$':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' && len(tok) > 1 && tok[1] >= '0' && tok[1] <= '9':
		return true
	default:
		return false
	}
}

// VendorSpec is a token's leading vendor-prefix marker (spec §4.7.2).
type VendorSpec int

const (
	VendorNone VendorSpec = iota
	VendorAuto
	VendorExplicit
)

// Token is one `+`-separated subexpression, fully split into its parts but
// not yet argument-parsed (that needs the resolved property name, see
// Render).
type Token struct {
	Important  bool
	Vendor     VendorSpec
	VendorSet  []string // explicit letters (w/m/s/o), VendorExplicit only
	Key        string
	ArgsTail   string
}

// ParseToken implements spec §4.7.2 steps 1-3 (the argsTail is returned
// unparsed; ParseArgs needs the resolved property name to decide unit
// emission, so it runs separately once the snippet table has been
// consulted).
func ParseToken(tok string) Token {
	important := false
	if len(tok) > 0 && tok[len(tok)-1] == '!' {
		important = true
		tok = tok[:len(tok)-1]
	}

	vendor := VendorNone
	var vendorSet []string
	if len(tok) > 0 && tok[0] == '-' {
		if end, letters, ok := matchExplicitVendor(tok); ok {
			vendor = VendorExplicit
			vendorSet = letters
			tok = tok[end:]
		} else {
			vendor = VendorAuto
			tok = tok[1:]
		}
	}

	splitAt := len(tok)
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c == ' ' || c == '#' || c == '$' || (c >= '0' && c <= '9') {
			splitAt = i
			break
		}
		if c == '-' && i+1 < len(tok) && tok[i+1] >= '0' && tok[i+1] <= '9' {
			splitAt = i
			break
		}
	}

	return Token{
		Important: important,
		Vendor:    vendor,
		VendorSet: vendorSet,
		Key:       tok[:splitAt],
		ArgsTail:  tok[splitAt:],
	}
}

// matchExplicitVendor matches `-[wmso]*-` at the head of tok. An empty
// letter set ("--") is accepted as explicit-with-no-prefixes, which is
// vacuous but not a parse error; real abbreviations never write it.
func matchExplicitVendor(tok string) (int, []string, bool) {
	i := 1
	var letters []string
	for i < len(tok) {
		switch tok[i] {
		case 'w':
			letters = append(letters, "webkit")
		case 'm':
			letters = append(letters, "moz")
		case 's':
			letters = append(letters, "ms")
		case 'o':
			letters = append(letters, "o")
		default:
			if tok[i] == '-' {
				return i + 1, letters, true
			}
			return 0, nil, false
		}
		i++
	}
	return 0, nil, false
}
