package cssexpr

import (
	"strings"

	"github.com/emmetio/goexpand/internal/tables"
)

// UnknownKeys tokenises input the same way Render does and reports the
// property key of every token that fell back to the literal `key: arg1
// arg2 …;` rendering (spec §4.7.3) for want of a snippet entry — a
// caller passing the abbreviation through still produces output, but a
// diagnostics-aware caller wants to know it happened (WARNING_UNKNOWN_CSS_KEY).
func UnknownKeys(input string, tbl *tables.Tables, sass bool) []string {
	var keys []string
	for _, tok := range Tokenize(input) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		t := ParseToken(tok)
		snippets := tbl.CSSSnippets
		if sass {
			if _, ok := tbl.SassSnippets[t.Key]; ok {
				snippets = tbl.SassSnippets
			}
		}
		if _, ok := snippets[t.Key]; !ok {
			keys = append(keys, t.Key)
		}
	}
	return keys
}
