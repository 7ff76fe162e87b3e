package tables

import "golang.org/x/net/html/atom"

// IsKnownTag reports whether name is one of the canonical HTML5 tag names
// golang.org/x/net/html/atom knows about. preferences.json only carries
// block/selfClosing/defaultAttr overrides for the tags that need one; for
// everything else this distinguishes "a real, unremarkable HTML tag" from
// "an abbreviation typo or custom element", which TagSettings alone can't
// (a missing entry is legitimately the zero value for both).
func IsKnownTag(name string) bool {
	return atom.Lookup([]byte(name)) != 0
}
