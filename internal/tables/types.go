// Package tables holds the process-wide, read-mostly data every dialect
// expands against: snippets, aliases, per-tag settings, and the CSS
// preference tables. The only mutation after load is memoising a compiled
// snippet template in place (§3 Lifecycles: monotonic cache, no
// invalidation).
package tables

import "sync"

// PieceKind discriminates the pieces a compiled snippet template is made
// of. A raw snippet string is compiled once, on first use, into a slice of
// Pieces interpreted by the dialect that owns it (htmlexpr interprets
// ChildPiece, cssexpr interprets PlaceholderPiece).
type PieceKind int

const (
	LiteralPiece PieceKind = iota
	ChildPiece
	PlaceholderPiece
)

// Piece is one element of a compiled template: either literal text, the
// ${child} sentinel (HTML snippets), or a ${N[:default]} placeholder (CSS
// snippets).
type Piece struct {
	Kind    PieceKind
	Literal string
	Index   int // 0-based argument index, PlaceholderPiece only
	Default string
}

// Snippet is either a raw template string or, after first use, its
// compiled form. Compile is supplied by the caller (htmlexpr or cssexpr)
// because the placeholder grammar differs by dialect; Snippet only owns
// the memoisation.
type Snippet struct {
	Raw string

	mu       sync.Mutex
	pieces   []Piece
	compiled bool
}

// Pieces returns the compiled template, compiling it via compile on first
// call and caching the result for every subsequent call with the same
// Snippet. Safe for concurrent use.
func (s *Snippet) Pieces(compile func(raw string) []Piece) []Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.compiled {
		s.pieces = compile(s.Raw)
		s.compiled = true
	}
	return s.pieces
}

// KV is an ordered key/value pair, used wherever the spec calls for an
// "ordered map" (default attributes, tag properties) that plain Go maps
// can't represent.
type KV struct {
	Key   string
	Value string
}

// TagSettings is the per-tag-name record described in spec §3. A missing
// entry is equivalent to the zero value (§9 "Tag-settings defaults").
type TagSettings struct {
	Block       bool
	SelfClosing bool
	DefaultAttr []KV
}

// Tables is the full set of static data one Expand call reads from. It is
// built once at process start (Load) and never mutated except through
// Snippet.Pieces' memoisation.
type Tables struct {
	HTMLSnippets    map[string]*Snippet
	HTMLAliases     map[string]string
	HTMLTagSettings map[string]TagSettings

	CSSSnippets  map[string]*Snippet
	SassSnippets map[string]*Snippet

	CSSColorCase            string // "auto" | "upper" | "lower"
	CSSColorShorten         bool
	CSSFloatUnit            string
	CSSIntUnit              string
	CSSUnitAliases          map[string]string
	CSSKeywordAliases       map[string]string
	CSSKeywords             map[string]bool
	CSSUnitlessProperties   map[string]bool
	CSSVendorPrefixesByProp map[string][]string

	LoremWords []string
}

func (t *Tables) TagSettings(name string) TagSettings {
	if ts, ok := t.HTMLTagSettings[name]; ok {
		return ts
	}
	return TagSettings{}
}
