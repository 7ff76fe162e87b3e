// Package scanner provides the anchored-match primitives every parser in
// this engine is built from: a parser is a function from a Cursor to
// either a value and the remaining Cursor, or an error. Anchoring is the
// load-bearing property — every regex compiled through Anchor is matched
// only at the current cursor position, never scanned forward, so a failed
// match can always be retried by an Or alternative against the original
// input.
package scanner

import (
	"fmt"
	"sync"

	"github.com/dlclark/regexp2"
)

// Cursor is an immutable view over the remaining input. Parsers thread a
// Cursor through instead of mutating a shared position, so backtracking in
// Or is just "try the other branch with the same Cursor".
type Cursor struct {
	input string
	pos   int
}

func New(input string) Cursor {
	return Cursor{input: input, pos: 0}
}

func (c Cursor) Rest() string {
	return c.input[c.pos:]
}

func (c Cursor) Pos() int {
	return c.pos
}

func (c Cursor) Done() bool {
	return c.pos >= len(c.input)
}

func (c Cursor) Advance(n int) Cursor {
	return Cursor{input: c.input, pos: c.pos + n}
}

// Error is returned by a failed parse. It carries the cursor position so
// callers can report "expected X at offset N".
type Error struct {
	Message string
	Pos     int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at %d)", e.Message, e.Pos)
}

func Fail(c Cursor, expected string) error {
	return &Error{Message: "expected " + expected, Pos: c.pos}
}

var (
	reCacheMu sync.Mutex
	reCache   = map[string]*regexp2.Regexp{}
)

// anchored compiles pattern once (memoised, process-wide, write-once) and
// forces it to match starting exactly at the cursor position by prefixing
// an `\A` anchor.
func anchored(pattern string) *regexp2.Regexp {
	reCacheMu.Lock()
	defer reCacheMu.Unlock()
	if re, ok := reCache[pattern]; ok {
		return re
	}
	re := regexp2.MustCompile(`\A(?:`+pattern+`)`, regexp2.None)
	reCache[pattern] = re
	return re
}

// Match anchors pattern at c's current position. On success it returns the
// matched groups (index 0 is the whole match) and a Cursor advanced past
// the match. On failure it returns Fail(c, expected).
func Match(c Cursor, pattern string, expected string) ([]string, Cursor, error) {
	re := anchored(pattern)
	m, err := re.FindStringMatch(c.Rest())
	if err != nil || m == nil {
		return nil, c, Fail(c, expected)
	}
	groups := m.Groups()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.String()
	}
	return out, c.Advance(len(m.String())), nil
}

// Literal consumes exactly s from the head of c, or fails.
func Literal(c Cursor, s string) (Cursor, error) {
	rest := c.Rest()
	if len(rest) >= len(s) && rest[:len(s)] == s {
		return c.Advance(len(s)), nil
	}
	return c, Fail(c, "'"+s+"'")
}

// Peek reports whether the next byte (if any) is one of the bytes in set.
func Peek(c Cursor, set string) bool {
	rest := c.Rest()
	if len(rest) == 0 {
		return false
	}
	for i := 0; i < len(set); i++ {
		if rest[0] == set[i] {
			return true
		}
	}
	return false
}

// Parser runs a single parse step over a Cursor, producing a T or an error.
type Parser[T any] func(Cursor) (T, Cursor, error)

// Run threads c through p; a thin, named wrapper so call sites read as a
// grammar ("run(subexpr)") rather than a bare function call.
func Run[T any](p Parser[T], c Cursor) (T, Cursor, error) {
	return p(c)
}

// Or tries p1 against c; on failure it retries p2 against the *original*
// c, never the partially-advanced cursor p1 left behind.
func Or[T any](p1, p2 Parser[T]) Parser[T] {
	return func(c Cursor) (T, Cursor, error) {
		if v, rest, err := p1(c); err == nil {
			return v, rest, nil
		}
		return p2(c)
	}
}
