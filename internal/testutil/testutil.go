// Package testutil holds small test helpers shared across this module's
// packages: dedenting multi-line fixtures and snapshotting an
// abbreviation's input/output pair.
package testutil

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lithammer/dedent"
)

// Dedent strips a block fixture's common leading indentation and trims
// surrounding blank lines, so test fixtures can be written indented to
// match the surrounding Go code.
func Dedent(input string) string {
	return dedent.Dedent(
		strings.TrimRight(strings.TrimLeft(input, "\n"), " \n\r"),
	)
}

// OutputKind labels which fence language a snapshot's output block uses.
type OutputKind int

const (
	HTMLOutput OutputKind = iota
	CSSOutput
)

var fence = map[OutputKind]string{
	HTMLOutput: "html",
	CSSOutput:  "css",
}

// SnapshotOptions configures MakeSnapshot.
type SnapshotOptions struct {
	Testing      *testing.T
	TestCaseName string
	Input        string
	Output       string
	Kind         OutputKind
}

// MakeSnapshot records an abbreviation and its expansion as a single
// Markdown snapshot, so a reviewer can see both sides of a regression in
// one diff.
func MakeSnapshot(o *SnapshotOptions) {
	name := redact(o.TestCaseName)
	s := snaps.WithConfig(snaps.Filename(name), snaps.Dir("__snapshots__"))

	var b strings.Builder
	b.WriteString("## Input\n\n```\n")
	b.WriteString(o.Input)
	b.WriteString("\n```\n\n## Output\n\n```")
	b.WriteString(fence[o.Kind])
	b.WriteString("\n")
	b.WriteString(o.Output)
	b.WriteString("\n```")

	s.MatchSnapshot(o.Testing, b.String())
}

func redact(name string) string {
	replacer := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_",
		":", "_", " ", "_", "'", "_", "\"", "_", "@", "_", "+", "_",
	)
	return replacer.Replace(name)
}
