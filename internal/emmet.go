// Package emmet is the driver described in spec §6: it selects the HTML
// or CSS pipeline from a Mode and returns the expanded string, surfacing
// parser/internal failures as a single *loc.ExpandError.
package emmet

import (
	"math/rand"

	"github.com/emmetio/goexpand/internal/cssexpr"
	"github.com/emmetio/goexpand/internal/handler"
	"github.com/emmetio/goexpand/internal/htmlexpr"
	"github.com/emmetio/goexpand/internal/loc"
	"github.com/emmetio/goexpand/internal/scanner"
	"github.com/emmetio/goexpand/internal/tables"
)

// knownFilters are the filter names lookupTagMaker/applyPostFilters actually
// consume; anything else is accepted (spec §7 "ignored silently") but still
// worth surfacing to a caller that asks for diagnostics.
var knownFilters = map[string]bool{"html": true, "haml": true, "hic": true, "c": true, "e": true}

// Mode selects which dialect Expand parses input as.
type Mode int

const (
	Html Mode = iota
	Css
	Sass
)

// Options mirrors spec §6's Options enumeration.
type Options struct {
	IndentWidth        int
	SelfClosingStyle   string
	JSX                bool
	JSXBracesForClass  bool
	ColorCase          string // "auto" | "upper" | "lower"
	ColorShorten       bool
	DefaultFilterByExt map[string][]string
	FallbackFilter     []string
	LoremSeed          int64
	LeafPlaceholder    string
	MaxExpansions      int
}

// FilterFor resolves the filter chain an editor integration should use for
// a file extension, per spec §6's `defaultFilterByExt`: it is the caller's
// job to pass the resolved chain back in as FallbackFilter, since Expand's
// signature carries no extension parameter.
func (o Options) FilterFor(ext string) []string {
	if f, ok := o.DefaultFilterByExt[ext]; ok {
		return f
	}
	if o.FallbackFilter != nil {
		return o.FallbackFilter
	}
	return []string{"html"}
}

// WithDefaults fills the zero-value fields of o with spec §6's defaults.
func (o Options) WithDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	if o.SelfClosingStyle == "" {
		o.SelfClosingStyle = " /"
	}
	if o.ColorCase == "" {
		o.ColorCase = "auto"
	}
	if o.FallbackFilter == nil {
		o.FallbackFilter = []string{"html"}
	}
	return o
}

// Engine bundles a loaded Tables with the Options every call should use,
// so a long-lived process (an editor integration) builds one Engine at
// startup and calls Expand per abbreviation (spec §6 "pure function of
// (x, options, seed)" — the Tables are the only thing amortised).
type Engine struct {
	Tables  *tables.Tables
	handler *handler.Handler
}

// New builds an Engine from the embedded default tables.
func New() (*Engine, error) {
	t, err := tables.Default()
	if err != nil {
		return nil, err
	}
	return &Engine{Tables: t, handler: handler.NewHandler()}, nil
}

// NewFromJSON builds an Engine from caller-supplied snippets/preferences/
// lorem JSON documents (spec §8 "injectable tables").
func NewFromJSON(snippetsJSON, preferencesJSON, loremJSON []byte) (*Engine, error) {
	t, err := tables.Load(snippetsJSON, preferencesJSON, loremJSON)
	if err != nil {
		return nil, err
	}
	return &Engine{Tables: t, handler: handler.NewHandler()}, nil
}

// Warnings returns the non-fatal diagnostics accumulated across every call
// to Expand made on this Engine so far (spec §7: unknown filters/keys/tags
// fall back silently in the returned string, but a caller building an editor
// integration still wants to know they happened).
func (e *Engine) Warnings() []loc.DiagnosticMessage {
	if e.handler == nil {
		return nil
	}
	return e.handler.Warnings()
}

// Expand is the primary API (spec §6): expand(input, mode, options) ->
// Result<string, ExpandError>.
func (e *Engine) Expand(input string, mode Mode, opts Options) (string, error) {
	opts = opts.WithDefaults()
	switch mode {
	case Css, Sass:
		return e.expandCSS(input, mode, opts)
	default:
		return e.expandHTML(input, opts)
	}
}

func (e *Engine) expandHTML(input string, opts Options) (string, error) {
	ctx := &htmlexpr.Context{
		Tables:        e.Tables,
		JSX:           opts.JSX,
		MaxExpansions: opts.MaxExpansions,
	}
	tree, err := htmlexpr.Parse(input, ctx)
	if err != nil {
		pos := -1
		if serr, ok := err.(*scanner.Error); ok {
			pos = serr.Pos
		}
		return "", loc.NewParseError(err.Error(), pos, 0)
	}
	if len(tree.Filters) == 0 {
		tree.Filters = opts.FallbackFilter
	}
	for _, f := range tree.Filters {
		if !knownFilters[f] && e.handler != nil {
			e.handler.AppendWarning(loc.WARNING_UNKNOWN_FILTER, "unknown filter: "+f)
		}
	}
	if e.handler != nil {
		for _, name := range htmlexpr.UnknownTagNames(tree, e.Tables) {
			e.handler.AppendWarning(loc.WARNING_UNKNOWN_TAG, "unknown tag: "+name)
		}
	}

	var rnd *rand.Rand
	if opts.LoremSeed != 0 {
		rnd = rand.New(rand.NewSource(opts.LoremSeed))
	}
	out := htmlexpr.Render(tree, e.Tables, htmlexpr.RenderOptions{
		IndentWidth:       optOr(opts.IndentWidth, 2),
		SelfClosingStyle:  opts.SelfClosingStyle,
		JSX:               opts.JSX,
		JSXBracesForClass: opts.JSXBracesForClass,
		Lorem:             rnd,
		LeafPlaceholder:   opts.LeafPlaceholder,
	})
	return out, nil
}

func (e *Engine) expandCSS(input string, mode Mode, opts Options) (string, error) {
	sass := mode == Sass
	if e.handler != nil {
		for _, key := range cssexpr.UnknownKeys(input, e.Tables, sass) {
			e.handler.AppendWarning(loc.WARNING_UNKNOWN_CSS_KEY, "unknown CSS key: "+key)
		}
	}
	out := cssexpr.Render(input, e.Tables, cssexpr.RenderOptions{
		Sass:         sass,
		ColorCase:    opts.ColorCase,
		ColorShorten: opts.ColorShorten,
	})
	return out, nil
}

func optOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
