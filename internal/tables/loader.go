package tables

import (
	_ "embed"
	"fmt"

	jsonv2 "github.com/go-json-experiment/json"
	"github.com/tidwall/gjson"
)

//go:embed snippets.json
var defaultSnippetsJSON []byte

//go:embed preferences.json
var defaultPreferencesJSON []byte

//go:embed lorem.json
var defaultLoremJSON []byte

// dialectSnippets mirrors one of the "html"/"css"/"sass" top-level keys of
// snippets.json (spec §6). go-json-experiment/json gives a strict decode
// of this well-defined, rarely-varying shape.
type dialectSnippets struct {
	Snippets map[string]string `json:"snippets"`
	Aliases  map[string]string `json:"aliases"`
}

type snippetsFile struct {
	HTML dialectSnippets `json:"html"`
	CSS  dialectSnippets `json:"css"`
	Sass dialectSnippets `json:"sass"`
}

type loremFile struct {
	Words []string `json:"words"`
}

func mkSnippets(raw map[string]string) map[string]*Snippet {
	out := make(map[string]*Snippet, len(raw))
	for k, v := range raw {
		out[k] = &Snippet{Raw: v}
	}
	return out
}

// Default returns the Tables built from the engine's built-in
// snippets.json/preferences.json/lorem.json, embedded at compile time.
func Default() (*Tables, error) {
	return Load(defaultSnippetsJSON, defaultPreferencesJSON, defaultLoremJSON)
}

// Load builds a Tables from caller-supplied JSON documents, the injectable
// seam spec §8 requires so tests (and editor integrations that ship their
// own snippets.json/preferences.json) never depend on the embedded
// defaults.
func Load(snippetsJSON, preferencesJSON, loremJSON []byte) (*Tables, error) {
	var sf snippetsFile
	if err := jsonv2.Unmarshal(snippetsJSON, &sf); err != nil {
		return nil, fmt.Errorf("tables: decoding snippets.json: %w", err)
	}

	var lf loremFile
	if loremJSON != nil {
		if err := jsonv2.Unmarshal(loremJSON, &lf); err != nil {
			return nil, fmt.Errorf("tables: decoding lorem.json: %w", err)
		}
	}

	t := &Tables{
		HTMLSnippets:    mkSnippets(sf.HTML.Snippets),
		HTMLAliases:     sf.HTML.Aliases,
		HTMLTagSettings: map[string]TagSettings{},
		CSSSnippets:     mkSnippets(sf.CSS.Snippets),
		SassSnippets:    mkSnippets(sf.Sass.Snippets),

		CSSUnitAliases:          map[string]string{},
		CSSKeywordAliases:       map[string]string{},
		CSSKeywords:             map[string]bool{},
		CSSUnitlessProperties:   map[string]bool{},
		CSSVendorPrefixesByProp: map[string][]string{},

		LoremWords: lf.Words,
	}
	if t.HTMLAliases == nil {
		t.HTMLAliases = map[string]string{}
	}

	// preferences.json nests differently under "html" and "css" (tag
	// records vs. flat preference knobs) and the css side in turn nests
	// irregularly (maps of strings, maps of lists, plain scalars). Rather
	// than one struct per nested shape, read it with gjson the way an
	// editor integration would poke at arbitrary preference keys.
	if len(preferencesJSON) > 0 {
		root := gjson.ParseBytes(preferencesJSON)
		root.Get("html.tags").ForEach(func(name, rec gjson.Result) bool {
			ts := TagSettings{
				Block:       rec.Get("block").Bool(),
				SelfClosing: rec.Get("selfClosing").Bool(),
			}
			rec.Get("defaultAttr").ForEach(func(k, v gjson.Result) bool {
				ts.DefaultAttr = append(ts.DefaultAttr, KV{Key: k.String(), Value: v.String()})
				return true
			})
			t.HTMLTagSettings[name.String()] = ts
			return true
		})

		css := root.Get("css")
		t.CSSColorCase = orDefault(css.Get("color.case").String(), "auto")
		t.CSSColorShorten = css.Get("color.shorten").Bool()
		t.CSSFloatUnit = orDefault(css.Get("floatUnit").String(), "em")
		t.CSSIntUnit = orDefault(css.Get("intUnit").String(), "px")

		css.Get("unitAliases").ForEach(func(k, v gjson.Result) bool {
			t.CSSUnitAliases[k.String()] = v.String()
			return true
		})
		css.Get("keywordAliases").ForEach(func(k, v gjson.Result) bool {
			t.CSSKeywordAliases[k.String()] = v.String()
			return true
		})
		css.Get("keywords").ForEach(func(_, v gjson.Result) bool {
			t.CSSKeywords[v.String()] = true
			return true
		})
		css.Get("unitlessProperties").ForEach(func(_, v gjson.Result) bool {
			t.CSSUnitlessProperties[v.String()] = true
			return true
		})
		css.Get("vendorPrefixesProperties").ForEach(func(k, v gjson.Result) bool {
			var prefixes []string
			v.ForEach(func(_, p gjson.Result) bool {
				prefixes = append(prefixes, p.String())
				return true
			})
			t.CSSVendorPrefixesByProp[k.String()] = prefixes
			return true
		})
	}

	return t, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
