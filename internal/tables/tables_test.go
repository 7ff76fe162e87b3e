package tables_test

import (
	"testing"

	"github.com/emmetio/goexpand/internal/tables"
)

func TestDefaultLoadsEmbeddedData(t *testing.T) {
	tbl, err := tables.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if _, ok := tbl.HTMLSnippets["html:5"]; !ok {
		t.Error(`HTMLSnippets["html:5"] missing`)
	}
	if tbl.HTMLAliases["!"] != "html:5" {
		t.Errorf(`HTMLAliases["!"] = %q, want "html:5"`, tbl.HTMLAliases["!"])
	}
	if !tbl.TagSettings("img").SelfClosing {
		t.Error(`TagSettings("img").SelfClosing = false, want true`)
	}
	if !tbl.CSSUnitlessProperties["z-index"] {
		t.Error(`CSSUnitlessProperties["z-index"] = false, want true`)
	}
	if len(tbl.LoremWords) == 0 {
		t.Error("LoremWords is empty")
	}
}

func TestLoadFromCustomJSON(t *testing.T) {
	snippets := []byte(`{
		"html": {"snippets": {"x": "<x>${child}</x>"}, "aliases": {"y": "x"}},
		"css": {"snippets": {"m": "margin: ${1};"}},
		"sass": {"snippets": {}}
	}`)
	preferences := []byte(`{
		"html": {"tags": {"x": {"block": true}}},
		"css": {
			"color": {"case": "upper", "shorten": false},
			"floatUnit": "rem",
			"intUnit": "px",
			"unitAliases": {}, "keywordAliases": {}, "keywords": [],
			"unitlessProperties": ["x-prop"],
			"vendorPrefixesProperties": {}
		}
	}`)

	tbl, err := tables.Load(snippets, preferences, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := tbl.HTMLSnippets["x"]; !ok {
		t.Error(`HTMLSnippets["x"] missing`)
	}
	if tbl.HTMLAliases["y"] != "x" {
		t.Errorf(`HTMLAliases["y"] = %q, want "x"`, tbl.HTMLAliases["y"])
	}
	if tbl.CSSColorCase != "upper" {
		t.Errorf("CSSColorCase = %q, want upper", tbl.CSSColorCase)
	}
	if tbl.CSSFloatUnit != "rem" {
		t.Errorf("CSSFloatUnit = %q, want rem", tbl.CSSFloatUnit)
	}
	if tbl.LoremWords != nil {
		t.Errorf("LoremWords = %v, want nil (no lorem.json given)", tbl.LoremWords)
	}
}

func TestSnippetPiecesMemoized(t *testing.T) {
	compiles := 0
	compile := func(raw string) []tables.Piece {
		compiles++
		return []tables.Piece{{Kind: tables.LiteralPiece, Literal: raw}}
	}
	snip := &tables.Snippet{Raw: "margin: ${1};"}
	snip.Pieces(compile)
	snip.Pieces(compile)
	snip.Pieces(compile)
	if compiles != 1 {
		t.Errorf("compile called %d times, want 1 (memoized)", compiles)
	}
}

func TestTagSettingsMissingIsZeroValue(t *testing.T) {
	tbl, err := tables.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	ts := tbl.TagSettings("not-a-real-tag")
	if ts.Block || ts.SelfClosing || ts.DefaultAttr != nil {
		t.Errorf("TagSettings(unknown) = %+v, want zero value", ts)
	}
}
