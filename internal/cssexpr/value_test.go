package cssexpr

import (
	"testing"

	"github.com/emmetio/goexpand/internal/tables"
)

func valueTestTables(t *testing.T) *tables.Tables {
	t.Helper()
	tbl, err := tables.Default()
	if err != nil {
		t.Fatalf("tables.Default: %v", err)
	}
	return tbl
}

func TestParseNumberDefaultUnit(t *testing.T) {
	tbl := valueTestTables(t)
	arg, rest, ok := parseNumber("10px rest", tbl)
	if !ok {
		t.Fatal("parseNumber failed")
	}
	if arg.Num != "10" || arg.Unit != "px" || rest != " rest" {
		t.Errorf("parseNumber = %+v, rest %q", arg, rest)
	}
}

func TestParseNumberImplicitIntUnit(t *testing.T) {
	tbl := valueTestTables(t)
	arg, _, ok := parseNumber("10", tbl)
	if !ok || arg.Unit != tbl.CSSIntUnit {
		t.Errorf("parseNumber(10) = %+v, want implicit unit %q", arg, tbl.CSSIntUnit)
	}
}

func TestParseNumberImplicitFloatUnit(t *testing.T) {
	tbl := valueTestTables(t)
	arg, _, ok := parseNumber("1.5", tbl)
	if !ok || arg.Unit != tbl.CSSFloatUnit {
		t.Errorf("parseNumber(1.5) = %+v, want implicit float unit %q", arg, tbl.CSSFloatUnit)
	}
}

func TestParseNumberUnitAlias(t *testing.T) {
	tbl := valueTestTables(t)
	for alias, full := range tbl.CSSUnitAliases {
		arg, _, ok := parseNumber("5"+alias, tbl)
		if !ok || arg.Unit != full {
			t.Errorf("parseNumber(5%s) = %+v, want unit %q", alias, arg, full)
		}
		break // one sample alias is enough; the mapping itself is data, not logic under test
	}
}

func TestParseColorShortAndNormalize(t *testing.T) {
	tbl := valueTestTables(t)
	arg, rest, ok := parseColor("#f.5", tbl)
	if !ok {
		t.Fatal("parseColor(#f.5) failed")
	}
	if arg.Text != "#ffffff" {
		t.Errorf("arg.Text = %q, want #ffffff", arg.Text)
	}
	if rest != ".5" {
		t.Errorf("rest = %q, want %q", rest, ".5")
	}
}

func TestParseColorRGBFunction(t *testing.T) {
	tbl := valueTestTables(t)
	arg, _, ok := parseColor("#0080ffrgb", tbl)
	if !ok {
		t.Fatal("parseColor(#0080ffrgb) failed")
	}
	if arg.Text != "rgb(0,128,255)" {
		t.Errorf("arg.Text = %q, want rgb(0,128,255)", arg.Text)
	}
}

func TestParseColorNotAColor(t *testing.T) {
	tbl := valueTestTables(t)
	if _, _, ok := parseColor("nope", tbl); ok {
		t.Error("parseColor(nope) succeeded, want failure (no leading #)")
	}
}

func TestNormalizeHex(t *testing.T) {
	cases := map[string]string{
		"f":    "ffffff",
		"0f":   "0f0f0f",
		"fff":  "ffffff",
		"0080": "008000",
	}
	for in, want := range cases {
		if got := normalizeHex(in); got != want {
			t.Errorf("normalizeHex(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatColorShortensAndCases(t *testing.T) {
	if got := formatColor("#ffffff", "lower", true); got != "#fff" {
		t.Errorf("formatColor shorten = %q, want #fff", got)
	}
	if got := formatColor("#ffffff", "lower", false); got != "#ffffff" {
		t.Errorf("formatColor no-shorten = %q, want #ffffff", got)
	}
	if got := formatColor("#aabbcc", "upper", true); got != "#ABC" {
		t.Errorf("formatColor upper+shorten = %q, want #ABC", got)
	}
	if got := formatColor("#abcdef", "lower", true); got != "#abcdef" {
		t.Errorf("formatColor unshortenable = %q, want unchanged", got)
	}
}

func TestParseArgsSkipsUnrecognizedPunctuation(t *testing.T) {
	tbl := valueTestTables(t)
	args := ParseArgs(",10", tbl)
	if len(args) != 1 || args[0].Num != "10" {
		t.Errorf("ParseArgs(,10) = %+v, want one numeric arg", args)
	}
}

func TestParseArgsMultiple(t *testing.T) {
	tbl := valueTestTables(t)
	args := ParseArgs("10 20", tbl)
	if len(args) != 2 || args[0].Num != "10" || args[1].Num != "20" {
		t.Errorf("ParseArgs(10 20) = %+v, want two numeric args", args)
	}
}
