package htmlexpr

import (
	"testing"

	"github.com/emmetio/goexpand/internal/scanner"
	"github.com/emmetio/goexpand/internal/tables"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	tbl, err := tables.Default()
	if err != nil {
		t.Fatalf("tables.Default: %v", err)
	}
	return &Context{Tables: tbl}
}

func TestLoremSpecForPlainAndCounted(t *testing.T) {
	if _, ok := loremSpecFor("div"); ok {
		t.Error(`loremSpecFor("div") matched, want no match`)
	}
	spec, ok := loremSpecFor("lorem")
	if !ok || spec.Count != 30 {
		t.Fatalf("loremSpecFor(\"lorem\") = %+v, %v, want Count=30", spec, ok)
	}
	spec, ok = loremSpecFor("ipsum50")
	if !ok || spec.Count != 50 {
		t.Fatalf("loremSpecFor(\"ipsum50\") = %+v, %v, want Count=50", spec, ok)
	}
}

func TestIsBare(t *testing.T) {
	bare := &TagExpr{Name: "div"}
	if !isBare(bare) {
		t.Error("isBare(plain div) = false, want true")
	}
	decorated := &TagExpr{Name: "div", ID: &TextPart{}}
	if isBare(decorated) {
		t.Error("isBare(div with id) = true, want false")
	}
}

func TestResolveTagBareLoremWrapsNothing(t *testing.T) {
	ctx := testContext(t)
	tag := &TagExpr{Name: "lorem5"}
	expr, _, err := resolveTag(tag, scanner.New(""), ctx)
	if err != nil {
		t.Fatalf("resolveTag: %v", err)
	}
	text, ok := expr.(*TextExpr)
	if !ok {
		t.Fatalf("resolveTag(bare lorem5) = %T, want *TextExpr", expr)
	}
	if text.Content.Lorem == nil || text.Content.Lorem.Count != 5 {
		t.Errorf("Content.Lorem = %+v, want Count=5", text.Content.Lorem)
	}
}

func TestResolveTagDecoratedLoremWrapsInDiv(t *testing.T) {
	ctx := testContext(t)
	id := NewTextPart("box")
	tag := &TagExpr{Name: "lorem10", ID: &id}
	expr, _, err := resolveTag(tag, scanner.New(""), ctx)
	if err != nil {
		t.Fatalf("resolveTag: %v", err)
	}
	wrapped, ok := expr.(*TagExpr)
	if !ok || wrapped.Name != "div" {
		t.Fatalf("resolveTag(decorated lorem10) = %+v, want wrapping div", expr)
	}
	if wrapped.ID == nil || wrapped.ID.String() != "box" {
		t.Errorf("wrapped.ID = %+v, want %q", wrapped.ID, "box")
	}
	if wrapped.Text == nil || wrapped.Text.Lorem == nil || wrapped.Text.Lorem.Count != 10 {
		t.Errorf("wrapped.Text.Lorem = %+v, want Count=10", wrapped.Text)
	}
}

func TestResolveTagAliasExpansion(t *testing.T) {
	ctx := testContext(t)
	tag := &TagExpr{Name: "bq"}
	expr, _, err := resolveTag(tag, scanner.New(""), ctx)
	if err != nil {
		t.Fatalf("resolveTag: %v", err)
	}
	got, ok := expr.(*TagExpr)
	if !ok || got.Name != "blockquote" {
		t.Fatalf("resolveTag(bq) = %+v, want blockquote tag", expr)
	}
}

func TestResolveTagAliasMergesIDAndClasses(t *testing.T) {
	ctx := testContext(t)
	id := NewTextPart("q1")
	classes := []TextPart{NewTextPart("quote")}
	tag := &TagExpr{Name: "bq", ID: &id, Classes: classes}
	expr, _, err := resolveTag(tag, scanner.New(""), ctx)
	if err != nil {
		t.Fatalf("resolveTag: %v", err)
	}
	got := expr.(*TagExpr)
	if got.ID == nil || got.ID.String() != "q1" {
		t.Errorf("merged ID = %+v, want q1", got.ID)
	}
	if len(got.Classes) != 1 || got.Classes[0].String() != "quote" {
		t.Errorf("merged Classes = %+v, want [quote]", got.Classes)
	}
}

func TestOutermostTagWalksParentSpine(t *testing.T) {
	leaf := &TagExpr{Name: "span"}
	tree := &ParentChildExpr{
		Parent: &SiblingExpr{Left: leaf, Right: &TagExpr{Name: "b"}},
		Child:  &TextExpr{},
	}
	got := outermostTag(tree)
	if got != leaf {
		t.Errorf("outermostTag = %+v, want the sibling-left leaf", got)
	}
}

func TestApplyTagSettingsFillsSelfClosingAndDefaults(t *testing.T) {
	ctx := testContext(t)
	tag := &TagExpr{Name: "img", HasBody: true}
	got := applyTagSettings(tag, ctx)
	if got.HasBody {
		t.Error("applyTagSettings(img).HasBody = true, want false (void element)")
	}
	names := map[string]bool{}
	for _, p := range got.Props {
		names[p.Key] = true
	}
	if !names["src"] || !names["alt"] {
		t.Errorf("applyTagSettings(img).Props = %+v, want default src/alt", got.Props)
	}
}
