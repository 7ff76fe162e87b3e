package numbering

import "testing"

func render(s string, i, n int) string {
	return Instantiate(Split(s), i, n)
}

func TestSplitNoDirective(t *testing.T) {
	segs := Split("item")
	if len(segs) != 1 || segs[0].Literal != "item" || segs[0].Directive != nil {
		t.Fatalf("expected single literal segment, got %+v", segs)
	}
}

func TestAscendingPadded(t *testing.T) {
	cases := []struct{ i int; want string }{
		{0, "a001"}, {1, "a002"}, {2, "a003"},
	}
	for _, c := range cases {
		got := render("a$$$", c.i, 3)
		if got != c.want {
			t.Errorf("a$$$ clone %d = %q, want %q", c.i, got, c.want)
		}
	}
}

func TestDescendingSingleDigit(t *testing.T) {
	cases := []struct{ i int; want string }{
		{0, "a3"}, {1, "a2"}, {2, "a1"},
	}
	for _, c := range cases {
		got := render("a$@-", c.i, 3)
		if got != c.want {
			t.Errorf("a$@- clone %d = %q, want %q", c.i, got, c.want)
		}
	}
}

func TestBaseOverride(t *testing.T) {
	if got := render("$@5", 0, 3); got != "5" {
		t.Errorf("$@5 clone 0 = %q, want 5", got)
	}
	if got := render("$@5", 2, 3); got != "7" {
		t.Errorf("$@5 clone 2 = %q, want 7", got)
	}
}

func TestDescendingWithBase(t *testing.T) {
	// @-5 with 3 clones: value = (n + base - 1) - i = (3+5-1)-i = 7-i
	if got := render("$@-5", 0, 3); got != "7" {
		t.Errorf("$@-5 clone 0 = %q, want 7", got)
	}
	if got := render("$@-5", 2, 3); got != "5" {
		t.Errorf("$@-5 clone 2 = %q, want 5", got)
	}
}

func TestEscapedDollarIsLiteral(t *testing.T) {
	segs := Split(`price\$5`)
	if HasDirective(segs) {
		t.Fatalf("escaped $ should not produce a directive: %+v", segs)
	}
	if got := Instantiate(segs, 0, 1); got != "price$5" {
		t.Errorf("got %q, want price$5", got)
	}
}

func TestDistinctPairsAcrossClones(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		seen[render("n-$$", i, 5)] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct numbering outputs, got %d", len(seen))
	}
}
