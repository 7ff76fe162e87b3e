package cssexpr_test

import (
	"testing"

	"github.com/emmetio/goexpand/internal/cssexpr"
	"github.com/emmetio/goexpand/internal/tables"
)

func expandCSS(t *testing.T, input string, opts cssexpr.RenderOptions) string {
	t.Helper()
	tbl, err := tables.Default()
	if err != nil {
		t.Fatalf("tables.Default: %v", err)
	}
	return cssexpr.Render(input, tbl, opts)
}

func TestRenderScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  cssexpr.RenderOptions
		want  string
	}{
		{
			name:  "margin with implicit px",
			input: "m10",
			want:  "margin: 10px;",
		},
		{
			name:  "auto vendor prefix from property table",
			input: "-bdrs5",
			want:  "-webkit-border-radius: 5px;\n-moz-border-radius: 5px;\nborder-radius: 5px;",
		},
		{
			name:  "hex color shortened, excess arg unread",
			input: "c#f.5",
			want:  "color: #fff;",
		},
		{
			name:  "important flag",
			input: "m10!",
			want:  "margin: 10px !important;",
		},
		{
			name:  "unitless property suppresses unit",
			input: "z5",
			want:  "z-index: 5;",
		},
		{
			name:  "keyword alias",
			input: "bd s",
			want:  "border: solid;",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := expandCSS(t, tc.input, tc.opts)
			if got != tc.want {
				t.Errorf("Render(%q):\n got:  %q\n want: %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRenderPlusContinuationFallback(t *testing.T) {
	// "+20" looks like a new subexpression but can't be one (a key can't
	// start with a digit), so it re-joins onto "xyz10" as a second
	// argument; since "xyz" has no snippet, the fallback renders both.
	got := expandCSS(t, "xyz10+20", cssexpr.RenderOptions{})
	want := "xyz: 10px 20px;"
	if got != want {
		t.Errorf("Render(%q) = %q, want %q", "xyz10+20", got, want)
	}
}

func TestRenderPlusContinuationSingleSlotDropsExcess(t *testing.T) {
	// Same continuation mechanics, but "m" has a single-placeholder
	// snippet, so the second argument is parsed and then simply never
	// read (spec §8 scenario 7 resolves the analogous "c#f.5" the same
	// way).
	got := expandCSS(t, "m10+20", cssexpr.RenderOptions{})
	want := "margin: 10px;"
	if got != want {
		t.Errorf("Render(%q) = %q, want %q", "m10+20", got, want)
	}
}

func TestRenderSassStripsSemicolon(t *testing.T) {
	got := expandCSS(t, "m10", cssexpr.RenderOptions{Sass: true})
	want := "margin: 10px"
	if got != want {
		t.Errorf("Render(sass, m10) = %q, want %q", got, want)
	}
}

func TestRenderExplicitVendorSet(t *testing.T) {
	got := expandCSS(t, "-wm-trf10", cssexpr.RenderOptions{})
	want := "-webkit-transform: 10px;\n-moz-transform: 10px;\ntransform: 10px;"
	if got != want {
		t.Errorf("Render(explicit vendor) = %q, want %q", got, want)
	}
}
