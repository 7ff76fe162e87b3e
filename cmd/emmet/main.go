// Command emmet expands a single Emmet-style abbreviation on the command
// line, for quick checks outside an editor integration.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/diff"

	"github.com/emmetio/goexpand/internal"
)

func main() {
	mode := flag.String("mode", "html", "html | css | sass")
	indentWidth := flag.Int("indent", 2, "indent width")
	jsx := flag.Bool("jsx", false, "use JSX attribute conventions")
	diffAgainst := flag.String("diff", "", "print a diff against this expected output instead of the raw expansion")
	flag.Parse()

	input := flag.Arg(0)
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "emmet: reading stdin:", err)
			os.Exit(1)
		}
		input = string(data)
	}

	m := emmet.Html
	switch *mode {
	case "css":
		m = emmet.Css
	case "sass":
		m = emmet.Sass
	}

	engine, err := emmet.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "emmet: loading tables:", err)
		os.Exit(1)
	}

	out, err := engine.Expand(input, m, emmet.Options{
		IndentWidth: *indentWidth,
		JSX:         *jsx,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "emmet:", err)
		os.Exit(1)
	}

	if *diffAgainst != "" {
		if err := diff.Text("expected", "got", *diffAgainst, out, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, "emmet: diff:", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(out)
}
