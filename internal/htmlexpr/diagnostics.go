package htmlexpr

import "github.com/emmetio/goexpand/internal/tables"

// UnknownTagNames walks fe's body collecting the name of every tag that
// resolved to neither an alias/snippet nor a recognised HTML5 element: a
// caller passes the abbreviation through as-is (spec §7 "custom tag
// names pass through unchanged"), but a diagnostics-aware caller still
// wants to know it happened (WARNING_UNKNOWN_TAG).
func UnknownTagNames(fe *FilterExpr, tbl *tables.Tables) []string {
	var names []string
	collectUnknownTags(fe.Body, tbl, &names)
	return names
}

func collectUnknownTags(e Expr, tbl *tables.Tables, names *[]string) {
	switch t := e.(type) {
	case *ListExpr:
		for _, it := range t.Items {
			collectUnknownTags(it, tbl, names)
		}
	case *SiblingExpr:
		collectUnknownTags(t.Left, tbl, names)
		collectUnknownTags(t.Right, tbl, names)
	case *ParentChildExpr:
		collectUnknownTags(t.Parent, tbl, names)
		collectUnknownTags(t.Child, tbl, names)
	case *TagExpr:
		if !t.Snippet && !tables.IsKnownTag(t.Name) {
			*names = append(*names, t.Name)
		}
	}
}
