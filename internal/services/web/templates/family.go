package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/cscmnu/lmfdb/internal/services/smf/dimension"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

// FamilyView is the data shown on a family page.
type FamilyView struct {
	Name          string
	LatexName     string
	Degree        *int
	FormulaName   string
	FormulaParams []string
	Glossary      string
	Args          []string
	Table         *dimension.Table
}

// FamilyPage renders one family and, when computed, its dimension table.
func FamilyPage(page PageContext, view FamilyView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", view.Name)
		h.element("p", "math", "$"+view.LatexName+"$")
		if view.Degree != nil {
			h.element("p", "degree", TOr(page.Loc, "smf.family.degree", "Degree: %d", *view.Degree))
		}

		h.element("h2", "", TOr(page.Loc, "smf.family.dimension_heading", "Dimensions"))
		switch {
		case view.FormulaName == "":
			h.element("p", "", TOr(page.Loc, "smf.family.dimension_missing", "No dimension formula is available for this family."))
		default:
			h.element("p", "formula", TOr(page.Loc, "smf.family.dimension_formula", "Formula %s with arguments %s",
				view.FormulaName, strings.Join(view.FormulaParams, ", ")))
			if view.Glossary != "" {
				h.element("p", "glossary", view.Glossary)
			}
			if view.Table == nil {
				h.element("p", "", TOr(page.Loc, "smf.family.dimension_prompt", "Enter an argument to compute dimensions."))
			} else {
				writeDimensionTable(h, page, view.Table)
			}
		}

		h.raw(`<p>`)
		h.link(routepath.FamilySamples(view.Name), TOr(page.Loc, "smf.family.samples_link", "Browse samples"))
		h.raw(`</p>`)
		return h.err
	})
}

func writeDimensionTable(h *htmlWriter, page PageContext, table *dimension.Table) {
	h.raw(`<table class="dimensions"><thead><tr><th>k</th>`)
	for _, header := range table.Headers {
		h.element("th", "", header)
	}
	h.raw(`</tr></thead><tbody>`)
	for _, row := range table.Rows {
		h.raw(`<tr>`)
		h.element("td", "key", row.Key)
		for _, value := range row.Values {
			h.element("td", "", page.Number(value))
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}
