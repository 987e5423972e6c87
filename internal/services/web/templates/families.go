package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

// FamilyRow is one line of the families index.
type FamilyRow struct {
	Name              string
	LatexName         string
	Degree            *int
	ComputesDimension bool
}

// FamiliesPage lists families in the order given.
func FamiliesPage(page PageContext, rows []FamilyRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", TOr(page.Loc, "smf.index.heading", "Families of Siegel modular forms"))
		if len(rows) == 0 {
			h.element("p", "empty", TOr(page.Loc, "smf.index.empty", "No families are available."))
			return h.err
		}
		h.raw(`<table class="families"><thead><tr>`)
		h.element("th", "", TOr(page.Loc, "smf.column.family", "Family"))
		h.element("th", "", TOr(page.Loc, "smf.column.degree", "Degree"))
		h.element("th", "", TOr(page.Loc, "smf.column.dimensions", "Dimensions"))
		h.raw(`</tr></thead><tbody>`)
		for _, row := range rows {
			h.raw(`<tr><td>`)
			h.link(routepath.Family(row.Name), row.Name)
			h.raw(` `)
			h.element("span", "math", "$"+row.LatexName+"$")
			h.raw(`</td>`)
			h.element("td", "", degreeLabel(page, row.Degree))
			if row.ComputesDimension {
				h.element("td", "", TOr(page.Loc, "smf.dimension.available", "available"))
			} else {
				h.element("td", "", TOr(page.Loc, "smf.dimension.none", "none"))
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}

func degreeLabel(page PageContext, degree *int) string {
	if degree == nil {
		return TOr(page.Loc, "smf.degree.unknown", "unknown")
	}
	return page.Number(int64(*degree))
}
