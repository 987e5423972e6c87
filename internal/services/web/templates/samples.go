package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

// SamplesView is the data shown on a family samples page.
type SamplesView struct {
	Family  string
	Filter  string
	Samples []storage.Sample
}

// SamplesPage renders the samples of one family.
func SamplesPage(page PageContext, view SamplesView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", TOr(page.Loc, "smf.samples.title", "Samples of %s", view.Family))
		h.raw(`<p>`)
		h.link(routepath.Family(view.Family), view.Family)
		h.raw(`</p><form method="get"><input type="text" name="`)
		h.text(routepath.SampleFilterParam)
		h.raw(`" value="`)
		h.text(view.Filter)
		h.raw(`"></form>`)

		if len(view.Samples) == 0 {
			h.element("p", "empty", TOr(page.Loc, "smf.samples.empty", "No samples match."))
			return h.err
		}
		h.element("p", "count", TOr(page.Loc, "smf.samples.count", "%d samples", len(view.Samples)))
		h.raw(`<table class="samples"><thead><tr>`)
		h.element("th", "", TOr(page.Loc, "smf.column.name", "Name"))
		h.element("th", "", TOr(page.Loc, "smf.column.weight", "Weight"))
		h.element("th", "", TOr(page.Loc, "smf.column.degree", "Degree"))
		h.element("th", "", TOr(page.Loc, "smf.column.field", "Field"))
		h.element("th", "", TOr(page.Loc, "smf.column.eigenform", "Eigenform"))
		h.raw(`</tr></thead><tbody>`)
		for _, sample := range view.Samples {
			h.raw(`<tr>`)
			h.element("td", "", sample.Name)
			h.element("td", "", page.Number(int64(sample.Weight)))
			h.element("td", "", page.Number(int64(sample.Degree)))
			h.element("td", "", sample.Field)
			if sample.IsEigenform {
				h.element("td", "", TOr(page.Loc, "smf.bool.yes", "yes"))
			} else {
				h.element("td", "", TOr(page.Loc, "smf.bool.no", "no"))
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
		return h.err
	})
}
