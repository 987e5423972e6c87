package web

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
	"github.com/cscmnu/lmfdb/internal/services/shared/route"
	"github.com/cscmnu/lmfdb/internal/services/smf/family"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
	"github.com/cscmnu/lmfdb/internal/services/web/templates"
)

func (h *handler) handleFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.catalog.Families(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	rows := make([]templates.FamilyRow, 0, len(families))
	for _, fam := range families {
		rows = append(rows, templates.FamilyRow{
			Name:              fam.Name,
			LatexName:         fam.LatexName,
			Degree:            fam.Degree,
			ComputesDimension: fam.ComputesDimension(),
		})
	}
	page, _ := localizer(w, r)
	title := templates.TOr(page.Loc, "smf.index.title", "Siegel modular forms")
	writePage(w, r, page, title, http.StatusOK, templates.FamiliesPage(page, rows))
}

func (h *handler) handleFamilyRoutes(w http.ResponseWriter, r *http.Request) {
	if route.RedirectTrailingSlash(w, r) {
		return
	}
	rest := strings.TrimPrefix(r.URL.EscapedPath(), routepath.SiegelPrefix)
	parts, ok := route.SplitPathParts(rest)
	if !ok {
		h.renderErrorStatus(w, r, http.StatusNotFound)
		return
	}
	switch {
	case len(parts) == 1:
		h.handleFamily(w, r, parts[0])
	case len(parts) == 2 && parts[1] == routepath.SamplesSegment:
		h.handleSamples(w, r, parts[0])
	default:
		h.renderErrorStatus(w, r, http.StatusNotFound)
	}
}

func (h *handler) handleFamily(w http.ResponseWriter, r *http.Request, name string) {
	fam, err := h.catalog.Family(r.Context(), name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	requested := queryArgs(r)
	view := templates.FamilyView{
		Name:      fam.Name,
		LatexName: fam.LatexName,
		Degree:    fam.Degree,
	}
	if desc := fam.DimensionDesc(); desc != nil {
		view.FormulaName = desc.Name
		view.FormulaParams = desc.Args
		view.Glossary = fam.DimensionGlossary()
		args := requested
		if len(args) == 0 {
			args = fam.DimArgsDefault
		}
		if len(args) > 0 {
			table, err := fam.Dimension(args...)
			if err != nil {
				h.renderError(w, r, err)
				return
			}
			view.Args = args
			view.Table = table
		}
	} else if len(requested) > 0 {
		h.renderError(w, r, dimensionUnavailable(fam))
		return
	}

	page, _ := localizer(w, r)
	writePage(w, r, page, fam.Name, http.StatusOK, templates.FamilyPage(page, view))
}

func (h *handler) handleSamples(w http.ResponseWriter, r *http.Request, name string) {
	fam, err := h.catalog.Family(r.Context(), name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	filter := strings.TrimSpace(r.URL.Query().Get(routepath.SampleFilterParam))
	samples, err := fam.Samples().List(r.Context(), filter)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	page, _ := localizer(w, r)
	title := templates.TOr(page.Loc, "smf.samples.title", "Samples of %s", fam.Name)
	writePage(w, r, page, title, http.StatusOK, templates.SamplesPage(page, templates.SamplesView{
		Family:  fam.Name,
		Filter:  filter,
		Samples: samples,
	}))
}

func queryArgs(r *http.Request) []string {
	var args []string
	for _, value := range r.URL.Query()[routepath.FamilyArgsParam] {
		if value = strings.TrimSpace(value); value != "" {
			args = append(args, value)
		}
	}
	return args
}

func dimensionUnavailable(fam *family.Family) error {
	return apperrors.WithMetadata(
		apperrors.CodeDimensionUnavailable,
		fmt.Sprintf("family %q has no dimension formula", fam.Name),
		map[string]string{"name": fam.Name},
	)
}
