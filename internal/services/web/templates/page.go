// Package templates renders the HTML pages of the web surface.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// Number formats n with the page locale's digit grouping.
func (p PageContext) Number(n int64) string {
	if p.Loc == nil {
		return T(nil, "%d", n)
	}
	return p.Loc.Sprintf("%d", n)
}

// Layout wraps the children in the site shell.
func Layout(page PageContext, title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="`)
		h.text(page.Lang)
		h.raw(`"><head><meta charset="utf-8"><title>`)
		h.text(TOr(page.Loc, "site.title", "%s | LMFDB", title))
		h.raw(`</title></head><body><header><nav>`)
		h.link(routepath.Root, TOr(page.Loc, "site.name", "LMFDB"))
		h.raw(" ")
		h.link(routepath.SiegelIndex, TOr(page.Loc, "smf.index.title", "Siegel modular forms"))
		h.raw(" ")
		h.link(routepath.Random, TOr(page.Loc, "nav.random", "Random object"))
		h.raw(`</nav></header><main>`)
		if h.err != nil {
			return h.err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// Page renders body inside the site layout.
func Page(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(page, title).Render(templ.WithChildren(ctx, body), w)
	})
}
