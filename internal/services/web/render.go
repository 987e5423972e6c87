package web

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
	errori18n "github.com/cscmnu/lmfdb/internal/platform/errors/i18n"
	webi18n "github.com/cscmnu/lmfdb/internal/services/web/i18n"
	"github.com/cscmnu/lmfdb/internal/services/web/templates"
	"golang.org/x/text/language"
)

// localizer resolves the request language, persisting an explicit choice.
func localizer(w http.ResponseWriter, r *http.Request) (templates.PageContext, language.Tag) {
	tag, persist := webi18n.ResolveTag(r)
	if persist {
		webi18n.SetLanguageCookie(w, tag)
	}
	return templates.PageContext{
		Lang:         tag.String(),
		Loc:          webi18n.Printer(tag),
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}, tag
}

func writePage(w http.ResponseWriter, r *http.Request, page templates.PageContext, title string, status int, body templ.Component) {
	templ.Handler(templates.Page(page, title, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

// renderError maps err to a status and renders the error page. Domain errors
// show their localized message; anything else is logged and hidden.
func (h *handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	page, tag := localizer(w, r)
	status := apperrors.HTTPStatus(err)
	message := templates.DefaultErrorMessage(status, page.Loc)
	if domainErr, ok := apperrors.As(err); ok && status < http.StatusInternalServerError {
		message = errori18n.GetCatalog(tag).Format(string(domainErr.Code), domainErr.Metadata)
	} else {
		log.Printf("web %s %s: %v", r.Method, r.URL.Path, err)
	}
	writePage(w, r, page, templates.ErrorTitle(status, page.Loc), status, templates.ErrorPage(page, status, message))
}

func (h *handler) renderErrorStatus(w http.ResponseWriter, r *http.Request, status int) {
	page, _ := localizer(w, r)
	message := templates.DefaultErrorMessage(status, page.Loc)
	writePage(w, r, page, templates.ErrorTitle(status, page.Loc), status, templates.ErrorPage(page, status, message))
}
