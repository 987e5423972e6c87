package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

const (
	errorTitleNotFoundKey    = "web.error.title_not_found"
	errorTitleBadRequestKey  = "web.error.title_bad_request"
	errorTitleServerErrKey   = "web.error.title_server_error"
	errorMessageNotFoundKey  = "web.error.message_not_found"
	errorMessageServerErrKey = "web.error.message_server_error"
	errorActionBackKey       = "web.error.action_back"
)

// ErrorTitle returns the page title for an error status.
func ErrorTitle(statusCode int, loc Localizer) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusNotFound:
		return TOr(loc, errorTitleNotFoundKey, "Page not found")
	case http.StatusBadRequest:
		return TOr(loc, errorTitleBadRequestKey, "Invalid request")
	default:
		return TOr(loc, errorTitleServerErrKey, "Something went wrong")
	}
}

// DefaultErrorMessage returns the generic message for an error status.
func DefaultErrorMessage(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return TOr(loc, errorMessageNotFoundKey, "The page you requested does not exist.")
	}
	return TOr(loc, errorMessageServerErrKey, "The server could not complete your request.")
}

// ErrorPage renders an error heading and message.
func ErrorPage(page PageContext, statusCode int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.element("h1", "", ErrorTitle(statusCode, page.Loc))
		h.element("p", "error", message)
		h.raw(`<p>`)
		h.link(routepath.SiegelIndex, TOr(page.Loc, errorActionBackKey, "Back to families"))
		h.raw(`</p>`)
		return h.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusNotFound, http.StatusBadRequest:
		return statusCode
	default:
		return http.StatusInternalServerError
	}
}
