// Package web serves the Siegel modular form family pages and the site-wide
// random redirect.
package web

import (
	"context"
	"errors"
	"net/http"

	"github.com/cscmnu/lmfdb/internal/services/site/randompath"
	"github.com/cscmnu/lmfdb/internal/services/smf/family"
	routepath "github.com/cscmnu/lmfdb/internal/services/web/routepath"
)

// FamilyCatalog loads families for rendering.
type FamilyCatalog interface {
	Family(ctx context.Context, name string) (*family.Family, error)
	Families(ctx context.Context) ([]*family.Family, error)
}

// RoutePicker chooses a random content route.
type RoutePicker interface {
	Pick(beta bool) string
}

// Config wires handler dependencies.
type Config struct {
	Catalog FamilyCatalog
	Random  RoutePicker
	// Beta widens the random route list to beta-only areas.
	Beta bool
}

type handler struct {
	catalog FamilyCatalog
	random  RoutePicker
	beta    bool
}

// NewHandler builds the root HTTP handler.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("family catalog is required")
	}
	random := cfg.Random
	if random == nil {
		selector, err := randompath.NewSelector()
		if err != nil {
			return nil, err
		}
		random = selector
	}
	h := &handler{catalog: cfg.Catalog, random: random, beta: cfg.Beta}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Health, h.handleHealth)
	mux.HandleFunc("GET "+routepath.Random, h.handleRandom)
	mux.HandleFunc("GET "+routepath.SiegelIndexNoSlash, h.handleIndexRedirect)
	mux.HandleFunc("GET "+routepath.SiegelIndexPattern, h.handleFamilies)
	mux.HandleFunc("GET "+routepath.SiegelFamilyPattern, h.handleFamilyRoutes)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
	return mux, nil
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.Root+h.random.Pick(h.beta), http.StatusFound)
}

func (h *handler) handleIndexRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.SiegelIndex, http.StatusMovedPermanently)
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorStatus(w, r, http.StatusNotFound)
}
