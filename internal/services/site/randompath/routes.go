// Package randompath picks the content area behind the site-wide /random link.
//
// The beta and stable lists are kept as literal configuration. They are
// curated by hand and are not derived from one another.
package randompath

import (
	"math/rand/v2"
	"sync"

	"github.com/cscmnu/lmfdb/internal/random"
)

// Suffix is appended to the chosen prefix.
const Suffix = "random"

var betaRoutes = []string{
	"ModularForm/GL2/Q/holomorphic/",
	"ModularForm/GL2/Q/Maass/",
	"ModularForm/GL2/TotallyReal/",
	"ModularForm/GL2/ImaginaryQuadratic/",
	"ModularForm/GSp/Q/",
	"EllipticCurve/Q/",
	"EllipticCurve/",
	"Genus2Curve/Q/",
	"HigherGenus/C/Aut/",
	"Variety/Abelian/Fq/",
	"Belyi/",
	"NumberField/",
	"LocalNumberField/",
	"Character/Dirichlet/",
	"ArtinRepresentation/",
	"Motive/Hypergeometric/Q/",
	"GaloisGroup/",
	"SatoTateGroup/",
	"Lattice/",
}

var stableRoutes = []string{
	"ModularForm/GL2/Q/holomorphic/",
	"ModularForm/GL2/Q/Maass/",
	"ModularForm/GL2/TotallyReal/",
	"ModularForm/GL2/ImaginaryQuadratic/",
	"ModularForm/GSp/Q/",
	"EllipticCurve/Q/",
	"EllipticCurve/",
	"Genus2Curve/Q/",
	"HigherGenus/C/Aut/",
	"Variety/Abelian/Fq/",
	"NumberField/",
	"LocalNumberField/",
	"Character/Dirichlet/",
	"ArtinRepresentation/",
	"GaloisGroup/",
	"SatoTateGroup/",
}

// Routes returns a copy of the prefix list active for the beta flag.
func Routes(beta bool) []string {
	src := stableRoutes
	if beta {
		src = betaRoutes
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Selector draws prefixes uniformly. It is safe for concurrent use.
type Selector struct {
	mu     sync.Mutex
	rng    *rand.Rand
	beta   []string
	stable []string
}

// NewSelector returns a selector over the built-in lists seeded from crypto/rand.
func NewSelector() (*Selector, error) {
	rng, err := random.NewRand()
	if err != nil {
		return nil, err
	}
	return NewSelectorWith(rng, betaRoutes, stableRoutes), nil
}

// NewSelectorWith returns a selector over explicit lists and generator.
func NewSelectorWith(rng *rand.Rand, beta, stable []string) *Selector {
	return &Selector{rng: rng, beta: beta, stable: stable}
}

// Pick returns one prefix of the active list followed by Suffix. It panics
// when the active list is empty, which is a configuration error.
func (s *Selector) Pick(beta bool) string {
	routes := s.stable
	if beta {
		routes = s.beta
	}
	if len(routes) == 0 {
		panic("randompath: empty route list")
	}
	s.mu.Lock()
	// uniform over [0, len-1], both ends inclusive
	i := s.rng.IntN(len(routes))
	s.mu.Unlock()
	return routes[i] + Suffix
}
