// Package routepath stores canonical HTTP paths for the web surface.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                = "/"
	Health              = "/up"
	Random              = "/random"
	SiegelPrefix        = "/ModularForm/GSp/Q/"
	SiegelIndex         = SiegelPrefix
	SiegelIndexNoSlash  = "/ModularForm/GSp/Q"
	SiegelIndexPattern  = SiegelPrefix + "{$}"
	SiegelFamilyPattern = SiegelPrefix + "{rest...}"
	SamplesSegment      = "samples"
	SiegelFamilySamples = "/" + SamplesSegment
	FamilyArgsParam     = "args"
	SampleFilterParam   = "filter"
)

// Family returns the page path for a family.
func Family(name string) string {
	return SiegelPrefix + escapeSegment(name)
}

// FamilySamples returns the samples page path for a family.
func FamilySamples(name string) string {
	return Family(name) + SiegelFamilySamples
}

// FamilyDimension returns the family page path evaluating args.
func FamilyDimension(name string, args ...string) string {
	path := Family(name)
	if len(args) == 0 {
		return path
	}
	values := url.Values{}
	for _, arg := range args {
		values.Add(FamilyArgsParam, arg)
	}
	return path + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
