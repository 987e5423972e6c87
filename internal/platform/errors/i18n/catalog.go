// Package i18n resolves user-facing error messages by locale.
package i18n

import (
	"bytes"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (a string to avoid an import cycle
// with the errors package).
type Code = string

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   language.Tag
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[language.Tag]*Catalog{
		language.AmericanEnglish:     NewCatalog(language.AmericanEnglish, enUSMessages),
		language.BrazilianPortuguese: NewCatalog(language.BrazilianPortuguese, ptBRMessages),
	}
)

// NewCatalog creates a catalog for locale.
func NewCatalog(locale language.Tag, messages map[Code]string) *Catalog {
	copied := make(map[Code]string, len(messages))
	for code, msg := range messages {
		copied[code] = msg
	}
	return &Catalog{locale: locale, messages: copied}
}

// RegisterCatalog installs or replaces the catalog for its locale.
func RegisterCatalog(c *Catalog) {
	if c == nil {
		return
	}
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[c.locale] = c
}

// GetCatalog returns the best catalog for tag, falling back to en-US.
func GetCatalog(tag language.Tag) *Catalog {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	supported := make([]language.Tag, 0, len(catalogs)+1)
	supported = append(supported, language.AmericanEnglish)
	for t := range catalogs {
		if t != language.AmericanEnglish {
			supported = append(supported, t)
		}
	}
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return catalogs[language.AmericanEnglish]
	}
	return catalogs[supported[index]]
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() language.Tag {
	return c.locale
}

// Format renders the message template for code with metadata. It falls back
// to the code itself when no template is known and to the raw template when
// rendering fails.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	tmpl, ok := c.messages[code]
	if !ok {
		return code
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}
