package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "site.title", "%s | LMFDB")
	message.SetString(lang, "site.name", "LMFDB")
	message.SetString(lang, "nav.random", "Random object")

	// Families index
	message.SetString(lang, "smf.index.title", "Siegel modular forms")
	message.SetString(lang, "smf.index.heading", "Families of Siegel modular forms")
	message.SetString(lang, "smf.index.empty", "No families are available.")
	message.SetString(lang, "smf.column.family", "Family")
	message.SetString(lang, "smf.column.degree", "Degree")
	message.SetString(lang, "smf.column.dimensions", "Dimensions")
	message.SetString(lang, "smf.degree.unknown", "unknown")
	message.SetString(lang, "smf.dimension.available", "available")
	message.SetString(lang, "smf.dimension.none", "none")

	// Family page
	message.SetString(lang, "smf.family.degree", "Degree: %d")
	message.SetString(lang, "smf.family.dimension_heading", "Dimensions")
	message.SetString(lang, "smf.family.dimension_formula", "Formula %s with arguments %s")
	message.SetString(lang, "smf.family.dimension_missing", "No dimension formula is available for this family.")
	message.SetString(lang, "smf.family.dimension_prompt", "Enter an argument to compute dimensions.")
	message.SetString(lang, "smf.family.samples_link", "Browse samples")

	// Samples page
	message.SetString(lang, "smf.samples.title", "Samples of %s")
	message.SetString(lang, "smf.samples.count", "%d samples")
	message.SetString(lang, "smf.samples.empty", "No samples match.")
	message.SetString(lang, "smf.column.name", "Name")
	message.SetString(lang, "smf.column.weight", "Weight")
	message.SetString(lang, "smf.column.field", "Field")
	message.SetString(lang, "smf.column.eigenform", "Eigenform")
	message.SetString(lang, "smf.bool.yes", "yes")
	message.SetString(lang, "smf.bool.no", "no")

	// Errors
	message.SetString(lang, "web.error.title_not_found", "Page not found")
	message.SetString(lang, "web.error.title_bad_request", "Invalid request")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you requested does not exist.")
	message.SetString(lang, "web.error.message_server_error", "The server could not complete your request.")
	message.SetString(lang, "web.error.action_back", "Back to families")
}
