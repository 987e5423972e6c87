package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
const (
	CodeUnknown              = "UNKNOWN"
	CodeNotFound             = "NOT_FOUND"
	CodeFamilyNotFound       = "SMF_FAMILY_NOT_FOUND"
	CodeDimensionArgsInvalid = "SMF_DIMENSION_ARGS_INVALID"
	CodeSampleFilterInvalid  = "SMF_SAMPLE_FILTER_INVALID"
	CodeDimensionUnavailable = "SMF_DIMENSION_UNAVAILABLE"
)

var enUSMessages = map[Code]string{
	CodeUnknown:              "An unexpected error occurred.",
	CodeNotFound:             "The requested record was not found.",
	CodeFamilyNotFound:       `Siegel modular form family "{{.name}}" was not found in the database.`,
	CodeDimensionArgsInvalid: "Invalid dimension arguments: {{.reason}}",
	CodeSampleFilterInvalid:  "Invalid sample filter: {{.reason}}",
	CodeDimensionUnavailable: `No dimension formula is available for family "{{.name}}".`,
}
