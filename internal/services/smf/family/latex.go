package family

import "strings"

var texEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
	`%`, `\%`,
)

// Texttt renders s in typewriter font with TeX special characters escaped.
func Texttt(s string) string {
	return `\texttt{` + texEscaper.Replace(s) + `}`
}
