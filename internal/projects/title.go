package projects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var slugSeparators = strings.NewReplacer("-", " ", "_", " ")

// FormatTitle turns a repository slug into a display title:
// "my-cool_project" => "My Cool Project". Words already containing
// capitals are left alone, so the function is idempotent on its own
// output.
func FormatTitle(name string) string {
	// cases.Caser is stateful, so build one per call.
	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(slugSeparators.Replace(name))
}
