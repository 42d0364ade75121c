package ui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName title-cases a name for summaries. The value sent to the backend is
// never changed.
func DisplayName(lang, name string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return cases.Title(tag).String(strings.Join(strings.Fields(name), " "))
}
