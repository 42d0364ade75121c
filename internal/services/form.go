package services

import (
	"strings"

	"github.com/admisiones-iti/admisiones/internal/selection"
)

// Form holds the raw inputs of one intake session.
type Form struct {
	// FullName is used only when GivenNames and FamilyNames are both empty.
	FullName    string
	GivenNames  string
	FamilyNames string
	Cedula      string
	Email       string
	Phone       string

	// Optional overrides of the configured defaults.
	Address          string
	BirthDate        string
	AcademicPeriodID int64

	Selection *selection.State
}

func NewForm(sel *selection.State) *Form {
	return &Form{Selection: sel}
}

// HasExplicitNames reports whether the names were typed in separate fields.
func (f *Form) HasExplicitNames() bool {
	return strings.TrimSpace(f.GivenNames) != "" || strings.TrimSpace(f.FamilyNames) != ""
}

// Names returns the given and family names that will be sent.
func (f *Form) Names() (given, family string) {
	if f.HasExplicitNames() {
		return collapseSpaces(f.GivenNames), collapseSpaces(f.FamilyNames)
	}
	return SplitFullName(f.FullName)
}

// Reset clears every field and the program selection.
func (f *Form) Reset() {
	sel := f.Selection
	*f = Form{Selection: sel}
	if sel != nil {
		sel.Reset()
	}
}
