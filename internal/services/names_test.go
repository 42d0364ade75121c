package services

import (
	"testing"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		input  string
		given  string
		family string
	}{
		{"Juan Carlos Perez Mora", "Juan Carlos", "Perez Mora"},
		{"Juan Carlos Perez", "Juan Carlos", "Perez"},
		{"Juan Perez", "Juan", "Perez"},
		{"Juan", "Juan", ""},
		{"  Juan   Perez  ", "Juan", "Perez"},
		{"Ana María de la Torre", "Ana María", "de la"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			given, family := SplitFullName(tt.input)
			assert.Equal(t, tt.given, given)
			assert.Equal(t, tt.family, family)
		})
	}
}

func TestForm_Names(t *testing.T) {
	form := NewForm(nil)
	form.FullName = "Juan Carlos Perez Mora"

	given, family := form.Names()
	assert.Equal(t, "Juan Carlos", given)
	assert.Equal(t, "Perez Mora", family)

	form.GivenNames = "Ana María"
	form.FamilyNames = "de la Torre"
	given, family = form.Names()
	assert.Equal(t, "Ana María", given)
	assert.Equal(t, "de la Torre", family)
}

func TestForm_Reset(t *testing.T) {
	sel := selection.New(testCatalog, selection.ModeScoped)
	require.NoError(t, sel.SetModality(models.ModalityOnline))
	require.NoError(t, sel.ToggleActive(3))

	form := NewForm(sel)
	form.FullName = "Juan Perez"
	form.Address = "Quito"
	form.AcademicPeriodID = 2

	form.Reset()

	assert.Equal(t, Form{Selection: sel}, *form)
	assert.Zero(t, sel.Count())
	assert.Empty(t, sel.Eligible())
}
