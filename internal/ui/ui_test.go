package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translations(t *testing.T) *i18n.Translations {
	t.Helper()
	color.NoColor = true
	trans, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)
	return trans
}

func TestErrorMessage(t *testing.T) {
	trans := translations(t)

	t.Run("traduce los campos faltantes", func(t *testing.T) {
		err := appErrors.ErrMissingFields.WithContext("missing", []string{"cedula", "celular"})

		msg := ErrorMessage(err, trans)

		assert.Equal(t, "Completá los campos obligatorios: Cédula, Celular", msg)
	})

	t.Run("usa el contexto como datos de la plantilla", func(t *testing.T) {
		err := appErrors.ErrProgramNotEligible.
			WithContext("program_id", int64(3)).
			WithContext("modality", "PRESENCIAL")

		assert.Equal(t, "La carrera #3 no se oferta en la modalidad PRESENCIAL", ErrorMessage(err, trans))
	})

	t.Run("errores comunes se muestran tal cual", func(t *testing.T) {
		assert.Equal(t, "boom", ErrorMessage(errors.New("boom"), trans))
	})

	t.Run("sin traducciones usa Error()", func(t *testing.T) {
		err := appErrors.ErrSubmissionInProgress
		assert.Equal(t, err.Error(), ErrorMessage(err, nil))
	})
}

func TestHandleAppError(t *testing.T) {
	trans := translations(t)

	t.Run("advertencia con detalle y sugerencia", func(t *testing.T) {
		var buf bytes.Buffer
		err := appErrors.ErrNoActiveModality.
			WithError(errors.New("sin modalidad")).
			WithSuggestion("admisiones carreras")

		HandleAppError(&buf, err, trans)

		out := buf.String()
		assert.Contains(t, out, "Elegí una modalidad")
		assert.Contains(t, out, "Detalle: sin modalidad")
		assert.Contains(t, out, "admisiones carreras")
	})

	t.Run("la sugerencia de los errores conocidos sale traducida", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, appErrors.ErrMissingFields.WithContext("missing", []string{"apellidos"}), trans)

		out := buf.String()
		assert.Contains(t, out, "Probá: Completá todos los campos y elegí al menos una carrera")
		assert.NotContains(t, out, "Complete all fields")
	})

	t.Run("sin traducciones omite la sugerencia por clave", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, appErrors.ErrInvalidCedula, nil)

		assert.NotContains(t, buf.String(), "suggestion.")
		assert.NotContains(t, buf.String(), "Try:")
	})

	t.Run("nil no imprime nada", func(t *testing.T) {
		var buf bytes.Buffer
		HandleAppError(&buf, nil, trans)
		assert.Empty(t, buf.String())
	})
}

func TestRenderPrograms(t *testing.T) {
	trans := translations(t)
	programs := []models.Program{
		{ID: 1, Name: "Desarrollo de Software", Modality: models.ModalityPresencial, Duration: "5 semestres"},
		{ID: 2, Name: "Redes", Modality: models.ModalityPresencial},
	}

	var buf bytes.Buffer
	RenderPrograms(&buf, programs, trans, func(id int64) bool { return id == 2 })

	out := buf.String()
	assert.Contains(t, out, "Desarrollo de Software")
	assert.Contains(t, out, "Presencial")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
}

func TestPrompter(t *testing.T) {
	t.Run("lee respuestas en orden", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("  Juan  \n\nsi\n"), io.Discard)

		first, err := p.Ask("nombre:")
		require.NoError(t, err)
		assert.Equal(t, "Juan", first)

		empty, err := p.Ask("dirección:")
		require.NoError(t, err)
		assert.Empty(t, empty)

		assert.True(t, p.Confirm("¿seguir?"))
	})

	t.Run("última línea sin salto", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("0991234567"), io.Discard)

		answer, err := p.Ask("celular:")
		require.NoError(t, err)
		assert.Equal(t, "0991234567", answer)

		_, err = p.Ask("otra:")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("confirmación negativa", func(t *testing.T) {
		p := NewPrompter(strings.NewReader("no\n"), io.Discard)
		assert.False(t, p.Confirm("¿seguir?"))
	})
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Juan Carlos Pérez", DisplayName("es", "  JUAN carlos   pérez "))
	assert.Equal(t, "Ana", DisplayName("xx-invalid-", "ana"))
}
