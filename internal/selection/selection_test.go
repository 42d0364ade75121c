package selection

import (
	"errors"
	"testing"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []models.Program {
	return []models.Program{
		{ID: 1, Name: "Desarrollo de Software", Modality: models.ModalityPresencial},
		{ID: 2, Name: "Redes y Telecomunicaciones", Modality: models.ModalityPresencial},
		{ID: 3, Name: "Marketing Digital", Modality: models.ModalityOnline},
		{ID: 4, Name: "Contabilidad", Modality: models.ModalityHibrida},
		{ID: 5, Name: "Enfermería", Modality: models.ModalitySemipresencial},
	}
}

func TestSetModality(t *testing.T) {
	t.Run("should filter the catalog by modality", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)

		require.NoError(t, s.SetModality(models.ModalityPresencial))

		assert.Equal(t, models.ModalityPresencial, s.Active())
		assert.Len(t, s.Eligible(), 2)
		assert.Equal(t, int64(1), s.Eligible()[0].ID)
		assert.Equal(t, int64(2), s.Eligible()[1].ID)
	})

	t.Run("should yield an empty flatten with no selections", func(t *testing.T) {
		for _, mode := range SupportedModes() {
			s := New(testCatalog(), mode)
			require.NoError(t, s.SetModality(models.ModalityOnline))
			assert.Empty(t, s.Flatten())
		}
	})

	t.Run("should reject unknown modalities", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)

		err := s.SetModality(models.Modality("A_DISTANCIA"))

		assert.True(t, errors.Is(err, appErrors.ErrUnknownModality))
		assert.Equal(t, models.Modality(""), s.Active())
	})

	t.Run("single mode clears selections when the modality changes", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)
		require.NoError(t, s.SetModality(models.ModalityPresencial))
		require.NoError(t, s.ToggleActive(1))

		require.NoError(t, s.SetModality(models.ModalityOnline))

		assert.Empty(t, s.Flatten())
	})

	t.Run("single mode keeps selections when the same modality is set again", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)
		require.NoError(t, s.SetModality(models.ModalityPresencial))
		require.NoError(t, s.ToggleActive(2))

		require.NoError(t, s.SetModality(models.ModalityPresencial))

		assert.Equal(t, []int64{2}, s.Flatten())
	})

	t.Run("scoped mode retains selections across modality switches", func(t *testing.T) {
		s := New(testCatalog(), ModeScoped)
		require.NoError(t, s.SetModality(models.ModalityPresencial))
		require.NoError(t, s.ToggleActive(1))
		require.NoError(t, s.SetModality(models.ModalityOnline))
		require.NoError(t, s.ToggleActive(3))

		assert.Equal(t, []int64{1, 3}, s.Flatten())
		assert.Equal(t, []int64{1}, s.Selected(models.ModalityPresencial))
		assert.Equal(t, []int64{3}, s.Selected(models.ModalityOnline))
	})

	t.Run("invalid mode falls back to single", func(t *testing.T) {
		s := New(testCatalog(), Mode("multi"))
		assert.Equal(t, ModeSingle, s.Mode())
	})
}

func TestToggle(t *testing.T) {
	t.Run("toggling twice restores the original set", func(t *testing.T) {
		s := New(testCatalog(), ModeScoped)
		s.Toggle(models.ModalityPresencial, 1)
		before := s.Selected(models.ModalityPresencial)

		s.Toggle(models.ModalityPresencial, 2)
		s.Toggle(models.ModalityPresencial, 2)

		assert.Equal(t, before, s.Selected(models.ModalityPresencial))
		assert.Equal(t, []int64{1}, s.Flatten())
	})

	t.Run("toggling twice on an empty set leaves it empty", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)
		s.Toggle(models.ModalityHibrida, 4)
		s.Toggle(models.ModalityHibrida, 4)

		assert.Empty(t, s.Selected(models.ModalityHibrida))
		assert.False(t, s.IsSelected(models.ModalityHibrida, 4))
	})

	t.Run("toggling leaves other modalities untouched", func(t *testing.T) {
		s := New(testCatalog(), ModeScoped)
		s.Toggle(models.ModalityOnline, 3)
		s.Toggle(models.ModalityPresencial, 1)
		s.Toggle(models.ModalityPresencial, 1)

		assert.Equal(t, []int64{3}, s.Selected(models.ModalityOnline))
	})

	t.Run("flatten removes duplicates across modalities", func(t *testing.T) {
		s := New(testCatalog(), ModeScoped)
		s.Toggle(models.ModalityOnline, 7)
		s.Toggle(models.ModalityPresencial, 7)
		s.Toggle(models.ModalityPresencial, 2)

		assert.Equal(t, []int64{2, 7}, s.Flatten())
		assert.Equal(t, 2, s.Count())
	})
}

func TestToggleActive(t *testing.T) {
	t.Run("should require an active modality", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)

		err := s.ToggleActive(1)

		assert.True(t, errors.Is(err, appErrors.ErrNoActiveModality))
	})

	t.Run("should reject programs from another modality", func(t *testing.T) {
		s := New(testCatalog(), ModeSingle)
		require.NoError(t, s.SetModality(models.ModalityPresencial))

		err := s.ToggleActive(3)

		assert.True(t, errors.Is(err, appErrors.ErrProgramNotEligible))
		assert.Empty(t, s.Flatten())
	})
}

func TestProgramsAndReset(t *testing.T) {
	s := New(testCatalog(), ModeScoped)
	require.NoError(t, s.SetModality(models.ModalityPresencial))
	require.NoError(t, s.ToggleActive(2))
	s.Toggle(models.ModalityOnline, 99)

	programs := s.Programs()
	require.Len(t, programs, 2)
	assert.Equal(t, "Redes y Telecomunicaciones", programs[0].Name)
	assert.Equal(t, "#99", programs[1].Name)

	s.Reset()
	assert.Empty(t, s.Flatten())
	assert.Equal(t, models.Modality(""), s.Active())
	assert.Empty(t, s.Eligible())
}
