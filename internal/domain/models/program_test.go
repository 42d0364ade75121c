package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModality(t *testing.T) {
	tests := []struct {
		input string
		want  Modality
		ok    bool
	}{
		{"PRESENCIAL", ModalityPresencial, true},
		{" presencial ", ModalityPresencial, true},
		{"Semipresencial", ModalitySemipresencial, true},
		{"híbrida", ModalityHibrida, true},
		{"hybrid", ModalityHibrida, true},
		{"ON_LINE", ModalityOnline, true},
		{"en línea", ModalityOnline, true},
		{"distancia", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseModality(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModalityValid(t *testing.T) {
	for _, m := range Modalities() {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, Modality("online").Valid())
}

func TestFilterByModality(t *testing.T) {
	catalog := []Program{
		{ID: 1, Modality: ModalityPresencial},
		{ID: 2, Modality: ModalityOnline},
		{ID: 3, Modality: ModalityPresencial},
	}

	got := FilterByModality(catalog, ModalityPresencial)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Empty(t, FilterByModality(catalog, ModalityHibrida))
}

func TestParseProgramID(t *testing.T) {
	id, err := ParseProgramID(" #12 ")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := ParseProgramID(raw)
		assert.Error(t, err, raw)
	}
}
