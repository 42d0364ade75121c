package models

import (
	"fmt"
	"strconv"
	"strings"
)

type Modality string

const (
	ModalityPresencial     Modality = "PRESENCIAL"
	ModalitySemipresencial Modality = "SEMIPRESENCIAL"
	ModalityHibrida        Modality = "HIBRIDA"
	ModalityOnline         Modality = "ON_LINE"
)

// Modalities returns the supported modalities in display order.
func Modalities() []Modality {
	return []Modality{
		ModalityPresencial,
		ModalitySemipresencial,
		ModalityHibrida,
		ModalityOnline,
	}
}

var modalityAliases = map[string]Modality{
	"presencial":     ModalityPresencial,
	"in-person":      ModalityPresencial,
	"semipresencial": ModalitySemipresencial,
	"blended":        ModalitySemipresencial,
	"hibrida":        ModalityHibrida,
	"híbrida":        ModalityHibrida,
	"hybrid":         ModalityHibrida,
	"on_line":        ModalityOnline,
	"online":         ModalityOnline,
	"en-linea":       ModalityOnline,
	"en línea":       ModalityOnline,
	"en linea":       ModalityOnline,
}

// ParseModality accepts the backend tag in any case plus a few friendly aliases.
func ParseModality(s string) (Modality, bool) {
	m, ok := modalityAliases[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

func (m Modality) Valid() bool {
	for _, known := range Modalities() {
		if m == known {
			return true
		}
	}
	return false
}

type (
	// Program is a career offered by the institute (a "carrera" on the backend).
	Program struct {
		ID          int64    `json:"id,omitempty"`
		Name        string   `json:"nombre"`
		Modality    Modality `json:"modalidad"`
		Description string   `json:"descripcion,omitempty"`
		Duration    string   `json:"duracion,omitempty"`
	}
)

// FilterByModality keeps catalog order.
func FilterByModality(catalog []Program, m Modality) []Program {
	filtered := make([]Program, 0, len(catalog))
	for _, p := range catalog {
		if p.Modality == m {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ParseProgramID accepts a positive decimal id, optionally written as "#12".
func ParseProgramID(raw string) (int64, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("program id must be positive: %d", id)
	}
	return id, nil
}
