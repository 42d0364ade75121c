package ui

import (
	"fmt"
	"io"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/olekukonko/tablewriter"
)

// RenderPrograms prints the catalog as a numbered table. The number in the first
// column is the program id, which is what the interactive picker expects. When
// selected is not nil a mark column shows the current picks.
func RenderPrograms(w io.Writer, programs []models.Program, t *i18n.Translations, selected func(id int64) bool) {
	header := []string{
		t.GetMessage("table.number", 0, nil),
		t.GetMessage("table.program", 0, nil),
		t.GetMessage("table.modality", 0, nil),
		t.GetMessage("table.duration", 0, nil),
	}
	if selected != nil {
		header = append([]string{""}, header...)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, p := range programs {
		row := []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			ModalityLabel(p.Modality, t),
			p.Duration,
		}
		if selected != nil {
			mark := " "
			if selected(p.ID) {
				mark = "x"
			}
			row = append([]string{"[" + mark + "]"}, row...)
		}
		table.Append(row)
	}
	table.Render()
}

// RenderProgram prints a single program as key/value lines.
func RenderProgram(w io.Writer, p models.Program, t *i18n.Translations) {
	PrintSectionBanner(w, p.Name)
	PrintKeyValue(w, t.GetMessage("table.number", 0, nil), fmt.Sprintf("%d", p.ID))
	PrintKeyValue(w, t.GetMessage("table.modality", 0, nil), ModalityLabel(p.Modality, t))
	if p.Duration != "" {
		PrintKeyValue(w, t.GetMessage("table.duration", 0, nil), p.Duration)
	}
	if p.Description != "" {
		PrintKeyValue(w, t.GetMessage("table.details", 0, nil), p.Description)
	}
}

func ModalityLabel(m models.Modality, t *i18n.Translations) string {
	if !m.Valid() {
		return string(m)
	}
	return t.GetMessage("modality."+string(m), 0, nil)
}
