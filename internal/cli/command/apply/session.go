package apply

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/services"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/admisiones-iti/admisiones/internal/validation"
)

var errDeclined = errors.New("submission declined")

// session drives the interactive prompts of one form.
type session struct {
	t      *i18n.Translations
	cfg    *config.Config
	form   *services.Form
	prompt *ui.Prompter
	out    io.Writer
}

// complete asks for whatever is still empty, lets the user pick programs and
// confirms the summary.
func (s *session) complete() error {
	if err := s.completeNames(); err != nil {
		return err
	}
	if strings.TrimSpace(s.form.Cedula) == "" {
		if err := s.ask(&s.form.Cedula, "prompt.cedula"); err != nil {
			return err
		}
	}
	if strings.TrimSpace(s.form.Email) == "" {
		if err := s.ask(&s.form.Email, "prompt.email"); err != nil {
			return err
		}
	}
	if strings.TrimSpace(s.form.Phone) == "" {
		if err := s.ask(&s.form.Phone, s.phoneLabel()); err != nil {
			return err
		}
	}

	if s.form.Selection.Active() == "" {
		if err := s.chooseModality(); err != nil {
			return err
		}
	}
	if err := s.pickPrograms(); err != nil {
		return err
	}

	s.printSummary()
	if !s.prompt.Confirm(s.t.GetMessage("prompt.confirm", 0, nil)) {
		return errDeclined
	}
	return nil
}

// completeNames asks for the full name, or for the missing half when one of the
// separate name fields was given.
func (s *session) completeNames() error {
	if !s.form.HasExplicitNames() {
		if strings.TrimSpace(s.form.FullName) == "" {
			return s.ask(&s.form.FullName, "prompt.full_name")
		}
		return nil
	}
	if strings.TrimSpace(s.form.GivenNames) == "" {
		if err := s.ask(&s.form.GivenNames, "prompt.given_names"); err != nil {
			return err
		}
	}
	if strings.TrimSpace(s.form.FamilyNames) == "" {
		if err := s.ask(&s.form.FamilyNames, "prompt.family_names"); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) ask(field *string, messageID string) error {
	answer, err := s.prompt.Ask(s.t.GetMessage(messageID, 0, map[string]interface{}{
		"CountryCode": s.cfg.CountryCode,
	}))
	if err != nil {
		return err
	}
	*field = answer
	return nil
}

func (s *session) phoneLabel() string {
	if s.cfg.PhoneFormat == validation.PhoneInternational {
		return "prompt.phone_international"
	}
	return "prompt.phone_local"
}

func (s *session) chooseModality() error {
	modalities := models.Modalities()
	ui.PrintInfo(s.out, s.t.GetMessage("apply.modalities_title", 0, nil))
	for i, m := range modalities {
		_, _ = fmt.Fprintf(s.out, "   %d) %s\n", i+1, ui.ModalityLabel(m, s.t))
	}

	for {
		answer, err := s.prompt.Ask(s.t.GetMessage("prompt.modality", 0, nil))
		if err != nil {
			return err
		}

		m, ok := models.ParseModality(answer)
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(modalities) {
			m, ok = modalities[n-1], true
		}
		if !ok {
			ui.PrintWarning(s.out, s.t.GetMessage("apply.invalid_choice", 0, map[string]interface{}{"Value": answer}))
			continue
		}

		return s.form.Selection.SetModality(m)
	}
}

func (s *session) pickPrograms() error {
	sel := s.form.Selection
	for {
		eligible := sel.Eligible()
		if len(eligible) == 0 {
			ui.PrintWarning(s.out, s.t.GetMessage("apply.no_programs_in_modality", 0, map[string]interface{}{
				"Modality": ui.ModalityLabel(sel.Active(), s.t),
			}))
		} else {
			active := sel.Active()
			ui.RenderPrograms(s.out, eligible, s.t, func(id int64) bool {
				return sel.IsSelected(active, id)
			})
		}

		if other := sel.Count() - len(sel.Selected(sel.Active())); other > 0 {
			ui.PrintInfo(s.out, s.t.GetMessage("apply.selected_elsewhere", other, map[string]interface{}{"Count": other}))
		}

		answer, err := s.prompt.Ask(s.t.GetMessage("prompt.program_picker", 0, nil))
		if err != nil {
			return err
		}

		switch strings.ToLower(answer) {
		case "":
			if sel.Count() > 0 {
				return nil
			}
			ui.PrintWarning(s.out, s.t.GetMessage("apply.pick_at_least_one", 0, nil))
		case "m":
			if err := s.chooseModality(); err != nil {
				return err
			}
		default:
			id, err := models.ParseProgramID(answer)
			if err != nil {
				ui.PrintWarning(s.out, s.t.GetMessage("apply.invalid_choice", 0, map[string]interface{}{"Value": answer}))
				continue
			}
			if err := sel.ToggleActive(id); err != nil {
				ui.HandleAppError(s.out, err, s.t)
			}
		}
	}
}

func (s *session) printSummary() {
	given, family := s.form.Names()
	lang := s.t.Language()

	ui.PrintSectionBanner(s.out, s.t.GetMessage("apply.summary_title", 0, nil))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.nombres", 0, nil), ui.DisplayName(lang, given))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.apellidos", 0, nil), ui.DisplayName(lang, family))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.cedula", 0, nil), strings.TrimSpace(s.form.Cedula))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.correo", 0, nil), strings.TrimSpace(s.form.Email))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.celular", 0, nil), strings.TrimSpace(s.form.Phone))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.modalidad", 0, nil), ui.ModalityLabel(s.form.Selection.Active(), s.t))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.carreras", 0, nil), programNames(s.form.Selection.Programs()))
}

func (s *session) printResult(result *services.Result) {
	name := strings.TrimSpace(result.Candidate.GivenNames + " " + result.Candidate.FamilyNames)
	ui.PrintSuccess(s.out, s.t.GetMessage("apply.success", 0, map[string]interface{}{
		"Name": ui.DisplayName(s.t.Language(), name),
		"ID":   result.CandidateID,
	}))
	ui.PrintKeyValue(s.out, s.t.GetMessage("field.carreras", 0, nil), joinIDs(result.ProgramIDs))
}

// forget clears the fields a validation error points at so complete asks again.
func (s *session) forget(err error) {
	switch {
	case errors.Is(err, appErrors.ErrInvalidCedula):
		s.form.Cedula = ""
	case errors.Is(err, appErrors.ErrInvalidPhone):
		s.form.Phone = ""
	}
}

func (s *session) cancelled(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, errDeclined) {
		ui.PrintWarning(s.out, s.t.GetMessage("apply.cancelled", 0, nil))
		return nil
	}
	return err
}

func programNames(programs []models.Program) string {
	names := make([]string, 0, len(programs))
	for _, p := range programs {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func joinIDs(ids []int64) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, "#"+strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ", ")
}
