package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/cli/completion_helper"
	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/logger"
	"github.com/admisiones-iti/admisiones/internal/regex"
	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/admisiones-iti/admisiones/internal/services"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/urfave/cli/v3"
)

type catalogService interface {
	NewSelection(ctx context.Context, mode selection.Mode) (*selection.State, error)
}

type submissionService interface {
	Submit(ctx context.Context, form *services.Form) (*services.Result, error)
	OnTransition(fn func(services.Transition)) (remove func())
}

// ApplyCommandFactory builds "postular", one intake session per invocation.
type ApplyCommandFactory struct {
	catalog   catalogService
	submitter submissionService
	in        io.Reader
	out       io.Writer
}

func NewApplyCommandFactory(catalog catalogService, submitter submissionService) *ApplyCommandFactory {
	return &ApplyCommandFactory{
		catalog:   catalog,
		submitter: submitter,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

func (f *ApplyCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "postular",
		Aliases: []string{"p"},
		Usage:   t.GetMessage("commands.apply.usage", 0, nil),
		Flags:   f.flags(t),
		Action: func(ctx context.Context, command *cli.Command) error {
			return f.run(ctx, command, t, cfg)
		},
		ShellComplete: completion_helper.ModalityFlagComplete,
	}
}

func (f *ApplyCommandFactory) flags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nombre-completo", Aliases: []string{"n"}, Usage: t.GetMessage("commands.apply.flag_full_name", 0, nil)},
		&cli.StringFlag{Name: "nombres", Usage: t.GetMessage("commands.apply.flag_given_names", 0, nil)},
		&cli.StringFlag{Name: "apellidos", Usage: t.GetMessage("commands.apply.flag_family_names", 0, nil)},
		&cli.StringFlag{Name: "cedula", Aliases: []string{"c"}, Usage: t.GetMessage("commands.apply.flag_cedula", 0, nil)},
		&cli.StringFlag{Name: "correo", Aliases: []string{"e"}, Usage: t.GetMessage("commands.apply.flag_email", 0, nil)},
		&cli.StringFlag{Name: "celular", Aliases: []string{"t"}, Usage: t.GetMessage("commands.apply.flag_phone", 0, nil)},
		&cli.StringFlag{Name: "modalidad", Aliases: []string{"m"}, Usage: t.GetMessage("commands.apply.flag_modality", 0, nil)},
		&cli.StringSliceFlag{Name: "carrera", Aliases: []string{"k"}, Usage: t.GetMessage("commands.apply.flag_program", 0, nil)},
		&cli.StringFlag{Name: "direccion", Usage: t.GetMessage("commands.apply.flag_address", 0, nil)},
		&cli.StringFlag{Name: "fecha-nacimiento", Usage: t.GetMessage("commands.apply.flag_birth_date", 0, nil)},
		&cli.StringFlag{Name: "periodo", Usage: t.GetMessage("commands.apply.flag_period", 0, nil)},
		&cli.BoolFlag{Name: "interactivo", Aliases: []string{"i"}, Usage: t.GetMessage("commands.apply.flag_interactive", 0, nil)},
	}
}

func (f *ApplyCommandFactory) run(ctx context.Context, command *cli.Command, t *i18n.Translations, cfg *config.Config) error {
	interactive := command.Bool("interactivo")

	sel, err := f.catalog.NewSelection(ctx, cfg.SelectionMode)
	if err != nil {
		return err
	}

	form := services.NewForm(sel)
	if err := fillFromFlags(command, form, t); err != nil {
		return err
	}

	s := &session{
		t:      t,
		cfg:    cfg,
		form:   form,
		prompt: ui.NewPrompter(f.in, f.out),
		out:    f.out,
	}

	if interactive {
		if err := s.complete(); err != nil {
			return s.cancelled(err)
		}
	}

	stopProgress := f.submitter.OnTransition(f.progress(ctx, t))
	defer stopProgress()

	for {
		result, err := f.submitter.Submit(ctx, form)
		if err == nil {
			s.printResult(result)
			return nil
		}

		if isPartial(err) {
			ui.HandleAppError(f.out, err, t)
			ui.PrintWarning(f.out, t.GetMessage("apply.partial_hint", 0, map[string]interface{}{
				"ID": partialCandidateID(err),
			}))
			return err
		}

		if !interactive {
			return err
		}

		ui.HandleAppError(f.out, err, t)
		if !s.prompt.Confirm(t.GetMessage("apply.retry", 0, nil)) {
			return err
		}

		s.forget(err)
		if err := s.complete(); err != nil {
			return s.cancelled(err)
		}
	}
}

// progress turns controller transitions into a spinner while the backend is busy.
func (f *ApplyCommandFactory) progress(ctx context.Context, t *i18n.Translations) func(services.Transition) {
	var spinner *ui.SmartSpinner
	return func(tr services.Transition) {
		logger.Debug(ctx, "submission transition", "from", tr.From, "to", tr.To)
		switch tr.To {
		case services.StateSubmitting:
			spinner = ui.NewSmartSpinner(f.out, t.GetMessage("apply.submitting", 0, nil))
			spinner.Start()
		case services.StateSuccess, services.StateFailed:
			if spinner != nil {
				spinner.Stop()
				spinner = nil
			}
		}
	}
}

func fillFromFlags(command *cli.Command, form *services.Form, t *i18n.Translations) error {
	form.FullName = command.String("nombre-completo")
	form.GivenNames = command.String("nombres")
	form.FamilyNames = command.String("apellidos")
	form.Cedula = command.String("cedula")
	form.Email = command.String("correo")
	form.Phone = command.String("celular")
	form.Address = command.String("direccion")

	if d := strings.TrimSpace(command.String("fecha-nacimiento")); d != "" {
		if !regex.ISODate.MatchString(d) {
			return fmt.Errorf("%s", t.GetMessage("apply.invalid_birth_date", 0, map[string]interface{}{"Value": d}))
		}
		form.BirthDate = d
	}

	if p := strings.TrimSpace(command.String("periodo")); p != "" {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%s", t.GetMessage("apply.invalid_period", 0, map[string]interface{}{"Value": p}))
		}
		form.AcademicPeriodID = id
	}

	if raw := command.String("modalidad"); raw != "" {
		m, ok := models.ParseModality(raw)
		if !ok {
			return appErrors.ErrUnknownModality.WithContext("modality", raw)
		}
		if err := form.Selection.SetModality(m); err != nil {
			return err
		}
	}

	for _, raw := range command.StringSlice("carrera") {
		id, err := models.ParseProgramID(raw)
		if err != nil {
			return fmt.Errorf("%s", t.GetMessage("commands.program.invalid_id", 0, map[string]interface{}{"Value": raw}))
		}
		if form.Selection.IsSelected(form.Selection.Active(), id) {
			continue
		}
		if err := form.Selection.ToggleActive(id); err != nil {
			return err
		}
	}

	return nil
}

func isPartial(err error) bool {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}
	partial, _ := appErr.Context["partial"].(bool)
	return partial
}

func partialCandidateID(err error) interface{} {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Context["candidate_id"]
	}
	return nil
}
