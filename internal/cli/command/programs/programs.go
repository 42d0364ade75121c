package programs

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/admisiones-iti/admisiones/internal/cli/completion_helper"
	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/domain/models"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/services"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/urfave/cli/v3"
)

type catalogService interface {
	Programs(ctx context.Context) ([]models.Program, error)
	ByModality(ctx context.Context, m models.Modality) ([]models.Program, error)
	Program(ctx context.Context, id int64) (*models.Program, error)
	CreateProgram(ctx context.Context, program models.Program, withStructure bool) (*models.Program, string, error)
	UpdateProgram(ctx context.Context, id int64, changes services.ProgramChanges) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int64) error
}

// ListCommandFactory builds "carreras".
type ListCommandFactory struct {
	catalog catalogService
	out     io.Writer
}

func NewListCommandFactory(catalog catalogService) *ListCommandFactory {
	return &ListCommandFactory{catalog: catalog, out: os.Stdout}
}

func (f *ListCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "carreras",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("commands.programs.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "modalidad",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("commands.programs.flag_modality", 0, nil),
			},
		},
		ShellComplete: completion_helper.ModalityFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			var (
				programs []models.Program
				err      error
			)

			if raw := command.String("modalidad"); raw != "" {
				m, ok := models.ParseModality(raw)
				if !ok {
					return appErrors.ErrUnknownModality.WithContext("modality", raw)
				}
				programs, err = f.catalog.ByModality(ctx, m)
			} else {
				programs, err = f.catalog.Programs(ctx)
			}
			if err != nil {
				return err
			}

			if len(programs) == 0 {
				ui.PrintWarning(f.out, t.GetMessage("catalog.empty", 0, nil))
				return nil
			}

			ui.RenderPrograms(f.out, programs, t, nil)
			return nil
		},
	}
}

// ShowCommandFactory builds "carrera <id>" and the catalog maintenance
// subcommands under it.
type ShowCommandFactory struct {
	catalog catalogService
	in      io.Reader
	out     io.Writer
}

func NewShowCommandFactory(catalog catalogService) *ShowCommandFactory {
	return &ShowCommandFactory{catalog: catalog, in: os.Stdin, out: os.Stdout}
}

func (f *ShowCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "carrera",
		Usage:     t.GetMessage("commands.program.usage", 0, nil),
		ArgsUsage: "<id>",
		Commands: []*cli.Command{
			f.newCreateCommand(t),
			f.newUpdateCommand(t),
			f.newDeleteCommand(t),
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			id, err := programIDArg(command, t)
			if err != nil {
				return err
			}

			program, err := f.catalog.Program(ctx, id)
			if err != nil {
				return err
			}

			ui.RenderProgram(f.out, *program, t)
			return nil
		},
	}
}

func programIDArg(command *cli.Command, t *i18n.Translations) (int64, error) {
	id, err := models.ParseProgramID(command.Args().First())
	if err != nil {
		return 0, fmt.Errorf("%s", t.GetMessage("commands.program.invalid_id", 0, map[string]interface{}{
			"Value": command.Args().First(),
		}))
	}
	return id, nil
}

// modalityFlag parses --modalidad; empty means not given.
func modalityFlag(command *cli.Command) (models.Modality, error) {
	raw := command.String("modalidad")
	if raw == "" {
		return "", nil
	}
	m, ok := models.ParseModality(raw)
	if !ok {
		return "", appErrors.ErrUnknownModality.WithContext("modality", raw)
	}
	return m, nil
}
