package programs

import (
	"context"

	"github.com/admisiones-iti/admisiones/internal/cli/completion_helper"
	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/services"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/urfave/cli/v3"
)

func programFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nombre", Aliases: []string{"n"}, Usage: t.GetMessage("commands.program.flag_name", 0, nil)},
		&cli.StringFlag{Name: "modalidad", Aliases: []string{"m"}, Usage: t.GetMessage("commands.programs.flag_modality", 0, nil)},
		&cli.StringFlag{Name: "descripcion", Usage: t.GetMessage("commands.program.flag_description", 0, nil)},
		&cli.StringFlag{Name: "duracion", Usage: t.GetMessage("commands.program.flag_duration", 0, nil)},
	}
}

func (f *ShowCommandFactory) newCreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "crear",
		Usage: t.GetMessage("commands.program.create_usage", 0, nil),
		Flags: append(programFlags(t),
			&cli.BoolFlag{Name: "estructura-completa", Usage: t.GetMessage("commands.program.flag_structure", 0, nil)},
		),
		ShellComplete: completion_helper.ModalityFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			m, err := modalityFlag(command)
			if err != nil {
				return err
			}

			program := models.Program{
				Name:        command.String("nombre"),
				Modality:    m,
				Description: command.String("descripcion"),
				Duration:    command.String("duracion"),
			}

			created, message, err := f.catalog.CreateProgram(ctx, program, command.Bool("estructura-completa"))
			if err != nil {
				return err
			}

			if created == nil {
				ui.PrintSuccess(f.out, t.GetMessage("catalog.created_with_structure", 0, map[string]interface{}{
					"Name":    program.Name,
					"Message": message,
				}))
				return nil
			}

			ui.PrintSuccess(f.out, t.GetMessage("catalog.created", 0, map[string]interface{}{
				"ID":   created.ID,
				"Name": created.Name,
			}))
			ui.RenderProgram(f.out, *created, t)
			return nil
		},
	}
}

func (f *ShowCommandFactory) newUpdateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:          "actualizar",
		Usage:         t.GetMessage("commands.program.update_usage", 0, nil),
		ArgsUsage:     "<id>",
		Flags:         programFlags(t),
		ShellComplete: completion_helper.ModalityFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			id, err := programIDArg(command, t)
			if err != nil {
				return err
			}
			m, err := modalityFlag(command)
			if err != nil {
				return err
			}

			updated, err := f.catalog.UpdateProgram(ctx, id, services.ProgramChanges{
				Name:        command.String("nombre"),
				Modality:    m,
				Description: command.String("descripcion"),
				Duration:    command.String("duracion"),
			})
			if err != nil {
				return err
			}

			ui.PrintSuccess(f.out, t.GetMessage("catalog.updated", 0, map[string]interface{}{"ID": id}))
			ui.RenderProgram(f.out, *updated, t)
			return nil
		},
	}
}

func (f *ShowCommandFactory) newDeleteCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "eliminar",
		Usage:     t.GetMessage("commands.program.delete_usage", 0, nil),
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "si", Aliases: []string{"y"}, Usage: t.GetMessage("commands.program.flag_yes", 0, nil)},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			id, err := programIDArg(command, t)
			if err != nil {
				return err
			}

			if !command.Bool("si") {
				prompt := ui.NewPrompter(f.in, f.out)
				if !prompt.Confirm(t.GetMessage("catalog.confirm_delete", 0, map[string]interface{}{"ID": id})) {
					ui.PrintWarning(f.out, t.GetMessage("catalog.delete_cancelled", 0, nil))
					return nil
				}
			}

			if err := f.catalog.DeleteProgram(ctx, id); err != nil {
				return err
			}

			ui.PrintSuccess(f.out, t.GetMessage("catalog.deleted", 0, map[string]interface{}{"ID": id}))
			return nil
		},
	}
}
