package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/cli/completion_helper"
	"github.com/admisiones-iti/admisiones/internal/config"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/admisiones-iti/admisiones/internal/validation"
	"github.com/urfave/cli/v3"
)

// ValidateCommandFactory builds "validar", which checks a value offline.
type ValidateCommandFactory struct {
	out io.Writer
}

func NewValidateCommandFactory() *ValidateCommandFactory {
	return &ValidateCommandFactory{out: os.Stdout}
}

func (f *ValidateCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "validar",
		Aliases: []string{"v"},
		Usage:   t.GetMessage("commands.validate.usage", 0, nil),
		Commands: []*cli.Command{
			f.newCedulaCommand(t),
			f.newPhoneCommand(t, cfg),
		},
	}
}

func (f *ValidateCommandFactory) newCedulaCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:      "cedula",
		Usage:     t.GetMessage("commands.validate.cedula_usage", 0, nil),
		ArgsUsage: "<cedula>",
		Action: func(ctx context.Context, command *cli.Command) error {
			value := strings.TrimSpace(command.Args().First())
			if value == "" {
				return fmt.Errorf("%s", t.GetMessage("validate.missing_argument", 0, nil))
			}

			if !validation.ValidCedula(value) {
				return appErrors.ErrInvalidCedula.WithContext("value", value)
			}

			ui.PrintSuccess(f.out, t.GetMessage("validate.cedula_ok", 0, map[string]interface{}{"Value": value}))
			return nil
		},
	}
}

func (f *ValidateCommandFactory) newPhoneCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "celular",
		Aliases:   []string{"telefono"},
		Usage:     t.GetMessage("commands.validate.phone_usage", 0, nil),
		ArgsUsage: "<numero>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "formato",
				Usage: t.GetMessage("commands.validate.flag_format", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, command *cli.Command) error {
			value := strings.TrimSpace(command.Args().First())
			if value == "" {
				return fmt.Errorf("%s", t.GetMessage("validate.missing_argument", 0, nil))
			}

			format := cfg.PhoneFormat
			if raw := command.String("formato"); raw != "" {
				format = validation.PhoneFormat(raw)
				if !format.Valid() {
					return fmt.Errorf("%s", t.GetMessage("config.invalid_phone_format", 0, map[string]interface{}{
						"Value": raw,
					}))
				}
			}
			if format == "" {
				format = validation.PhoneLocal
			}

			if !validation.ValidPhone(value, format) {
				return appErrors.ErrInvalidPhone.
					WithContext("value", value).
					WithContext("format", string(format))
			}

			ui.PrintSuccess(f.out, t.GetMessage("validate.phone_ok", 0, map[string]interface{}{
				"Value":  validation.NormalizePhone(value, format, cfg.CountryCode),
				"Format": string(format),
			}))
			return nil
		},
	}
}
