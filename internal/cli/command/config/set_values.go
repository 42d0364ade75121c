package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/admisiones-iti/admisiones/internal/validation"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetAPIURLCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-api-url",
		Usage:     t.GetMessage("commands.config.set_api_url_usage", 0, nil),
		ArgsUsage: "<url>",
		Action: func(ctx context.Context, command *cli.Command) error {
			value := strings.TrimSpace(command.Args().First())
			if value == "" {
				return fmt.Errorf("%s", t.GetMessage("config.missing_argument", 0, nil))
			}

			previous := cfg.APIURL
			cfg.APIURL = value
			if err := config.SaveConfig(cfg); err != nil {
				cfg.APIURL = previous
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("config.api_url_updated", 0, map[string]interface{}{"URL": value}))
			if cfg.BaseURLFromEnv() {
				ui.PrintWarning(c.out, t.GetMessage("config.env_override", 0, map[string]interface{}{"Env": config.EnvAPIURL}))
			}
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetSelectionModeCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-selection-mode",
		Usage:     t.GetMessage("commands.config.set_selection_mode_usage", 0, nil),
		ArgsUsage: "<" + allowed(selection.SupportedModes(), "|") + ">",
		Action: func(ctx context.Context, command *cli.Command) error {
			mode := selection.Mode(strings.ToLower(strings.TrimSpace(command.Args().First())))
			if !mode.Valid() {
				return fmt.Errorf("%s", t.GetMessage("config.invalid_selection_mode", 0, map[string]interface{}{
					"Value":   string(mode),
					"Allowed": allowed(selection.SupportedModes(), ", "),
				}))
			}

			cfg.SelectionMode = mode
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("config.selection_mode_updated", 0, map[string]interface{}{"Value": string(mode)}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetPhoneFormatCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-phone-format",
		Usage:     t.GetMessage("commands.config.set_phone_format_usage", 0, nil),
		ArgsUsage: "<" + allowed(validation.SupportedPhoneFormats(), "|") + ">",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "codigo-pais",
				Usage: t.GetMessage("commands.config.flag_country_code", 0, nil),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			format := validation.PhoneFormat(strings.ToLower(strings.TrimSpace(command.Args().First())))
			if !format.Valid() {
				return fmt.Errorf("%s", t.GetMessage("config.invalid_phone_format", 0, map[string]interface{}{
					"Value":   string(format),
					"Allowed": allowed(validation.SupportedPhoneFormats(), ", "),
				}))
			}

			previousFormat, previousCode := cfg.PhoneFormat, cfg.CountryCode
			cfg.PhoneFormat = format
			if code := strings.TrimSpace(command.String("codigo-pais")); code != "" {
				cfg.CountryCode = code
			}
			if err := config.SaveConfig(cfg); err != nil {
				cfg.PhoneFormat, cfg.CountryCode = previousFormat, previousCode
				return err
			}

			ui.PrintSuccess(c.out, t.GetMessage("config.phone_format_updated", 0, map[string]interface{}{
				"Value":       string(format),
				"CountryCode": cfg.CountryCode,
			}))
			return nil
		},
	}
}

func allowed[T ~string](values []T, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, sep)
}
