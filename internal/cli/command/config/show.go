package config

import (
	"context"
	"fmt"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("commands.config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			ui.PrintSectionBanner(c.out, t.GetMessage("config.title", 0, nil))

			ui.PrintKeyValue(c.out, t.GetMessage("config.key.file", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.language", 0, nil), cfg.Language)
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.api_url", 0, nil), cfg.BaseURL())
			if cfg.BaseURLFromEnv() {
				ui.PrintInfo(c.out, t.GetMessage("config.env_override", 0, map[string]interface{}{
					"Env": config.EnvAPIURL,
				}))
			}
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.selection_mode", 0, nil), string(cfg.SelectionMode))
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.phone_format", 0, nil), string(cfg.PhoneFormat))
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.country_code", 0, nil), cfg.CountryCode)
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.timeout", 0, nil), fmt.Sprintf("%ds", cfg.TimeoutSeconds))
			cache := t.GetMessage("config.key.catalog_cache_off", 0, nil)
			if ttl := cfg.CatalogCacheTTL(); ttl > 0 {
				cache = ttl.String()
			}
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.catalog_cache", 0, nil), cache)
			ui.PrintKeyValue(c.out, t.GetMessage("config.key.address", 0, nil), cfg.Defaults.Address)

			if cfg.Defaults.BirthDate != "" {
				ui.PrintKeyValue(c.out, t.GetMessage("config.key.birth_date", 0, nil), cfg.Defaults.BirthDate)
			}
			if cfg.Defaults.AcademicPeriodID != 0 {
				ui.PrintKeyValue(c.out, t.GetMessage("config.key.period", 0, nil), fmt.Sprintf("%d", cfg.Defaults.AcademicPeriodID))
			}
			return nil
		},
	}
}
