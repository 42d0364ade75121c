package config

import (
	"io"
	"os"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	out io.Writer
}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{out: os.Stdout}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("commands.config.usage", 0, nil),
		Commands: []*cli.Command{
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetAPIURLCommand(t, cfg),
			c.newSetSelectionModeCommand(t, cfg),
			c.newSetPhoneFormatCommand(t, cfg),
		},
	}
}
