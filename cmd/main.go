package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/admisiones-iti/admisiones/internal/cli/command/apply"
	"github.com/admisiones-iti/admisiones/internal/cli/command/completion"
	"github.com/admisiones-iti/admisiones/internal/cli/command/config"
	"github.com/admisiones-iti/admisiones/internal/cli/command/programs"
	"github.com/admisiones-iti/admisiones/internal/cli/command/validate"
	"github.com/admisiones-iti/admisiones/internal/cli/registry"
	cfg "github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/domain/ports"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/admissions"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/cache"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/httpclient"
	"github.com/admisiones-iti/admisiones/internal/logger"
	"github.com/admisiones-iti/admisiones/internal/services"
	"github.com/admisiones-iti/admisiones/internal/ui"
	"github.com/admisiones-iti/admisiones/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	if err := cfgApp.ApplyEnv(); err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfg.GetLocaleConfig(cfgApp.Language), "")
	if err != nil {
		return nil, nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	httpClient := httpclient.NewDefaultHTTPClient(cfgApp.Timeout())
	admissionsClient := admissions.NewClient(cfgApp.BaseURL(), httpClient)

	var catalog ports.ProgramStore = admissionsClient
	if ttl := cfgApp.CatalogCacheTTL(); ttl > 0 {
		catalogCache, err := cache.NewCache(cfgApp.CacheDir(), ttl)
		if err != nil {
			return nil, nil, fmt.Errorf("error al preparar la caché de carreras: %w", err)
		}
		catalog = admissions.NewCachedCatalog(admissionsClient, catalogCache, cfgApp.BaseURL())
	}

	catalogService := services.NewCatalogService(catalog)
	submissionService := services.NewSubmissionService(admissionsClient, cfgApp)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("carreras", programs.NewListCommandFactory(catalogService)); err != nil {
		log.Fatalf("Error al registrar el comando 'carreras': %v", err)
	}

	if err := registerCommand.Register("carrera", programs.NewShowCommandFactory(catalogService)); err != nil {
		log.Fatalf("Error al registrar el comando 'carrera': %v", err)
	}

	if err := registerCommand.Register("validar", validate.NewValidateCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'validar': %v", err)
	}

	if err := registerCommand.Register("postular", apply.NewApplyCommandFactory(catalogService, submissionService)); err != nil {
		log.Fatalf("Error al registrar el comando 'postular': %v", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'config': %v", err)
	}

	if err := registerCommand.Register("completion", completion.NewCompletionCommandFactory()); err != nil {
		log.Fatalf("Error al registrar el comando 'completion': %v", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("commands.help.usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "admisiones",
		Usage:       translations.GetMessage("app.usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app.about", 0, map[string]interface{}{"URL": cfgApp.BaseURL()}),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"V"},
				Usage:   translations.GetMessage("flags.verbose", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			logger.Debug(ctx, "configuration loaded",
				"path", cfgApp.PathFile,
				"api_url", cfgApp.BaseURL(),
				"from_env", cfgApp.BaseURLFromEnv(),
				"selection_mode", cfgApp.SelectionMode,
				"phone_format", cfgApp.PhoneFormat)
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
