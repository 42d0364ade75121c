package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/admisiones-iti/admisiones/internal/validation"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations, string) {
	t.Helper()
	color.NoColor = true

	tmpConfigPath := filepath.Join(t.TempDir(), "config.json")
	cfg, err := config.LoadConfig(tmpConfigPath)
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("es", "")
	require.NoError(t, err)

	return cfg, translations, tmpConfigPath
}

func runConfig(t *testing.T, cfg *config.Config, translations *i18n.Translations, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	factory := NewConfigCommandFactory()
	factory.out = out

	app := &cli.Command{Commands: []*cli.Command{factory.CreateCommand(translations, cfg)}}
	err := app.Run(context.Background(), append([]string{"admisiones", "config"}, args...))
	return out.String(), err
}

func TestShowCommand(t *testing.T) {
	cfg, translations, tmpConfigPath := setupConfigTest(t)

	out, err := runConfig(t, cfg, translations, "show")

	require.NoError(t, err)
	assert.Contains(t, out, tmpConfigPath)
	assert.Contains(t, out, "http://localhost:8080")
	assert.Contains(t, out, "single")
	assert.Contains(t, out, "local")
	assert.Contains(t, out, "10m0s")

	cfg.CatalogCacheMinutes = 0
	out, err = runConfig(t, cfg, translations, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "desactivada")
}

func TestSetLangCommand(t *testing.T) {
	t.Run("should successfully set valid language to English", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-lang", "--lang", "en")

		assert.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, "en", loadedCfg.Language)
	})

	t.Run("should fail with unsupported language", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-lang", "--lang", "fr")

		assert.Error(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, "es", loadedCfg.Language)
	})

	t.Run("config save error", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)
		require.NoError(t, os.Remove(tmpConfigPath))
		require.NoError(t, os.Mkdir(tmpConfigPath, 0755))

		_, err := runConfig(t, cfg, translations, "set-lang", "--lang", "en")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Error al guardar la configuración")
		assert.Equal(t, "en", cfg.Language)
	})
}

func TestSetAPIURLCommand(t *testing.T) {
	t.Run("guarda una URL válida", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-api-url", "https://admisiones.example.edu.ec/")

		require.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, "https://admisiones.example.edu.ec/", loadedCfg.APIURL)
		assert.Equal(t, "https://admisiones.example.edu.ec", loadedCfg.BaseURL())
	})

	t.Run("rechaza una URL sin esquema y conserva la anterior", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-api-url", "localhost:9000")

		assert.Error(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.APIURL)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", loadedCfg.APIURL)
	})

	t.Run("sin argumento", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-api-url")

		assert.Error(t, err)
	})
}

func TestSetSelectionModeCommand(t *testing.T) {
	cfg, translations, tmpConfigPath := setupConfigTest(t)

	_, err := runConfig(t, cfg, translations, "set-selection-mode", "scoped")
	require.NoError(t, err)

	loadedCfg, err := config.LoadConfig(tmpConfigPath)
	require.NoError(t, err)
	assert.Equal(t, selection.ModeScoped, loadedCfg.SelectionMode)

	_, err = runConfig(t, cfg, translations, "set-selection-mode", "multiple")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usá uno de: single, scoped")
	assert.Equal(t, selection.ModeScoped, cfg.SelectionMode)
}

func TestSetPhoneFormatCommand(t *testing.T) {
	t.Run("cambia a internacional con código de país", func(t *testing.T) {
		cfg, translations, tmpConfigPath := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-phone-format", "--codigo-pais", "+57", "international")

		require.NoError(t, err)
		loadedCfg, err := config.LoadConfig(tmpConfigPath)
		require.NoError(t, err)
		assert.Equal(t, validation.PhoneInternational, loadedCfg.PhoneFormat)
		assert.Equal(t, "+57", loadedCfg.CountryCode)
	})

	t.Run("código de país inválido no se guarda", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-phone-format", "--codigo-pais", "593", "international")

		assert.Error(t, err)
		assert.Equal(t, validation.PhoneLocal, cfg.PhoneFormat)
		assert.Equal(t, "+593", cfg.CountryCode)
	})

	t.Run("formato desconocido", func(t *testing.T) {
		cfg, translations, _ := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set-phone-format", "satellite")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "'satellite'")
		assert.Contains(t, err.Error(), "Usá uno de: local, international")
	})
}
