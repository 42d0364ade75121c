package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/admisiones-iti/admisiones/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear la configuración por defecto en el primer uso", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, LangES, cfg.Language)
		assert.Equal(t, "http://localhost:8080", cfg.APIURL)
		assert.Equal(t, selection.ModeSingle, cfg.SelectionMode)
		assert.Equal(t, validation.PhoneLocal, cfg.PhoneFormat)
		assert.Equal(t, filepath.Join(tmpDir, ".admisiones", "config.json"), cfg.PathFile)
		assert.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL())
		assert.Equal(t, filepath.Join(tmpDir, ".admisiones", "cache"), cfg.CacheDir())
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("debería leer un archivo json directamente", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "custom.json")
		data := []byte(`{"language":"en","api_url":"https://admisiones.example.edu","selection_mode":"scoped","phone_format":"international","country_code":"+593","timeout_seconds":30}`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, LangEN, cfg.Language)
		assert.Equal(t, "https://admisiones.example.edu", cfg.BaseURL())
		assert.Equal(t, selection.ModeScoped, cfg.SelectionMode)
		assert.Equal(t, validation.PhoneInternational, cfg.PhoneFormat)
		assert.Equal(t, 30*time.Second, cfg.Timeout())
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("debería completar campos faltantes de archivos viejos", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"es"}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", cfg.APIURL)
		assert.Equal(t, 15*time.Second, cfg.Timeout())
		assert.Equal(t, "+593", cfg.CountryCode)
		assert.Zero(t, cfg.CatalogCacheTTL())
	})

	t.Run("debería manejar configuración inválida", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"fr"}`), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no es válida")
	})

	t.Run("debería manejar JSON malformado", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{malformed json"), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Run("la variable de entorno tiene prioridad sin persistirse", func(t *testing.T) {
		tmpDir := t.TempDir()
		cfg, err := LoadConfig(tmpDir)
		require.NoError(t, err)
		t.Setenv(EnvAPIURL, "https://api.example.edu/")

		require.NoError(t, cfg.ApplyEnv())

		assert.Equal(t, "https://api.example.edu", cfg.BaseURL())
		assert.True(t, cfg.BaseURLFromEnv())
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", reloaded.APIURL)
	})

	t.Run("rechaza una URL inválida en el entorno", func(t *testing.T) {
		cfg := defaultConfig(filepath.Join(t.TempDir(), "config.json"))
		t.Setenv(EnvAPIURL, "ftp://nope")

		assert.Error(t, cfg.ApplyEnv())
		assert.False(t, cfg.BaseURLFromEnv())
	})

	t.Run("sin variable usa la URL guardada", func(t *testing.T) {
		cfg := defaultConfig(filepath.Join(t.TempDir(), "config.json"))
		t.Setenv(EnvAPIURL, "")

		require.NoError(t, cfg.ApplyEnv())
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL())
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería validar la configuración antes de guardar", func(t *testing.T) {
		config := &Config{Language: ""}

		err := SaveConfig(config)

		assert.Error(t, err)
	})

	t.Run("debería exigir la ruta del archivo", func(t *testing.T) {
		config := defaultConfig("")

		err := SaveConfig(config)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ruta")
	})

	t.Run("debería guardar la configuración correctamente", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "config.json")
		config := defaultConfig(path)
		config.Language = LangEN
		config.Defaults.AcademicPeriodID = 7

		// Act
		err := SaveConfig(config)

		// Assert
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var saved Config
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, LangEN, saved.Language)
		assert.Equal(t, int64(7), saved.Defaults.AcademicPeriodID)
		assert.Equal(t, int64(7), config.PayloadDefaults().AcademicPeriodID)
	})
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Run("debería manejar error al crear el directorio", func(t *testing.T) {
		invalidDir := filepath.Join(string([]byte{0}), "config.json")

		_, err := createDefaultConfig(invalidDir)

		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config { return defaultConfig("/tmp/config.json") }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"configuración válida", func(c *Config) {}, false},
		{"idioma vacío", func(c *Config) { c.Language = "" }, true},
		{"idioma no soportado", func(c *Config) { c.Language = "pt" }, true},
		{"url sin esquema", func(c *Config) { c.APIURL = "localhost:8080" }, true},
		{"url sin host", func(c *Config) { c.APIURL = "http://" }, true},
		{"modo de selección inválido", func(c *Config) { c.SelectionMode = "multi" }, true},
		{"formato de celular inválido", func(c *Config) { c.PhoneFormat = "e164" }, true},
		{"código de país inválido", func(c *Config) {
			c.PhoneFormat = validation.PhoneInternational
			c.CountryCode = "593"
		}, true},
		{"timeout inválido", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"caché negativa", func(c *Config) { c.CatalogCacheMinutes = -1 }, true},
		{"caché desactivada", func(c *Config) { c.CatalogCacheMinutes = 0 }, false},
		{"fecha de nacimiento inválida", func(c *Config) { c.Defaults.BirthDate = "01/02/2000" }, true},
		{"fecha de nacimiento válida", func(c *Config) { c.Defaults.BirthDate = "2000-02-01" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
