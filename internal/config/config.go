package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/regex"
	"github.com/admisiones-iti/admisiones/internal/selection"
	"github.com/admisiones-iti/admisiones/internal/validation"
	"github.com/joho/godotenv"
)

type (
	Config struct {
		Language            string                 `json:"language"`
		APIURL              string                 `json:"api_url"`
		SelectionMode       selection.Mode         `json:"selection_mode"`
		PhoneFormat         validation.PhoneFormat `json:"phone_format"`
		CountryCode         string                 `json:"country_code"`
		TimeoutSeconds      int                    `json:"timeout_seconds"`
		CatalogCacheMinutes int                    `json:"catalog_cache_minutes"`
		Defaults            CandidateDefaults      `json:"defaults"`
		PathFile            string                 `json:"path_file"`

		apiURLOverride string
	}

	// CandidateDefaults are sent with every candidate but not asked to the user.
	CandidateDefaults struct {
		Address          string `json:"direccion"`
		BirthDate        string `json:"fecha_nacimiento,omitempty"`
		AcademicPeriodID int64  `json:"periodo_academico_id,omitempty"`
	}
)

const (
	EnvAPIURL = "ADMISIONES_API_URL"

	defaultLang           = LangES
	defaultAPIURL         = "http://localhost:8080"
	defaultSelectionMode  = selection.ModeSingle
	defaultPhoneFormat    = validation.PhoneLocal
	defaultCountryCode    = "+593"
	defaultTimeoutSeconds = 15
	defaultCatalogCache   = 10
	defaultAddress        = "Sin dirección"

	configDirName  = ".admisiones"
	configFileName = "config.json"
	cacheDirName   = "cache"
)

func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, configDirName)
		configPath = filepath.Join(configDir, configFileName)

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}

	applyMissingDefaults(&config)
	config.PathFile = configPath

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

// ApplyEnv loads a .env file from the working directory, if any, and lets
// ADMISIONES_API_URL override the stored backend URL for this run only.
func (c *Config) ApplyEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error al leer el archivo .env: %w", err)
	}

	override := strings.TrimSpace(os.Getenv(EnvAPIURL))
	if override == "" {
		return nil
	}
	if err := validateURL(override); err != nil {
		return fmt.Errorf("%s no es válida: %w", EnvAPIURL, err)
	}
	c.apiURLOverride = override
	return nil
}

// BaseURL is the backend root every endpoint hangs from, without a trailing slash.
func (c *Config) BaseURL() string {
	u := c.APIURL
	if c.apiURLOverride != "" {
		u = c.apiURLOverride
	}
	return strings.TrimRight(u, "/")
}

// BaseURLFromEnv reports whether BaseURL comes from the environment.
func (c *Config) BaseURLFromEnv() bool {
	return c.apiURLOverride != ""
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CatalogCacheTTL is how long the program list stays on disk. Zero disables the cache.
func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.CatalogCacheMinutes) * time.Minute
}

// CacheDir sits next to the config file.
func (c *Config) CacheDir() string {
	return filepath.Join(filepath.Dir(c.PathFile), cacheDirName)
}

func defaultConfig(path string) *Config {
	return &Config{
		Language:            defaultLang,
		APIURL:              defaultAPIURL,
		SelectionMode:       defaultSelectionMode,
		PhoneFormat:         defaultPhoneFormat,
		CountryCode:         defaultCountryCode,
		TimeoutSeconds:      defaultTimeoutSeconds,
		CatalogCacheMinutes: defaultCatalogCache,
		Defaults: CandidateDefaults{
			Address: defaultAddress,
		},
		PathFile: path,
	}
}

func createDefaultConfig(path string) (*Config, error) {
	config := defaultConfig(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error al codificar la configuración por defecto: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

// applyMissingDefaults fills fields that older config files did not have.
func applyMissingDefaults(config *Config) {
	if config.APIURL == "" {
		config.APIURL = defaultAPIURL
	}
	if config.SelectionMode == "" {
		config.SelectionMode = defaultSelectionMode
	}
	if config.PhoneFormat == "" {
		config.PhoneFormat = defaultPhoneFormat
	}
	if config.CountryCode == "" {
		config.CountryCode = defaultCountryCode
	}
	if config.TimeoutSeconds == 0 {
		config.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("Error al guardar la configuración: %w", err)
	}

	return nil
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	if !IsSupportedLanguage(config.Language) {
		return fmt.Errorf("idioma no soportado: %s", config.Language)
	}
	if err := validateURL(config.APIURL); err != nil {
		return fmt.Errorf("api_url no es válida: %w", err)
	}
	if !config.SelectionMode.Valid() {
		return fmt.Errorf("selection_mode no soportado: %s", config.SelectionMode)
	}
	if !config.PhoneFormat.Valid() {
		return fmt.Errorf("phone_format no soportado: %s", config.PhoneFormat)
	}
	if config.PhoneFormat == validation.PhoneInternational && !regex.CountryCode.MatchString(config.CountryCode) {
		return fmt.Errorf("country_code no es válido: %q", config.CountryCode)
	}
	if config.TimeoutSeconds <= 0 {
		return errors.New("timeout_seconds debe ser mayor que 0")
	}
	if config.CatalogCacheMinutes < 0 {
		return errors.New("catalog_cache_minutes no puede ser negativo")
	}
	if d := config.Defaults.BirthDate; d != "" && !regex.ISODate.MatchString(d) {
		return fmt.Errorf("fecha_nacimiento debe tener formato AAAA-MM-DD: %s", d)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("esquema no soportado: %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("falta el host")
	}
	return nil
}

// PayloadDefaults converts the stored defaults into the domain shape.
func (c *Config) PayloadDefaults() models.CandidateDefaults {
	return models.CandidateDefaults{
		Address:          c.Defaults.Address,
		BirthDate:        c.Defaults.BirthDate,
		AcademicPeriodID: c.Defaults.AcademicPeriodID,
	}
}
