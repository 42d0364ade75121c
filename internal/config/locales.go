package config

import "log/slog"

const (
	LangEN = "en"
	LangES = "es"
)

func SupportedLanguages() []string {
	return []string{LangES, LangEN}
}

func IsSupportedLanguage(lang string) bool {
	return lang == LangES || lang == LangEN
}

func GetLocaleConfig(lang string) string {
	switch lang {
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	default:
		slog.Warn("idioma no soportado, usando español", "lang", lang)
		return LangES
	}
}
