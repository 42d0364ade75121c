package validation

import (
	"strings"

	"github.com/admisiones-iti/admisiones/internal/regex"
)

type PhoneFormat string

const (
	// PhoneLocal is the national form: 10 digits starting with "09".
	PhoneLocal PhoneFormat = "local"
	// PhoneInternational is the subscriber part typed next to a country-code
	// selector: 9 digits starting with "9".
	PhoneInternational PhoneFormat = "international"
)

func SupportedPhoneFormats() []PhoneFormat {
	return []PhoneFormat{PhoneLocal, PhoneInternational}
}

func (f PhoneFormat) Valid() bool {
	return f == PhoneLocal || f == PhoneInternational
}

// ValidPhone checks s against the given format. Surrounding whitespace is ignored,
// separators inside the number are not.
func ValidPhone(s string, f PhoneFormat) bool {
	s = strings.TrimSpace(s)
	switch f {
	case PhoneLocal:
		return regex.LocalMobile.MatchString(s)
	case PhoneInternational:
		return regex.InternationalMobile.MatchString(s)
	default:
		return false
	}
}

// NormalizePhone renders a valid number the way the backend stores it. International
// numbers get the country code prepended.
func NormalizePhone(s string, f PhoneFormat, countryCode string) string {
	s = strings.TrimSpace(s)
	if f == PhoneInternational {
		return countryCode + s
	}
	return s
}
