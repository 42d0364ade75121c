package regex

import "regexp"

var (
	// Identity document patterns
	CedulaDigits = regexp.MustCompile(`^[0-9]{10}$`)

	// Mobile phone patterns
	LocalMobile         = regexp.MustCompile(`^09[0-9]{8}$`)
	InternationalMobile = regexp.MustCompile(`^9[0-9]{8}$`)
	CountryCode         = regexp.MustCompile(`^\+[1-9][0-9]{0,3}$`)

	// Form input
	ISODate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)
