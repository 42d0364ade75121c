// Package validation holds the pure input checks run before anything is sent to
// the admissions backend.
package validation

import (
	"github.com/admisiones-iti/admisiones/internal/regex"
)

const (
	cedulaLength   = 10
	minProvince    = 1
	maxProvince    = 24
	checkedDigits  = 9
	checksumModulo = 10
)

// ValidCedula reports whether s is a well-formed Ecuadorian national identity number:
// ten ASCII digits, a province code in [1, 24] and a matching verifier digit.
func ValidCedula(s string) bool {
	if !regex.CedulaDigits.MatchString(s) {
		return false
	}

	province := int(s[0]-'0')*10 + int(s[1]-'0')
	if province < minProvince || province > maxProvince {
		return false
	}

	return VerifierDigit(s[:checkedDigits]) == int(s[checkedDigits]-'0')
}

// VerifierDigit computes the check digit for the first nine digits of a cédula.
// Even positions are doubled, subtracting 9 when the product exceeds 9.
// It returns -1 when the input is not nine ASCII digits.
func VerifierDigit(nine string) int {
	if len(nine) != checkedDigits {
		return -1
	}

	total := 0
	for i := 0; i < checkedDigits; i++ {
		c := nine[i]
		if c < '0' || c > '9' {
			return -1
		}
		v := int(c - '0')
		if i%2 == 0 {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		total += v
	}

	return (checksumModulo - total%checksumModulo) % checksumModulo
}
