package validation

import "strings"

// Field is one named input of the intake form.
type Field struct {
	Name  string
	Value string
}

// MissingFields returns the names of the fields whose value is blank, in order.
func MissingFields(fields ...Field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}
