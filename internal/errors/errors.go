package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeValidation    ErrorType = "VALIDATION"
	TypeNetwork       ErrorType = "NETWORK"
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeInternal      ErrorType = "INTERNAL"
)

// Severity tells the UI how loudly to surface an error.
type Severity string

const (
	SeverityWarning Severity = "warn"
	SeverityError   Severity = "error"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Severity   Severity
	Message    string
	MessageID  string
	Context    map[string]interface{}
	Err        error
	Suggestion string
	// SuggestionID is the translation key of the suggestion and wins over Suggestion.
	SuggestionID string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if field, ok := e.Context["field"].(string); ok && field != "" {
			msg += fmt.Sprintf(" - %s", field)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches copies derived from the same sentinel through WithError/WithContext.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	c := e.clone()
	c.Err = err
	return c
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{}, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	c := e.clone()
	c.Context = ctx
	return c
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	c := e.clone()
	c.Suggestion = suggestion
	return c
}

// WithSuggestionID attaches the translation key of the suggestion shown to the user.
func (e *AppError) WithSuggestionID(id string) *AppError {
	c := e.clone()
	c.SuggestionID = id
	return c
}

// WithSeverity overrides the default severity of the error type.
func (e *AppError) WithSeverity(s Severity) *AppError {
	c := e.clone()
	c.Severity = s
	return c
}

// WithMessageID attaches the translation key used to render the error to the user.
func (e *AppError) WithMessageID(id string) *AppError {
	c := e.clone()
	c.MessageID = id
	return c
}

func (e *AppError) clone() *AppError {
	return &AppError{
		Type:         e.Type,
		Severity:     e.Severity,
		Message:      e.Message,
		MessageID:    e.MessageID,
		Context:      e.Context,
		Err:          e.Err,
		Suggestion:   e.Suggestion,
		SuggestionID: e.SuggestionID,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:     t,
		Severity: SeverityError,
		Message:  msg,
		Err:      err,
	}
}

// Validation errors. All of them are caught before any network call.
var (
	ErrMissingFields = NewAppError(TypeValidation, "required fields are missing", nil).
				WithSeverity(SeverityWarning).
				WithMessageID("submit.missing_fields").
				WithSuggestionID("suggestion.missing_fields")

	ErrInvalidCedula = NewAppError(TypeValidation, "invalid national identity number", nil).
				WithMessageID("submit.invalid_cedula").
				WithSuggestionID("suggestion.invalid_cedula")

	ErrInvalidPhone = NewAppError(TypeValidation, "invalid mobile phone number", nil).
			WithMessageID("submit.invalid_phone").
			WithSuggestionID("suggestion.invalid_phone")

	ErrUnknownModality = NewAppError(TypeValidation, "unknown modality", nil).
				WithMessageID("selection.unknown_modality").
				WithSuggestionID("suggestion.unknown_modality")

	ErrProgramNotEligible = NewAppError(TypeValidation, "program is not offered in the active modality", nil).
				WithMessageID("selection.program_not_eligible")

	ErrNoActiveModality = NewAppError(TypeValidation, "no modality selected", nil).
				WithSeverity(SeverityWarning).
				WithMessageID("selection.no_active_modality")
)

// Network errors. 4xx and 5xx are reported the same way.
var (
	ErrNetworkOrServer = NewAppError(TypeNetwork, "request to the admissions backend failed", nil).
				WithMessageID("submit.network_error").
				WithSuggestionID("suggestion.network_error")

	ErrMissingCandidateID = NewAppError(TypeNetwork, "backend did not return the created candidate id", nil).
				WithMessageID("submit.network_error")

	ErrProgramNotFound = NewAppError(TypeNetwork, "program not found", nil).
				WithMessageID("catalog.program_not_found")
)

// Configuration errors
var (
	ErrInvalidConfig = NewAppError(TypeConfiguration, "configuration is not valid", nil).
		WithSuggestionID("suggestion.invalid_config")
)

// Internal errors
var (
	ErrSubmissionInProgress = NewAppError(TypeInternal, "a submission is already in progress", nil).
		WithSeverity(SeverityWarning).
		WithMessageID("submit.in_progress")
)
