package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/i18n"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SchoolEmoji  = "🎓"
	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
	ErrorEmoji   = Error.Sprint("❌")
)

// SmartSpinner wraps a terminal spinner that writes to w.
type SmartSpinner struct {
	spinner *spinner.Spinner
	out     io.Writer
}

func NewSmartSpinner(w io.Writer, initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithWriter(w),
		spinner.WithSuffix(" "+SchoolEmoji+" "+initialMessage),
	)
	return &SmartSpinner{spinner: s, out: w}
}

func (s *SmartSpinner) Start() {
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

func (s *SmartSpinner) UpdateMessage(msg string) {
	s.spinner.Lock()
	s.spinner.Suffix = " " + SchoolEmoji + " " + msg
	s.spinner.Unlock()
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintSuccess(s.out, msg)
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(s.out, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorEmoji, Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "\n%s\n", separator)
	_, _ = fmt.Fprintf(w, "%s %s\n", SchoolEmoji, Accent.Sprint(title))
	_, _ = fmt.Fprintf(w, "%s\n\n", separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// ErrorMessage renders err for the user. AppErrors carrying a MessageID are
// translated with their context as template data; anything else falls back to
// err.Error().
func ErrorMessage(err error, t *i18n.Translations) string {
	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) || appErr.MessageID == "" || t == nil {
		return err.Error()
	}

	data := make(map[string]interface{}, len(appErr.Context))
	for k, v := range appErr.Context {
		data[k] = v
	}
	if missing, ok := appErr.Context["missing"].([]string); ok {
		labels := make([]string, 0, len(missing))
		for _, field := range missing {
			labels = append(labels, t.GetMessage("field."+field, 0, nil))
		}
		data["fields"] = strings.Join(labels, ", ")
	}

	return t.GetMessage(appErr.MessageID, 0, data)
}

// HandleAppError prints err on w. Warnings go out in yellow, everything else as an
// error. Translations may be nil.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	msg := ErrorMessage(err, t)

	var appErr *appErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, msg)
		return
	}

	if appErr.Severity == appErrors.SeverityWarning {
		PrintWarning(w, msg)
	} else {
		PrintError(w, msg)
	}

	if appErr.Err != nil {
		detailsPrefix := "Details:"
		if t != nil {
			detailsPrefix = t.GetMessage("ui_error.details", 0, nil)
		}
		_, _ = fmt.Fprintf(w, "   %s\n", Dim.Sprintf("%s %v", detailsPrefix, appErr.Err))
	}

	if suggestion := suggestionText(appErr, t); suggestion != "" {
		tryPrefix := "💡 Try: "
		if t != nil {
			tryPrefix = t.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = fmt.Fprintf(w, "\n%s%s\n", Info.Sprint(tryPrefix), suggestion)
	}
}

// suggestionText translates SuggestionID when possible and falls back to the
// literal Suggestion.
func suggestionText(appErr *appErrors.AppError, t *i18n.Translations) string {
	if appErr.SuggestionID != "" && t != nil {
		return t.GetMessage(appErr.SuggestionID, 0, appErr.Context)
	}
	return appErr.Suggestion
}
