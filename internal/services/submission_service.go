package services

import (
	"context"
	"strings"
	"sync"

	"github.com/admisiones-iti/admisiones/internal/config"
	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/domain/ports"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/infrastructure/httpclient"
	"github.com/admisiones-iti/admisiones/internal/logger"
	"github.com/admisiones-iti/admisiones/internal/validation"
)

type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateValidating SubmissionState = "validating"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateFailed     SubmissionState = "failed"
)

// Field names reported by the required-field check.
const (
	FieldName     = "nombre"
	FieldGiven    = "nombres"
	FieldFamily   = "apellidos"
	FieldCedula   = "cedula"
	FieldEmail    = "correo"
	FieldPhone    = "celular"
	FieldModality = "modalidad"
	FieldPrograms = "carreras"
)

type (
	// Transition is emitted on every state change. Err is set when entering Failed.
	Transition struct {
		From SubmissionState
		To   SubmissionState
		Err  error
	}

	// Result describes a successful submission.
	Result struct {
		CandidateID int64
		Candidate   models.Candidate
		ProgramIDs  []int64
		RequestID   string
	}

	SubmissionService struct {
		registry    ports.CandidateRegistry
		phoneFormat validation.PhoneFormat
		countryCode string
		defaults    models.CandidateDefaults

		mu         sync.Mutex
		state      SubmissionState
		observers  []observer
		nextHandle int
	}

	observer struct {
		handle int
		fn     func(Transition)
	}
)

func NewSubmissionService(registry ports.CandidateRegistry, cfg *config.Config) *SubmissionService {
	return &SubmissionService{
		registry:    registry,
		phoneFormat: cfg.PhoneFormat,
		countryCode: cfg.CountryCode,
		defaults:    cfg.PayloadDefaults(),
		state:       StateIdle,
	}
}

// OnTransition registers an observer and returns the func that removes it.
// Observers run synchronously, in registration order.
func (s *SubmissionService) OnTransition(fn func(Transition)) (remove func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextHandle++
	handle := s.nextHandle
	s.observers = append(s.observers, observer{handle: handle, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, o := range s.observers {
			if o.handle == handle {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *SubmissionService) State() SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit validates the form and, when it is valid, creates the candidate and then
// attaches the selected programs. On success the form is reset; on failure it is
// left untouched for correction. The controller is back in Idle when Submit returns.
// A candidate created before a failed attach is not rolled back.
func (s *SubmissionService) Submit(ctx context.Context, form *Form) (*Result, error) {
	if !s.begin() {
		return nil, appErrors.ErrSubmissionInProgress
	}

	result, err := s.run(ctx, form)
	if err != nil {
		s.transition(StateFailed, err)
	} else {
		form.Reset()
		s.transition(StateSuccess, nil)
	}
	s.transition(StateIdle, nil)
	return result, err
}

func (s *SubmissionService) run(ctx context.Context, form *Form) (*Result, error) {
	if err := s.Validate(form); err != nil {
		logger.Debug(ctx, "form rejected", "error", err)
		return nil, err
	}

	candidate := s.BuildCandidate(form)
	programIDs := form.Selection.Flatten()

	s.transition(StateSubmitting, nil)

	ctx = httpclient.WithRequestID(ctx, "")
	requestID := httpclient.RequestIDFromContext(ctx)
	ctx = logger.With(ctx, "request_id", requestID)

	logger.Info(ctx, "creating candidate", "cedula", candidate.Cedula, "count", len(programIDs))
	created, err := s.registry.CreateCandidate(ctx, candidate)
	if err != nil {
		logger.Error(ctx, "candidate creation failed", err)
		return nil, asNetworkError(err).WithContext("stage", "create")
	}

	logger.Info(ctx, "attaching programs", "candidate_id", created.ID, "count", len(programIDs))
	if err := s.registry.AttachPrograms(ctx, created.ID, programIDs); err != nil {
		logger.Error(ctx, "program attachment failed, candidate left without programs", err,
			"candidate_id", created.ID)
		return nil, asNetworkError(err).
			WithContext("stage", "attach").
			WithContext("candidate_id", created.ID).
			WithContext("partial", true)
	}

	return &Result{
		CandidateID: created.ID,
		Candidate:   candidate,
		ProgramIDs:  programIDs,
		RequestID:   requestID,
	}, nil
}

// Validate runs the required-field check, then the cédula check, then the phone
// check, stopping at the first failure.
func (s *SubmissionService) Validate(form *Form) error {
	if missing := requiredMissing(form); len(missing) > 0 {
		return appErrors.ErrMissingFields.
			WithContext("field", strings.Join(missing, ", ")).
			WithContext("missing", missing)
	}

	if !validation.ValidCedula(strings.TrimSpace(form.Cedula)) {
		return appErrors.ErrInvalidCedula.WithContext("value", strings.TrimSpace(form.Cedula))
	}

	if !validation.ValidPhone(form.Phone, s.phoneFormat) {
		return appErrors.ErrInvalidPhone.
			WithContext("value", strings.TrimSpace(form.Phone)).
			WithContext("format", string(s.phoneFormat))
	}

	return nil
}

// BuildCandidate assembles the payload for a validated form.
func (s *SubmissionService) BuildCandidate(form *Form) models.Candidate {
	given, family := form.Names()

	candidate := models.Candidate{
		GivenNames:       given,
		FamilyNames:      family,
		Cedula:           strings.TrimSpace(form.Cedula),
		Email:            strings.TrimSpace(form.Email),
		Phone:            validation.NormalizePhone(form.Phone, s.phoneFormat, s.countryCode),
		Address:          s.defaults.Address,
		Status:           models.StatusPending,
		ContactAttempts:  0,
		BirthDate:        s.defaults.BirthDate,
		AcademicPeriodID: s.defaults.AcademicPeriodID,
	}

	if a := strings.TrimSpace(form.Address); a != "" {
		candidate.Address = a
	}
	if d := strings.TrimSpace(form.BirthDate); d != "" {
		candidate.BirthDate = d
	}
	if form.AcademicPeriodID != 0 {
		candidate.AcademicPeriodID = form.AcademicPeriodID
	}

	return candidate
}

func requiredMissing(form *Form) []string {
	fields := make([]validation.Field, 0, 8)
	if form.HasExplicitNames() {
		fields = append(fields,
			validation.Field{Name: FieldGiven, Value: form.GivenNames},
			validation.Field{Name: FieldFamily, Value: form.FamilyNames})
	} else {
		fields = append(fields, validation.Field{Name: FieldName, Value: form.FullName})
	}
	fields = append(fields,
		validation.Field{Name: FieldCedula, Value: form.Cedula},
		validation.Field{Name: FieldEmail, Value: form.Email},
		validation.Field{Name: FieldPhone, Value: form.Phone})

	missing := validation.MissingFields(fields...)

	if form.Selection == nil || form.Selection.Active() == "" {
		missing = append(missing, FieldModality)
	}
	if form.Selection == nil || len(form.Selection.Flatten()) == 0 {
		missing = append(missing, FieldPrograms)
	}
	return missing
}

func (s *SubmissionService) begin() bool {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return false
	}
	s.state = StateValidating
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, Transition{From: StateIdle, To: StateValidating})
	return true
}

func (s *SubmissionService) transition(to SubmissionState, err error) {
	s.mu.Lock()
	from := s.state
	s.state = to
	observers := s.snapshotObservers()
	s.mu.Unlock()

	notify(observers, Transition{From: from, To: to, Err: err})
}

func (s *SubmissionService) snapshotObservers() []func(Transition) {
	observers := make([]func(Transition), 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o.fn)
	}
	return observers
}

func notify(observers []func(Transition), t Transition) {
	for _, fn := range observers {
		fn(t)
	}
}

// asNetworkError keeps AppErrors from the adapter and classifies anything else as a
// network or server failure.
func asNetworkError(err error) *appErrors.AppError {
	if appErr, ok := err.(*appErrors.AppError); ok {
		return appErr
	}
	return appErrors.ErrNetworkOrServer.WithError(err)
}
