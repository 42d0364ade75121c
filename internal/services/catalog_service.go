package services

import (
	"context"
	"strings"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/admisiones-iti/admisiones/internal/domain/ports"
	appErrors "github.com/admisiones-iti/admisiones/internal/errors"
	"github.com/admisiones-iti/admisiones/internal/logger"
	"github.com/admisiones-iti/admisiones/internal/selection"
)

type (
	CatalogService struct {
		catalog ports.ProgramStore
	}

	// ProgramChanges holds the fields to overwrite on an existing program. Empty
	// values keep the current ones.
	ProgramChanges struct {
		Name        string
		Modality    models.Modality
		Description string
		Duration    string
	}
)

func NewCatalogService(catalog ports.ProgramStore) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) Programs(ctx context.Context) ([]models.Program, error) {
	programs, err := s.catalog.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug(ctx, "catalog loaded", "count", len(programs))
	return programs, nil
}

// ByModality returns the programs offered in m, in catalog order.
func (s *CatalogService) ByModality(ctx context.Context, m models.Modality) ([]models.Program, error) {
	if !m.Valid() {
		return nil, appErrors.ErrUnknownModality.WithContext("modality", string(m))
	}
	programs, err := s.Programs(ctx)
	if err != nil {
		return nil, err
	}
	return models.FilterByModality(programs, m), nil
}

func (s *CatalogService) Program(ctx context.Context, id int64) (*models.Program, error) {
	return s.catalog.GetProgram(ctx, id)
}

// NewSelection loads the catalog and starts an empty selection over it.
func (s *CatalogService) NewSelection(ctx context.Context, mode selection.Mode) (*selection.State, error) {
	programs, err := s.Programs(ctx)
	if err != nil {
		return nil, err
	}
	return selection.New(programs, mode), nil
}

// CreateProgram adds program to the catalog. With withStructure the backend also
// builds its academic structure and only a confirmation message comes back.
func (s *CatalogService) CreateProgram(ctx context.Context, program models.Program, withStructure bool) (*models.Program, string, error) {
	program.Name = strings.TrimSpace(program.Name)
	if err := checkProgram(program); err != nil {
		return nil, "", err
	}

	if withStructure {
		message, err := s.catalog.CreateProgramWithStructure(ctx, program)
		if err != nil {
			return nil, "", err
		}
		logger.Info(ctx, "program created with structure", "name", program.Name)
		return nil, message, nil
	}

	created, err := s.catalog.CreateProgram(ctx, program)
	if err != nil {
		return nil, "", err
	}
	logger.Info(ctx, "program created", "id", created.ID, "name", created.Name)
	return created, "", nil
}

// UpdateProgram reads the current program, applies changes and stores the result.
func (s *CatalogService) UpdateProgram(ctx context.Context, id int64, changes ProgramChanges) (*models.Program, error) {
	current, err := s.catalog.GetProgram(ctx, id)
	if err != nil {
		return nil, err
	}

	program := *current
	if name := strings.TrimSpace(changes.Name); name != "" {
		program.Name = name
	}
	if changes.Modality != "" {
		program.Modality = changes.Modality
	}
	if changes.Description != "" {
		program.Description = changes.Description
	}
	if changes.Duration != "" {
		program.Duration = changes.Duration
	}
	if err := checkProgram(program); err != nil {
		return nil, err
	}

	updated, err := s.catalog.UpdateProgram(ctx, id, program)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "program updated", "id", id)
	return updated, nil
}

func (s *CatalogService) DeleteProgram(ctx context.Context, id int64) error {
	if err := s.catalog.DeleteProgram(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "program deleted", "id", id)
	return nil
}

func checkProgram(program models.Program) error {
	var missing []string
	if strings.TrimSpace(program.Name) == "" {
		missing = append(missing, FieldName)
	}
	if program.Modality == "" {
		missing = append(missing, FieldModality)
	}
	if len(missing) > 0 {
		return appErrors.ErrMissingFields.
			WithContext("field", strings.Join(missing, ", ")).
			WithContext("missing", missing).
			WithSuggestionID("suggestion.program_fields")
	}
	if !program.Modality.Valid() {
		return appErrors.ErrUnknownModality.WithContext("modality", string(program.Modality))
	}
	return nil
}
