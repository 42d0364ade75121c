package ports

import (
	"context"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
)

type ProgramCatalog interface {
	ListPrograms(ctx context.Context) ([]models.Program, error)
	GetProgram(ctx context.Context, id int64) (*models.Program, error)
}

// ProgramManager maintains the catalog on the backend.
type ProgramManager interface {
	CreateProgram(ctx context.Context, program models.Program) (*models.Program, error)
	// CreateProgramWithStructure also builds the program's academic structure and
	// returns the backend's confirmation message.
	CreateProgramWithStructure(ctx context.Context, program models.Program) (string, error)
	UpdateProgram(ctx context.Context, id int64, program models.Program) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int64) error
}

type ProgramStore interface {
	ProgramCatalog
	ProgramManager
}

type CandidateRegistry interface {
	CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.CreatedCandidate, error)
	AttachPrograms(ctx context.Context, candidateID int64, programIDs []int64) error
}
