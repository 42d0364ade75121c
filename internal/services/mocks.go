package services

import (
	"context"

	"github.com/admisiones-iti/admisiones/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockAdmissionsClient struct {
	mock.Mock
}

func (m *MockAdmissionsClient) ListPrograms(ctx context.Context) ([]models.Program, error) {
	args := m.Called(ctx)
	if programs, ok := args.Get(0).([]models.Program); ok {
		return programs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdmissionsClient) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	args := m.Called(ctx, id)
	if program, ok := args.Get(0).(*models.Program); ok {
		return program, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdmissionsClient) CreateProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	args := m.Called(ctx, program)
	if created, ok := args.Get(0).(*models.Program); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdmissionsClient) CreateProgramWithStructure(ctx context.Context, program models.Program) (string, error) {
	args := m.Called(ctx, program)
	return args.String(0), args.Error(1)
}

func (m *MockAdmissionsClient) UpdateProgram(ctx context.Context, id int64, program models.Program) (*models.Program, error) {
	args := m.Called(ctx, id, program)
	if updated, ok := args.Get(0).(*models.Program); ok {
		return updated, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdmissionsClient) DeleteProgram(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdmissionsClient) CreateCandidate(ctx context.Context, candidate models.Candidate) (*models.CreatedCandidate, error) {
	args := m.Called(ctx, candidate)
	if created, ok := args.Get(0).(*models.CreatedCandidate); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAdmissionsClient) AttachPrograms(ctx context.Context, candidateID int64, programIDs []int64) error {
	args := m.Called(ctx, candidateID, programIDs)
	return args.Error(0)
}
