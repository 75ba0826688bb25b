package training

import (
	"context"
	"testing"

	"github.com/fitadmin/backend/internal/domain/training"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockProgramRepository is a mock implementation of training.ProgramRepository
type MockProgramRepository struct {
	mock.Mock
}

func (m *MockProgramRepository) Insert(ctx context.Context, program *training.Program) error {
	args := m.Called(ctx, program)
	return args.Error(0)
}

func (m *MockProgramRepository) InsertWithDays(ctx context.Context, program *training.Program, days []*training.Day) error {
	args := m.Called(ctx, program, days)
	return args.Error(0)
}

func (m *MockProgramRepository) FindByID(ctx context.Context, id string) (*training.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.Program), args.Error(1)
}

func (m *MockProgramRepository) FindAll(ctx context.Context) ([]training.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]training.Program), args.Error(1)
}

func (m *MockProgramRepository) Update(ctx context.Context, id string, patch training.ProgramPatch) (*training.Program, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*training.Program), args.Error(1)
}

func (m *MockProgramRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestProgramService_Create_WithoutDays(t *testing.T) {
	repo := new(MockProgramRepository)
	service := NewProgramService(repo, zap.NewNop())

	repo.On("Insert", mock.Anything, mock.AnythingOfType("*training.Program")).Return(nil)

	created, err := service.Create(context.Background(), &training.Program{Name: "Base Strength"}, nil)

	assert.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	repo.AssertNotCalled(t, "InsertWithDays", mock.Anything, mock.Anything, mock.Anything)
}

func TestProgramService_Create_WithDays_AtomicInsert(t *testing.T) {
	repo := new(MockProgramRepository)
	service := NewProgramService(repo, zap.NewNop())

	repo.On("InsertWithDays", mock.Anything,
		mock.AnythingOfType("*training.Program"),
		mock.AnythingOfType("[]*training.Day"),
	).Return(nil)

	days := []*training.Day{
		{DayNumber: 1, Title: "Opening Day"},
		{DayNumber: 2},
	}
	_, err := service.Create(context.Background(), &training.Program{Name: "Hypertrophy"}, days)

	assert.NoError(t, err)
	// caller numbering is kept verbatim, defaults fill the gaps
	assert.Equal(t, "Opening Day", days[0].Title)
	assert.Equal(t, "Day 2", days[1].Title)
	assert.Equal(t, []training.Exercise{}, days[1].Exercises)
	assert.False(t, days[0].CreatedAt.IsZero())
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProgramService_Create_MissingName(t *testing.T) {
	repo := new(MockProgramRepository)
	service := NewProgramService(repo, zap.NewNop())

	_, err := service.Create(context.Background(), &training.Program{}, nil)

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProgramService_List_NeverNil(t *testing.T) {
	repo := new(MockProgramRepository)
	service := NewProgramService(repo, zap.NewNop())

	repo.On("FindAll", mock.Anything).Return([]training.Program(nil), nil)

	programs, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, programs)
	assert.Empty(t, programs)
}

func TestProgramService_Update_EmptyPatchRejected(t *testing.T) {
	repo := new(MockProgramRepository)
	service := NewProgramService(repo, zap.NewNop())

	_, err := service.Update(context.Background(), "prog1", training.ProgramPatch{})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
