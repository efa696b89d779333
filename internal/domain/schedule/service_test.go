package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"

	"fieldassets/internal/utils/dates"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Schedule, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Schedule), args.Error(1)
}

func (m *MockRepository) ListYear(ctx context.Context, year int) ([]Schedule, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]Schedule), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, s *Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, s *Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_ListYear(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	expected := []Schedule{
		{ID: "s1", Title: "calibration", Start: dates.MustParse("2024-01-10"), End: dates.MustParse("2024-01-12")},
	}
	mockRepo.On("ListYear", mock.Anything, 2024).Return(expected, nil)

	got, err := service.ListYear(context.Background(), 2024)
	assert.NoError(t, err)
	assert.Equal(t, expected, got)

	mockRepo.AssertExpectations(t)
}

func TestService_ListYear_InvalidYear(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.ListYear(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidData)

	mockRepo.AssertNotCalled(t, "ListYear", mock.Anything, mock.Anything)
}

func TestService_Create_RequiresTitle(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), Schedule{Color: "#ffcc00"})
	assert.ErrorIs(t, err, ErrInvalidData)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_AcceptsInvertedInterval(t *testing.T) {
	// Interval ordering is intentionally unchecked at write time; the
	// calendar simply never renders such a schedule.
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := service.Create(context.Background(), Schedule{
		Title: "inverted",
		Start: dates.MustParse("2024-06-10"),
		End:   dates.MustParse("2024-06-01"),
	})
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, "s1").Return(errors.New("database error"))

	err := service.Delete(context.Background(), "s1")
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}

func TestSchedule_Contains(t *testing.T) {
	s := Schedule{
		Title: "maintenance",
		Start: dates.MustParse("2024-06-01"),
		End:   dates.MustParse("2024-06-03"),
	}

	assert.True(t, s.Contains(dates.MustParse("2024-06-01")))
	assert.True(t, s.Contains(dates.MustParse("2024-06-02")))
	assert.True(t, s.Contains(dates.MustParse("2024-06-03")))
	assert.False(t, s.Contains(dates.MustParse("2024-05-31")))
	assert.False(t, s.Contains(dates.MustParse("2024-06-04")))
}

func TestSchedule_Contains_MissingDates(t *testing.T) {
	open := Schedule{Title: "no end", Start: dates.MustParse("2024-06-01")}
	assert.False(t, open.Contains(dates.MustParse("2024-06-01")))

	inverted := Schedule{
		Title: "inverted",
		Start: dates.MustParse("2024-06-10"),
		End:   dates.MustParse("2024-06-01"),
	}
	assert.False(t, inverted.Contains(dates.MustParse("2024-06-05")))
}
