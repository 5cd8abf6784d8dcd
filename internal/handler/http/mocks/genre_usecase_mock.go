package mocks

import (
	"context"
	"time"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/entity"
	"github.com/cinelog/media-catalog/internal/usecase"
)

// MockGenreUsecase is a mock implementation of the IGenreUsecase interface
type MockGenreUsecase struct {
	// Control mock behavior
	ShouldFailCreate  bool
	ShouldFailGetByID bool
	ShouldFailUpdate  bool
	ShouldFailDelete  bool
	LastStatusFilter  *entity.Status

	// Return values
	MockGenre entity.Genre
}

var _ usecase.IGenreUsecase = (*MockGenreUsecase)(nil)

func NewMockGenreUsecase() *MockGenreUsecase {
	now := time.Now()
	return &MockGenreUsecase{
		MockGenre: entity.Genre{
			ID:          "mock-genre-id",
			Name:        "Action",
			Status:      entity.StatusActive,
			Description: "Fast-paced titles",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

func (m *MockGenreUsecase) CreateGenre(ctx context.Context, input usecase.CreateGenreInput) (*entity.Genre, error) {
	if m.ShouldFailCreate {
		return nil, apperror.DuplicateKey("name")
	}
	return &m.MockGenre, nil
}

func (m *MockGenreUsecase) GetGenreByID(ctx context.Context, genreID string) (*entity.Genre, error) {
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound("genre")
	}
	return &m.MockGenre, nil
}

func (m *MockGenreUsecase) GetGenres(ctx context.Context, status *entity.Status) ([]*entity.Genre, error) {
	m.LastStatusFilter = status
	return []*entity.Genre{&m.MockGenre}, nil
}

func (m *MockGenreUsecase) UpdateGenre(ctx context.Context, genreID string, input usecase.UpdateGenreInput) (*entity.Genre, error) {
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("genre")
	}
	return &m.MockGenre, nil
}

func (m *MockGenreUsecase) DeleteGenre(ctx context.Context, genreID string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("genre")
	}
	return nil
}
