package usecase

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// CreateGenreInput carries the fields for creating a genre. Status defaults
// to Active when nil.
type CreateGenreInput struct {
	Name        string
	Description string
	Status      *entity.Status
}

// UpdateGenreInput carries a partial genre update.
type UpdateGenreInput struct {
	Name        *string
	Description *string
	Status      *entity.Status
}

// IGenreUsecase defines genre-related business logic.
type IGenreUsecase interface {
	CreateGenre(ctx context.Context, input CreateGenreInput) (*entity.Genre, error)
	GetGenreByID(ctx context.Context, genreID string) (*entity.Genre, error)
	GetGenres(ctx context.Context, status *entity.Status) ([]*entity.Genre, error)
	UpdateGenre(ctx context.Context, genreID string, input UpdateGenreInput) (*entity.Genre, error)
	DeleteGenre(ctx context.Context, genreID string) error
}

// GenreUsecase implements IGenreUsecase.
type GenreUsecase struct {
	genreRepo contract.IGenreRepository
	uuidgen   contract.IUUIDGenerator
}

// NewGenreUsecase creates a new instance of GenreUsecase.
func NewGenreUsecase(genreRepo contract.IGenreRepository, uuidgen contract.IUUIDGenerator) *GenreUsecase {
	return &GenreUsecase{genreRepo: genreRepo, uuidgen: uuidgen}
}

var _ IGenreUsecase = (*GenreUsecase)(nil)

// CreateGenre creates a new genre after checking its name is not taken.
// Name matching is case-sensitive and exact.
func (uc *GenreUsecase) CreateGenre(ctx context.Context, input CreateGenreInput) (*entity.Genre, error) {
	if input.Name == "" {
		return nil, apperror.Validation("name", "is required")
	}
	status := entity.DefaultStatus()
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.Validation("status", "must be Active or Inactive")
		}
		status = *input.Status
	}

	if _, err := uc.genreRepo.GetGenreByName(ctx, input.Name); err == nil {
		return nil, apperror.DuplicateKey("name")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	genre := &entity.Genre{
		ID:          uc.uuidgen.NewUUID(),
		Name:        input.Name,
		Status:      status,
		Description: input.Description,
	}
	if err := uc.genreRepo.CreateGenre(ctx, genre); err != nil {
		return nil, err
	}
	return genre, nil
}

// GetGenreByID fetches a single genre.
func (uc *GenreUsecase) GetGenreByID(ctx context.Context, genreID string) (*entity.Genre, error) {
	return uc.genreRepo.GetGenreByID(ctx, genreID)
}

// GetGenres lists genres, optionally filtered by lifecycle status.
func (uc *GenreUsecase) GetGenres(ctx context.Context, status *entity.Status) ([]*entity.Genre, error) {
	return uc.genreRepo.GetAllGenres(ctx, status)
}

// UpdateGenre applies a partial update. The name uniqueness check is
// change-triggered: re-submitting the current name is a no-op, not a
// conflict.
func (uc *GenreUsecase) UpdateGenre(ctx context.Context, genreID string, input UpdateGenreInput) (*entity.Genre, error) {
	current, err := uc.genreRepo.GetGenreByID(ctx, genreID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" && *input.Name != current.Name {
		if _, err := uc.genreRepo.GetGenreByName(ctx, *input.Name); err == nil {
			return nil, apperror.DuplicateKey("name")
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.Validation("status", "must be Active or Inactive")
		}
		updates["status"] = *input.Status
	}

	if err := uc.genreRepo.UpdateGenre(ctx, genreID, updates); err != nil {
		return nil, err
	}
	return uc.genreRepo.GetGenreByID(ctx, genreID)
}

// DeleteGenre removes a genre. Media records referencing it keep their stale
// identifier; the activity gate only applies when a reference is introduced.
func (uc *GenreUsecase) DeleteGenre(ctx context.Context, genreID string) error {
	return uc.genreRepo.DeleteGenre(ctx, genreID)
}
