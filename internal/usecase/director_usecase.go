package usecase

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// CreateDirectorInput carries the fields for creating a director. Director
// names are not unique, so there is no name check.
type CreateDirectorInput struct {
	Name   string
	Status *entity.Status
}

// UpdateDirectorInput carries a partial director update.
type UpdateDirectorInput struct {
	Name   *string
	Status *entity.Status
}

// IDirectorUsecase defines director-related business logic.
type IDirectorUsecase interface {
	CreateDirector(ctx context.Context, input CreateDirectorInput) (*entity.Director, error)
	GetDirectorByID(ctx context.Context, directorID string) (*entity.Director, error)
	GetDirectors(ctx context.Context, status *entity.Status) ([]*entity.Director, error)
	UpdateDirector(ctx context.Context, directorID string, input UpdateDirectorInput) (*entity.Director, error)
	DeleteDirector(ctx context.Context, directorID string) error
}

// DirectorUsecase implements IDirectorUsecase.
type DirectorUsecase struct {
	directorRepo contract.IDirectorRepository
	uuidgen      contract.IUUIDGenerator
}

// NewDirectorUsecase creates a new instance of DirectorUsecase.
func NewDirectorUsecase(directorRepo contract.IDirectorRepository, uuidgen contract.IUUIDGenerator) *DirectorUsecase {
	return &DirectorUsecase{directorRepo: directorRepo, uuidgen: uuidgen}
}

var _ IDirectorUsecase = (*DirectorUsecase)(nil)

// CreateDirector creates a new director.
func (uc *DirectorUsecase) CreateDirector(ctx context.Context, input CreateDirectorInput) (*entity.Director, error) {
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

	director := &entity.Director{
		ID:     uc.uuidgen.NewUUID(),
		Name:   input.Name,
		Status: status,
	}
	if err := uc.directorRepo.CreateDirector(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

// GetDirectorByID fetches a single director.
func (uc *DirectorUsecase) GetDirectorByID(ctx context.Context, directorID string) (*entity.Director, error) {
	return uc.directorRepo.GetDirectorByID(ctx, directorID)
}

// GetDirectors lists directors, optionally filtered by lifecycle status.
func (uc *DirectorUsecase) GetDirectors(ctx context.Context, status *entity.Status) ([]*entity.Director, error) {
	return uc.directorRepo.GetAllDirectors(ctx, status)
}

// UpdateDirector applies a partial update.
func (uc *DirectorUsecase) UpdateDirector(ctx context.Context, directorID string, input UpdateDirectorInput) (*entity.Director, error) {
	if _, err := uc.directorRepo.GetDirectorByID(ctx, directorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" {
		updates["name"] = *input.Name
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, apperror.Validation("status", "must be Active or Inactive")
		}
		updates["status"] = *input.Status
	}

	if err := uc.directorRepo.UpdateDirector(ctx, directorID, updates); err != nil {
		return nil, err
	}
	return uc.directorRepo.GetDirectorByID(ctx, directorID)
}

// DeleteDirector removes a director without checking for referencing media.
func (uc *DirectorUsecase) DeleteDirector(ctx context.Context, directorID string) error {
	return uc.directorRepo.DeleteDirector(ctx, directorID)
}
