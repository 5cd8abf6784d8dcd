package usecase

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// CreateMediaTypeInput carries the fields for creating a media type. Media
// types have no lifecycle state.
type CreateMediaTypeInput struct {
	Name        string
	Description string
}

// UpdateMediaTypeInput carries a partial media type update.
type UpdateMediaTypeInput struct {
	Name        *string
	Description *string
}

// IMediaTypeUsecase defines media type business logic.
type IMediaTypeUsecase interface {
	CreateMediaType(ctx context.Context, input CreateMediaTypeInput) (*entity.MediaType, error)
	GetMediaTypeByID(ctx context.Context, typeID string) (*entity.MediaType, error)
	GetMediaTypes(ctx context.Context) ([]*entity.MediaType, error)
	UpdateMediaType(ctx context.Context, typeID string, input UpdateMediaTypeInput) (*entity.MediaType, error)
	DeleteMediaType(ctx context.Context, typeID string) error
}

// MediaTypeUsecase implements IMediaTypeUsecase.
type MediaTypeUsecase struct {
	typeRepo contract.IMediaTypeRepository
	uuidgen  contract.IUUIDGenerator
}

// NewMediaTypeUsecase creates a new instance of MediaTypeUsecase.
func NewMediaTypeUsecase(typeRepo contract.IMediaTypeRepository, uuidgen contract.IUUIDGenerator) *MediaTypeUsecase {
	return &MediaTypeUsecase{typeRepo: typeRepo, uuidgen: uuidgen}
}

var _ IMediaTypeUsecase = (*MediaTypeUsecase)(nil)

// CreateMediaType creates a new media type after checking its name is not
// taken.
func (uc *MediaTypeUsecase) CreateMediaType(ctx context.Context, input CreateMediaTypeInput) (*entity.MediaType, error) {
	if input.Name == "" {
		return nil, apperror.Validation("name", "is required")
	}

	if _, err := uc.typeRepo.GetMediaTypeByName(ctx, input.Name); err == nil {
		return nil, apperror.DuplicateKey("name")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	mediaType := &entity.MediaType{
		ID:          uc.uuidgen.NewUUID(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := uc.typeRepo.CreateMediaType(ctx, mediaType); err != nil {
		return nil, err
	}
	return mediaType, nil
}

// GetMediaTypeByID fetches a single media type.
func (uc *MediaTypeUsecase) GetMediaTypeByID(ctx context.Context, typeID string) (*entity.MediaType, error) {
	return uc.typeRepo.GetMediaTypeByID(ctx, typeID)
}

// GetMediaTypes lists all media types, newest first.
func (uc *MediaTypeUsecase) GetMediaTypes(ctx context.Context) ([]*entity.MediaType, error) {
	return uc.typeRepo.GetAllMediaTypes(ctx)
}

// UpdateMediaType applies a partial update with a change-triggered name
// uniqueness check.
func (uc *MediaTypeUsecase) UpdateMediaType(ctx context.Context, typeID string, input UpdateMediaTypeInput) (*entity.MediaType, error) {
	current, err := uc.typeRepo.GetMediaTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" && *input.Name != current.Name {
		if _, err := uc.typeRepo.GetMediaTypeByName(ctx, *input.Name); err == nil {
			return nil, apperror.DuplicateKey("name")
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	if err := uc.typeRepo.UpdateMediaType(ctx, typeID, updates); err != nil {
		return nil, err
	}
	return uc.typeRepo.GetMediaTypeByID(ctx, typeID)
}

// DeleteMediaType removes a media type without checking for referencing
// media.
func (uc *MediaTypeUsecase) DeleteMediaType(ctx context.Context, typeID string) error {
	return uc.typeRepo.DeleteMediaType(ctx, typeID)
}
