package usecase

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// CreateProducerInput carries the fields for creating a production company.
type CreateProducerInput struct {
	Name        string
	Slogan      string
	Description string
	Status      *entity.Status
}

// UpdateProducerInput carries a partial production company update.
type UpdateProducerInput struct {
	Name        *string
	Slogan      *string
	Description *string
	Status      *entity.Status
}

// IProducerUsecase defines production company business logic.
type IProducerUsecase interface {
	CreateProducer(ctx context.Context, input CreateProducerInput) (*entity.Producer, error)
	GetProducerByID(ctx context.Context, producerID string) (*entity.Producer, error)
	GetProducers(ctx context.Context, status *entity.Status) ([]*entity.Producer, error)
	UpdateProducer(ctx context.Context, producerID string, input UpdateProducerInput) (*entity.Producer, error)
	DeleteProducer(ctx context.Context, producerID string) error
}

// ProducerUsecase implements IProducerUsecase.
type ProducerUsecase struct {
	producerRepo contract.IProducerRepository
	uuidgen      contract.IUUIDGenerator
}

// NewProducerUsecase creates a new instance of ProducerUsecase.
func NewProducerUsecase(producerRepo contract.IProducerRepository, uuidgen contract.IUUIDGenerator) *ProducerUsecase {
	return &ProducerUsecase{producerRepo: producerRepo, uuidgen: uuidgen}
}

var _ IProducerUsecase = (*ProducerUsecase)(nil)

// CreateProducer creates a new production company after checking its name is
// not taken.
func (uc *ProducerUsecase) CreateProducer(ctx context.Context, input CreateProducerInput) (*entity.Producer, error) {
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

	if _, err := uc.producerRepo.GetProducerByName(ctx, input.Name); err == nil {
		return nil, apperror.DuplicateKey("name")
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	producer := &entity.Producer{
		ID:          uc.uuidgen.NewUUID(),
		Name:        input.Name,
		Status:      status,
		Slogan:      input.Slogan,
		Description: input.Description,
	}
	if err := uc.producerRepo.CreateProducer(ctx, producer); err != nil {
		return nil, err
	}
	return producer, nil
}

// GetProducerByID fetches a single production company.
func (uc *ProducerUsecase) GetProducerByID(ctx context.Context, producerID string) (*entity.Producer, error) {
	return uc.producerRepo.GetProducerByID(ctx, producerID)
}

// GetProducers lists production companies, optionally filtered by lifecycle
// status.
func (uc *ProducerUsecase) GetProducers(ctx context.Context, status *entity.Status) ([]*entity.Producer, error) {
	return uc.producerRepo.GetAllProducers(ctx, status)
}

// UpdateProducer applies a partial update with a change-triggered name
// uniqueness check.
func (uc *ProducerUsecase) UpdateProducer(ctx context.Context, producerID string, input UpdateProducerInput) (*entity.Producer, error) {
	current, err := uc.producerRepo.GetProducerByID(ctx, producerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil && *input.Name != "" && *input.Name != current.Name {
		if _, err := uc.producerRepo.GetProducerByName(ctx, *input.Name); err == nil {
			return nil, apperror.DuplicateKey("name")
		} else if !apperror.IsNotFound(err) {
			return nil, err
		}
		updates["name"] = *input.Name
	}
	if input.Slogan != nil {
		updates["slogan"] = *input.Slogan
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

	if err := uc.producerRepo.UpdateProducer(ctx, producerID, updates); err != nil {
		return nil, err
	}
	return uc.producerRepo.GetProducerByID(ctx, producerID)
}

// DeleteProducer removes a production company without checking for
// referencing media.
func (uc *ProducerUsecase) DeleteProducer(ctx context.Context, producerID string) error {
	return uc.producerRepo.DeleteProducer(ctx, producerID)
}
