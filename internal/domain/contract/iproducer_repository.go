package contract

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// IProducerRepository defines the interface for production company data
// persistence.
type IProducerRepository interface {
	CreateProducer(ctx context.Context, producer *entity.Producer) error
	GetProducerByID(ctx context.Context, producerID string) (*entity.Producer, error)
	GetProducerByName(ctx context.Context, name string) (*entity.Producer, error)
	GetAllProducers(ctx context.Context, status *entity.Status) ([]*entity.Producer, error)
	UpdateProducer(ctx context.Context, producerID string, updates map[string]interface{}) error
	DeleteProducer(ctx context.Context, producerID string) error
}
