package contract

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// IMediaTypeRepository defines the interface for media type data persistence.
// Media types have no lifecycle state, so listing takes no status filter.
type IMediaTypeRepository interface {
	CreateMediaType(ctx context.Context, mediaType *entity.MediaType) error
	GetMediaTypeByID(ctx context.Context, typeID string) (*entity.MediaType, error)
	GetMediaTypeByName(ctx context.Context, name string) (*entity.MediaType, error)
	GetAllMediaTypes(ctx context.Context) ([]*entity.MediaType, error)
	UpdateMediaType(ctx context.Context, typeID string, updates map[string]interface{}) error
	DeleteMediaType(ctx context.Context, typeID string) error
}
