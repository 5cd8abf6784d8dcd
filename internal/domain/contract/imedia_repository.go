package contract

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// MediaFilterOptions holds database-agnostic parameters for filtering and
// pagination. All filters are optional and combined with logical AND.
type MediaFilterOptions struct {
	GenreID     *string
	DirectorID  *string
	ProducerID  *string
	TypeID      *string
	ReleaseYear *int
	Title       *string // case-insensitive substring match
	Page        int64
	Limit       int64
}

// IMediaRepository defines the interface for media data persistence.
type IMediaRepository interface {
	CreateMedia(ctx context.Context, media *entity.Media) error
	GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error)
	GetMediaBySerial(ctx context.Context, serial string) (*entity.Media, error)
	GetMediaByURL(ctx context.Context, url string) (*entity.Media, error)
	GetMedia(ctx context.Context, opts *MediaFilterOptions) ([]*entity.Media, int64, error)
	UpdateMedia(ctx context.Context, mediaID string, updates map[string]interface{}) error
	DeleteMedia(ctx context.Context, mediaID string) error
}
