package contract

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// IDirectorRepository defines the interface for director data persistence.
// Director names are not unique, so there is no lookup by name.
type IDirectorRepository interface {
	CreateDirector(ctx context.Context, director *entity.Director) error
	GetDirectorByID(ctx context.Context, directorID string) (*entity.Director, error)
	GetAllDirectors(ctx context.Context, status *entity.Status) ([]*entity.Director, error)
	UpdateDirector(ctx context.Context, directorID string, updates map[string]interface{}) error
	DeleteDirector(ctx context.Context, directorID string) error
}
