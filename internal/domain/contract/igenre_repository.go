package contract

import (
	"context"

	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// IGenreRepository defines the interface for genre data persistence.
type IGenreRepository interface {
	CreateGenre(ctx context.Context, genre *entity.Genre) error
	GetGenreByID(ctx context.Context, genreID string) (*entity.Genre, error)
	GetGenreByName(ctx context.Context, name string) (*entity.Genre, error)
	GetAllGenres(ctx context.Context, status *entity.Status) ([]*entity.Genre, error)
	UpdateGenre(ctx context.Context, genreID string, updates map[string]interface{}) error
	DeleteGenre(ctx context.Context, genreID string) error
}
