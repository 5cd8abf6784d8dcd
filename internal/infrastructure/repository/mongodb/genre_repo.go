package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cinelog/media-catalog/internal/domain/apperror"
	"github.com/cinelog/media-catalog/internal/domain/contract"
	"github.com/cinelog/media-catalog/internal/domain/entity"
)

// GenreRepository represents the MongoDB implementation of the
// IGenreRepository interface.
type GenreRepository struct {
	collection *mongo.Collection
}

// NewGenreRepository creates and returns a new GenreRepository instance.
func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{
		collection: db.Collection("genres"),
	}
}

var _ contract.IGenreRepository = (*GenreRepository)(nil)

// CreateGenre inserts a new genre record into the database.
func (r *GenreRepository) CreateGenre(ctx context.Context, genre *entity.Genre) error {
	genre.CreatedAt = time.Now()
	genre.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, genre)
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to create genre: %w", err))
	}
	return nil
}

// GetGenreByID retrieves a single genre by its unique ID.
func (r *GenreRepository) GetGenreByID(ctx context.Context, genreID string) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.collection.FindOne(ctx, bson.M{"_id": genreID}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("genre")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve genre: %w", err))
	}
	return &genre, nil
}

// GetGenreByName retrieves a single genre by its exact name.
func (r *GenreRepository) GetGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	var genre entity.Genre
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&genre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("genre")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve genre by name: %w", err))
	}
	return &genre, nil
}

// GetAllGenres retrieves all genres, newest first, optionally filtered by
// lifecycle status.
func (r *GenreRepository) GetAllGenres(ctx context.Context, status *entity.Status) ([]*entity.Genre, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to retrieve genres: %w", err))
	}
	defer cursor.Close(ctx)

	var genres []*entity.Genre
	if err = cursor.All(ctx, &genres); err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to decode genres: %w", err))
	}
	if genres == nil {
		genres = []*entity.Genre{}
	}
	return genres, nil
}

// UpdateGenre updates the details of an existing genre by its ID.
func (r *GenreRepository) UpdateGenre(ctx context.Context, genreID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": genreID}, bson.M{"$set": updates})
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to update genre: %w", err))
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("genre")
	}
	return nil
}

// DeleteGenre deletes a genre record by its ID. Media records referencing the
// genre are left untouched.
func (r *GenreRepository) DeleteGenre(ctx context.Context, genreID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": genreID})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to delete genre: %w", err))
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("genre")
	}
	return nil
}
