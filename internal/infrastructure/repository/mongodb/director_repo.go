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

// DirectorRepository represents the MongoDB implementation of the
// IDirectorRepository interface. Director names carry no unique index.
type DirectorRepository struct {
	collection *mongo.Collection
}

// NewDirectorRepository creates and returns a new DirectorRepository
// instance.
func NewDirectorRepository(db *mongo.Database) *DirectorRepository {
	return &DirectorRepository{
		collection: db.Collection("directors"),
	}
}

var _ contract.IDirectorRepository = (*DirectorRepository)(nil)

// CreateDirector inserts a new director record into the database.
func (r *DirectorRepository) CreateDirector(ctx context.Context, director *entity.Director) error {
	director.CreatedAt = time.Now()
	director.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, director)
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to create director: %w", err))
	}
	return nil
}

// GetDirectorByID retrieves a single director by its unique ID.
func (r *DirectorRepository) GetDirectorByID(ctx context.Context, directorID string) (*entity.Director, error) {
	var director entity.Director
	err := r.collection.FindOne(ctx, bson.M{"_id": directorID}).Decode(&director)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("director")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve director: %w", err))
	}
	return &director, nil
}

// GetAllDirectors retrieves all directors, newest first, optionally filtered
// by lifecycle status.
func (r *DirectorRepository) GetAllDirectors(ctx context.Context, status *entity.Status) ([]*entity.Director, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to retrieve directors: %w", err))
	}
	defer cursor.Close(ctx)

	var directors []*entity.Director
	if err = cursor.All(ctx, &directors); err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to decode directors: %w", err))
	}
	if directors == nil {
		directors = []*entity.Director{}
	}
	return directors, nil
}

// UpdateDirector updates the details of an existing director by its ID.
func (r *DirectorRepository) UpdateDirector(ctx context.Context, directorID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": directorID}, bson.M{"$set": updates})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to update director: %w", err))
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("director")
	}
	return nil
}

// DeleteDirector deletes a director record by its ID.
func (r *DirectorRepository) DeleteDirector(ctx context.Context, directorID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": directorID})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to delete director: %w", err))
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("director")
	}
	return nil
}
