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

// MediaTypeRepository represents the MongoDB implementation of the
// IMediaTypeRepository interface.
type MediaTypeRepository struct {
	collection *mongo.Collection
}

// NewMediaTypeRepository creates and returns a new MediaTypeRepository
// instance.
func NewMediaTypeRepository(db *mongo.Database) *MediaTypeRepository {
	return &MediaTypeRepository{
		collection: db.Collection("media_types"),
	}
}

var _ contract.IMediaTypeRepository = (*MediaTypeRepository)(nil)

// CreateMediaType inserts a new media type record into the database.
func (r *MediaTypeRepository) CreateMediaType(ctx context.Context, mediaType *entity.MediaType) error {
	mediaType.CreatedAt = time.Now()
	mediaType.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, mediaType)
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to create media type: %w", err))
	}
	return nil
}

// GetMediaTypeByID retrieves a single media type by its unique ID.
func (r *MediaTypeRepository) GetMediaTypeByID(ctx context.Context, typeID string) (*entity.MediaType, error) {
	var mediaType entity.MediaType
	err := r.collection.FindOne(ctx, bson.M{"_id": typeID}).Decode(&mediaType)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("type")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve media type: %w", err))
	}
	return &mediaType, nil
}

// GetMediaTypeByName retrieves a single media type by its exact name.
func (r *MediaTypeRepository) GetMediaTypeByName(ctx context.Context, name string) (*entity.MediaType, error) {
	var mediaType entity.MediaType
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&mediaType)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("type")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve media type by name: %w", err))
	}
	return &mediaType, nil
}

// GetAllMediaTypes retrieves all media types, newest first.
func (r *MediaTypeRepository) GetAllMediaTypes(ctx context.Context) ([]*entity.MediaType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to retrieve media types: %w", err))
	}
	defer cursor.Close(ctx)

	var mediaTypes []*entity.MediaType
	if err = cursor.All(ctx, &mediaTypes); err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to decode media types: %w", err))
	}
	if mediaTypes == nil {
		mediaTypes = []*entity.MediaType{}
	}
	return mediaTypes, nil
}

// UpdateMediaType updates the details of an existing media type by its ID.
func (r *MediaTypeRepository) UpdateMediaType(ctx context.Context, typeID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": typeID}, bson.M{"$set": updates})
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to update media type: %w", err))
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("type")
	}
	return nil
}

// DeleteMediaType deletes a media type record by its ID.
func (r *MediaTypeRepository) DeleteMediaType(ctx context.Context, typeID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": typeID})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to delete media type: %w", err))
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("type")
	}
	return nil
}
