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

// MediaRepository represents the MongoDB implementation of the
// IMediaRepository interface.
type MediaRepository struct {
	collection *mongo.Collection
}

// NewMediaRepository creates and returns a new MediaRepository instance.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{
		collection: db.Collection("media"),
	}
}

var _ contract.IMediaRepository = (*MediaRepository)(nil)

// buildMediaFilter creates a BSON filter from the database-agnostic filter
// options. All provided criteria are combined with logical AND.
func buildMediaFilter(opts *contract.MediaFilterOptions) bson.M {
	filter := bson.M{}
	if opts.GenreID != nil && *opts.GenreID != "" {
		filter["genre_id"] = *opts.GenreID
	}
	if opts.DirectorID != nil && *opts.DirectorID != "" {
		filter["director_id"] = *opts.DirectorID
	}
	if opts.ProducerID != nil && *opts.ProducerID != "" {
		filter["producer_id"] = *opts.ProducerID
	}
	if opts.TypeID != nil && *opts.TypeID != "" {
		filter["type_id"] = *opts.TypeID
	}
	if opts.ReleaseYear != nil {
		filter["release_year"] = *opts.ReleaseYear
	}
	if opts.Title != nil && *opts.Title != "" {
		filter["title"] = bson.M{"$regex": *opts.Title, "$options": "i"}
	}
	return filter
}

// CreateMedia inserts a new media record into the database.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *entity.Media) error {
	media.CreatedAt = time.Now()
	media.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, media)
	if err != nil {
		if field, ok := duplicateKeyField(err, "serial", "url"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to create media record: %w", err))
	}
	return nil
}

// GetMediaByID retrieves a single media record by its unique ID.
func (r *MediaRepository) GetMediaByID(ctx context.Context, mediaID string) (*entity.Media, error) {
	return r.findOne(ctx, bson.M{"_id": mediaID})
}

// GetMediaBySerial retrieves a single media record by its serial.
func (r *MediaRepository) GetMediaBySerial(ctx context.Context, serial string) (*entity.Media, error) {
	return r.findOne(ctx, bson.M{"serial": serial})
}

// GetMediaByURL retrieves a single media record by its URL.
func (r *MediaRepository) GetMediaByURL(ctx context.Context, url string) (*entity.Media, error) {
	return r.findOne(ctx, bson.M{"url": url})
}

func (r *MediaRepository) findOne(ctx context.Context, filter bson.M) (*entity.Media, error) {
	var media entity.Media
	err := r.collection.FindOne(ctx, filter).Decode(&media)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("media")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve media record: %w", err))
	}
	return &media, nil
}

// GetMedia retrieves a page of media records matching the filter options,
// sorted by creation time descending, along with the pre-pagination total.
// Equal timestamps fall back to id ordering so a fixed data set always pages
// deterministically.
func (r *MediaRepository) GetMedia(ctx context.Context, opts *contract.MediaFilterOptions) ([]*entity.Media, int64, error) {
	filter := buildMediaFilter(opts)

	totalCount, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperror.Store(fmt.Errorf("failed to count media records: %w", err))
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip((opts.Page - 1) * opts.Limit).
		SetLimit(opts.Limit)

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, apperror.Store(fmt.Errorf("failed to retrieve media records: %w", err))
	}
	defer cursor.Close(ctx)

	var mediaList []*entity.Media
	if err = cursor.All(ctx, &mediaList); err != nil {
		return nil, 0, apperror.Store(fmt.Errorf("failed to decode media records: %w", err))
	}
	if mediaList == nil {
		mediaList = []*entity.Media{}
	}
	return mediaList, totalCount, nil
}

// UpdateMedia updates an existing media record by its ID. The update
// timestamp is refreshed on every write regardless of which fields changed.
func (r *MediaRepository) UpdateMedia(ctx context.Context, mediaID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": mediaID}, bson.M{"$set": updates})
	if err != nil {
		if field, ok := duplicateKeyField(err, "serial", "url"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to update media record: %w", err))
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("media")
	}
	return nil
}

// DeleteMedia removes a media record by its ID. No check is made for other
// records referencing it.
func (r *MediaRepository) DeleteMedia(ctx context.Context, mediaID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": mediaID})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to delete media record: %w", err))
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("media")
	}
	return nil
}
