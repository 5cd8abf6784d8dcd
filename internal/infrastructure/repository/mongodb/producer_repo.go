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

// ProducerRepository represents the MongoDB implementation of the
// IProducerRepository interface.
type ProducerRepository struct {
	collection *mongo.Collection
}

// NewProducerRepository creates and returns a new ProducerRepository
// instance.
func NewProducerRepository(db *mongo.Database) *ProducerRepository {
	return &ProducerRepository{
		collection: db.Collection("producers"),
	}
}

var _ contract.IProducerRepository = (*ProducerRepository)(nil)

// CreateProducer inserts a new production company record into the database.
func (r *ProducerRepository) CreateProducer(ctx context.Context, producer *entity.Producer) error {
	producer.CreatedAt = time.Now()
	producer.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, producer)
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to create producer: %w", err))
	}
	return nil
}

// GetProducerByID retrieves a single production company by its unique ID.
func (r *ProducerRepository) GetProducerByID(ctx context.Context, producerID string) (*entity.Producer, error) {
	var producer entity.Producer
	err := r.collection.FindOne(ctx, bson.M{"_id": producerID}).Decode(&producer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("producer")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve producer: %w", err))
	}
	return &producer, nil
}

// GetProducerByName retrieves a single production company by its exact name.
func (r *ProducerRepository) GetProducerByName(ctx context.Context, name string) (*entity.Producer, error) {
	var producer entity.Producer
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&producer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.NotFound("producer")
		}
		return nil, apperror.Store(fmt.Errorf("failed to retrieve producer by name: %w", err))
	}
	return &producer, nil
}

// GetAllProducers retrieves all production companies, newest first,
// optionally filtered by lifecycle status.
func (r *ProducerRepository) GetAllProducers(ctx context.Context, status *entity.Status) ([]*entity.Producer, error) {
	filter := bson.M{}
	if status != nil {
		filter["status"] = *status
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to retrieve producers: %w", err))
	}
	defer cursor.Close(ctx)

	var producers []*entity.Producer
	if err = cursor.All(ctx, &producers); err != nil {
		return nil, apperror.Store(fmt.Errorf("failed to decode producers: %w", err))
	}
	if producers == nil {
		producers = []*entity.Producer{}
	}
	return producers, nil
}

// UpdateProducer updates the details of an existing production company by
// its ID.
func (r *ProducerRepository) UpdateProducer(ctx context.Context, producerID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": producerID}, bson.M{"$set": updates})
	if err != nil {
		if field, ok := duplicateKeyField(err, "name"); ok {
			return apperror.DuplicateKey(field)
		}
		return apperror.Store(fmt.Errorf("failed to update producer: %w", err))
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("producer")
	}
	return nil
}

// DeleteProducer deletes a production company record by its ID.
func (r *ProducerRepository) DeleteProducer(ctx context.Context, producerID string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": producerID})
	if err != nil {
		return apperror.Store(fmt.Errorf("failed to delete producer: %w", err))
	}
	if res.DeletedCount == 0 {
		return apperror.NotFound("producer")
	}
	return nil
}
