package booking

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
)

var (
	ErrNotFound  = errors.New("booking not found")
	ErrDuplicate = errors.New("slot already has a booking")
)

type Repository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, id string) (models.Booking, error)
	List(ctx context.Context, limit, offset int64) ([]models.Booking, error)
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) Create(ctx context.Context, booking models.Booking) error {
	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		// Unique slot_id index: a second booking for the same slot.
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	var booking models.Booking
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, ErrNotFound
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func (r *MongoRepository) List(ctx context.Context, limit, offset int64) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Booking, 0)
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, err
		}
		items = append(items, booking)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
