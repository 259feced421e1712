package slots

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
)

var (
	ErrNotFound    = errors.New("slot not found")
	ErrDuplicate   = errors.New("slot already exists")
	ErrUnavailable = errors.New("slot already booked")
)

type Repository interface {
	ListAvailable(ctx context.Context, therapist, fromDate string) ([]models.Slot, error)
	ListAll(ctx context.Context) ([]models.Slot, error)
	GetByID(ctx context.Context, id string) (models.Slot, error)
	Create(ctx context.Context, slot models.Slot) error
	Delete(ctx context.Context, id string) error
	Claim(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
}

type MongoRepository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

var slotSort = bson.D{{Key: "slot_date", Value: 1}, {Key: "start_time", Value: 1}}

func (r *MongoRepository) ListAvailable(ctx context.Context, therapist, fromDate string) ([]models.Slot, error) {
	query := bson.M{
		"is_booked": false,
		"slot_date": bson.M{"$gte": fromDate},
	}
	if therapist != "" {
		query["therapist"] = therapist
	}
	return r.find(ctx, query)
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]models.Slot, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) find(ctx context.Context, query bson.M) ([]models.Slot, error) {
	cursor, err := r.col.Find(ctx, query, options.Find().SetSort(slotSort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Slot, 0)
	for cursor.Next(ctx) {
		var slot models.Slot
		if err := cursor.Decode(&slot); err != nil {
			return nil, err
		}
		items = append(items, slot)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (models.Slot, error) {
	var slot models.Slot
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&slot); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Slot{}, ErrNotFound
		}
		return models.Slot{}, err
	}
	return slot, nil
}

func (r *MongoRepository) Create(ctx context.Context, slot models.Slot) error {
	if _, err := r.col.InsertOne(ctx, slot); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Delete removes a slot only while it is unbooked. The booked check is
// part of the filter so a concurrent claim cannot slip through.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "is_booked": false})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Claim flips is_booked false -> true conditionally. A no-match means
// the slot is gone or another customer won the race.
func (r *MongoRepository) Claim(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"is_booked": true}}
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id, "is_booked": false}, update).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrUnavailable
	}
	return err
}

// Release undoes a claim after a failed booking insert. Best effort.
func (r *MongoRepository) Release(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{"is_booked": false}}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}
