package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bikerz-heaven/models"
)

// PartStore persists catalog parts and owns all stock adjustments.
type PartStore interface {
	List(ctx context.Context) ([]models.Part, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Part, error)
	Insert(ctx context.Context, part models.Part) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)

	// AdjustQuantity adds delta to the part's availableQuantity as a single
	// atomic operation and returns the number of matched documents. Callers
	// branch on the count: 0 means the part does not exist.
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error)
}

type mongoPartStore struct {
	collection *mongo.Collection
}

// NewPartStore creates a PartStore over the given collection.
func NewPartStore(collection *mongo.Collection) PartStore {
	return &mongoPartStore{collection: collection}
}

func (s *mongoPartStore) List(ctx context.Context) ([]models.Part, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var parts []models.Part
	if err := cursor.All(ctx, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

func (s *mongoPartStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Part, error) {
	var part models.Part
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&part); err != nil {
		return nil, err
	}
	return &part, nil
}

func (s *mongoPartStore) Insert(ctx context.Context, part models.Part) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, part)
}

func (s *mongoPartStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *mongoPartStore) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"availableQuantity": delta},
	})
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}
