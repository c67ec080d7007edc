package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bikerz-heaven/models"
)

// ReviewStore persists reviews. Append-only.
type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	Insert(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error)
}

type mongoReviewStore struct {
	collection *mongo.Collection
}

// NewReviewStore creates a ReviewStore over the given collection.
func NewReviewStore(collection *mongo.Collection) ReviewStore {
	return &mongoReviewStore{collection: collection}
}

func (s *mongoReviewStore) List(ctx context.Context) ([]models.Review, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *mongoReviewStore) Insert(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, review)
}
