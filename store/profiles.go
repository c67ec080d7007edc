package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bikerz-heaven/models"
)

// ProfileStore persists user profiles keyed by email. A profile upsert is a
// top-level field union with whatever document already exists.
type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (models.UserProfile, error)
	Upsert(ctx context.Context, profile models.UserProfile) (*mongo.UpdateResult, error)
}

type mongoProfileStore struct {
	collection *mongo.Collection
}

// NewProfileStore creates a ProfileStore over the given collection.
func NewProfileStore(collection *mongo.Collection) ProfileStore {
	return &mongoProfileStore{collection: collection}
}

func (s *mongoProfileStore) GetByEmail(ctx context.Context, email string) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *mongoProfileStore) Upsert(ctx context.Context, profile models.UserProfile) (*mongo.UpdateResult, error) {
	return s.collection.UpdateOne(ctx,
		bson.M{"email": profile.Email()},
		bson.M{"$set": bson.M(profile)},
		options.Update().SetUpsert(true),
	)
}
