package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bikerz-heaven/models"
)

// UserStore persists user accounts keyed by email.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Upsert sets the given fields on the user document for email, creating
	// it when absent. Fields never include the role: that is GrantAdmin's
	// job only.
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*mongo.UpdateResult, error)

	// GrantAdmin elevates the user to the admin role.
	GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error)
}

type mongoUserStore struct {
	collection *mongo.Collection
}

// NewUserStore creates a UserStore over the given collection.
func NewUserStore(collection *mongo.Collection) UserStore {
	return &mongoUserStore{collection: collection}
}

func (s *mongoUserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*mongo.UpdateResult, error) {
	set := bson.M{"email": email}
	for k, v := range fields {
		set[k] = v
	}
	return s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
}

func (s *mongoUserStore) GrantAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	return s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
}
