package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bikerz-heaven/models"
)

// OrderStore persists orders.
type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Insert(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error)
}

type mongoOrderStore struct {
	collection *mongo.Collection
}

// NewOrderStore creates an OrderStore over the given collection.
func NewOrderStore(collection *mongo.Collection) OrderStore {
	return &mongoOrderStore{collection: collection}
}

func (s *mongoOrderStore) List(ctx context.Context) ([]models.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoOrderStore) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	return s.find(ctx, bson.M{"email": email})
}

func (s *mongoOrderStore) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrderStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	if err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *mongoOrderStore) Insert(ctx context.Context, order models.Order) (*mongo.InsertOneResult, error) {
	return s.collection.InsertOne(ctx, order)
}

func (s *mongoOrderStore) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return s.collection.DeleteOne(ctx, bson.M{"_id": id})
}

func (s *mongoOrderStore) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (*mongo.UpdateResult, error) {
	return s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"payment": status},
	})
}
