// Package store provides MongoDB-backed persistence for the Bikerz Heaven
// collections behind small per-entity interfaces, so handlers can be
// exercised against in-memory fakes.
package store

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names in the bikerz_heaven database.
const (
	partsCollection    = "bikeParts"
	ordersCollection   = "orders"
	reviewsCollection  = "reviews"
	usersCollection    = "users"
	profilesCollection = "usersProfile"
)

// Stores bundles one store per collection.
type Stores struct {
	Parts    PartStore
	Orders   OrderStore
	Reviews  ReviewStore
	Users    UserStore
	Profiles ProfileStore
}

// NewStores wires all stores against the given database.
func NewStores(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	return &Stores{
		Parts:    NewPartStore(db.Collection(partsCollection)),
		Orders:   NewOrderStore(db.Collection(ordersCollection)),
		Reviews:  NewReviewStore(db.Collection(reviewsCollection)),
		Users:    NewUserStore(db.Collection(usersCollection)),
		Profiles: NewProfileStore(db.Collection(profilesCollection)),
	}
}
