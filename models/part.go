package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Part represents a bike part in the catalog with a tracked stock count.
// AvailableQuantity is adjusted atomically by the order lifecycle.
type Part struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Image             string             `bson:"img,omitempty" json:"img,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Price             float64            `bson:"price" json:"price"`
	MinOrderQuantity  int64              `bson:"minOrderQuantity,omitempty" json:"minOrderQuantity,omitempty"`
	AvailableQuantity int64              `bson:"availableQuantity" json:"availableQuantity"`
}
