package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order reserves a quantity of a Part for a user. ProductID is a plain
// reference: the part may be deleted later and the order keeps pointing
// at it.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID     primitive.ObjectID `bson:"productId" json:"productId"`
	PartName      string             `bson:"partName,omitempty" json:"partName,omitempty"`
	OrderQuantity int64              `bson:"orderQuantity" json:"orderQuantity"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Payment       string             `bson:"payment,omitempty" json:"payment,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
