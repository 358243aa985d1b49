package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation books a vehicle in for a service. Client carries the referenced
// client document when the read path expands it; it is never written back.
type Reservation struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	ClientID primitive.ObjectID `bson:"clientId" json:"clientId"`
	Vehicle  string             `bson:"vehicle" json:"vehicle"`
	Service  string             `bson:"service" json:"service"`
	Status   string             `bson:"status" json:"status"`

	Client *Client `bson:"client,omitempty" json:"client,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
