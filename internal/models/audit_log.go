package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuditLog struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Action   string `bson:"action" json:"action"`
	Entity   string `bson:"entity" json:"entity"`
	EntityID string `bson:"entityId" json:"entityId"`
	Metadata string `bson:"metadata,omitempty" json:"metadata,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
