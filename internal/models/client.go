package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a registered customer of the workshop. The password is stored as
// a bcrypt hash and never serialized back out.
type Client struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	Phone    string `bson:"phone" json:"phone"`
	Age      int    `bson:"age" json:"age"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
