package client

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

// Repository is the document-store contract the client use cases depend on.
// Lookups return (nil, nil) when no document matches.
type Repository interface {
	List(ctx context.Context) ([]models.Client, error)

	GetByID(
		ctx context.Context,
		id primitive.ObjectID,
	) (*models.Client, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	EmailInUseByOther(
		ctx context.Context,
		email string,
		id primitive.ObjectID,
	) (bool, error)

	Insert(
		ctx context.Context,
		cl *models.Client,
	) error

	Update(
		ctx context.Context,
		id primitive.ObjectID,
		cl *models.Client,
	) (*models.Client, error)

	Delete(
		ctx context.Context,
		id primitive.ObjectID,
	) error
}
