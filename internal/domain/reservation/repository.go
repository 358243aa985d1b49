package reservation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

// Repository is the document-store contract the reservation use cases depend
// on. Read methods expand the client reference; a dangling reference leaves
// the Client field nil rather than failing.
type Repository interface {
	List(ctx context.Context) ([]models.Reservation, error)

	GetByID(
		ctx context.Context,
		id primitive.ObjectID,
	) (*models.Reservation, error)

	Exists(
		ctx context.Context,
		id primitive.ObjectID,
	) (bool, error)

	Insert(
		ctx context.Context,
		rv *models.Reservation,
	) error

	Update(
		ctx context.Context,
		id primitive.ObjectID,
		rv *models.Reservation,
	) (*models.Reservation, error)

	Delete(
		ctx context.Context,
		id primitive.ObjectID,
	) error
}
