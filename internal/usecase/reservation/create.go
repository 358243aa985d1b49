package reservation

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/reservation"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReservation) Execute(ctx context.Context, in Fields) error {
	if err := validateFields(in); err != nil {
		return err
	}

	// Shape was already validated, so this cannot fail.
	clientID, _ := primitive.ObjectIDFromHex(in.ClientID)

	rv := &models.Reservation{
		ClientID: clientID,
		Vehicle:  strings.TrimSpace(in.Vehicle),
		Service:  strings.TrimSpace(in.Service),
		Status:   normalizeStatus(in.Status),
	}

	if err := uc.repo.Insert(ctx, rv); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: rv.ID.Hex(),
	})

	return nil
}
