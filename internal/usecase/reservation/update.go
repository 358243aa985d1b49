package reservation

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/reservation"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the full payload before the existence check, then
// overwrites all four stored fields and returns the record with its client
// reference expanded.
func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id string,
	in Fields,
) (*models.Reservation, error) {

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if err := validateFields(in); err != nil {
		return nil, err
	}

	exists, err := uc.repo.Exists(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("reservation_not_found",
			"Reservation doesn't exist, can't update")
	}

	clientID, _ := primitive.ObjectIDFromHex(in.ClientID)

	updated, err := uc.repo.Update(ctx, oid, &models.Reservation{
		ClientID: clientID,
		Vehicle:  strings.TrimSpace(in.Vehicle),
		Service:  strings.TrimSpace(in.Service),
		Status:   normalizeStatus(in.Status),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, httperr.ErrNotFound("reservation_not_found",
			"Reservation doesn't exist, can't update")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: oid.Hex(),
	})

	return updated, nil
}
