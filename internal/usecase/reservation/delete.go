package reservation

import (
	"context"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/reservation"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	exists, err := uc.repo.Exists(ctx, oid)
	if err != nil {
		return err
	}
	if !exists {
		return httperr.ErrNotFound("reservation_not_found", "Reservation not found")
	}

	if err := uc.repo.Delete(ctx, oid); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: oid.Hex(),
	})

	return nil
}
