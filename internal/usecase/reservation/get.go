package reservation

import (
	"context"

	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/reservation"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(ctx context.Context, id string) (*models.Reservation, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	rv, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, httperr.ErrNotFound("reservation_not_found", "Reservation not found")
	}

	return rv, nil
}
