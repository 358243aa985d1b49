package reservation

import (
	"context"

	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/reservation"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) Execute(ctx context.Context) ([]models.Reservation, error) {
	return uc.repo.List(ctx)
}
