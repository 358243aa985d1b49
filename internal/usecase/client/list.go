package client

import (
	"context"

	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/client"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context) ([]models.Client, error) {
	return uc.repo.List(ctx)
}
