package client

import (
	"context"

	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/client"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(ctx context.Context, id string) (*models.Client, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	cl, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, httperr.ErrNotFound("client_not_found", "Client not found")
	}

	return cl, nil
}
