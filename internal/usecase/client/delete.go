package client

import (
	"context"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/client"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client only. Reservations referencing it are left in
// place; reads expand their reference best-effort.
func (uc *DeleteClient) Execute(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	existing, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if existing == nil {
		return httperr.ErrNotFound("client_not_found", "Client not found")
	}

	if err := uc.repo.Delete(ctx, oid); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: oid.Hex(),
	})

	return nil
}
