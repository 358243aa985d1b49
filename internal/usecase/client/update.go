package client

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Aaron23010705/vehicle-service-api/internal/audit"
	domain "github.com/Aaron23010705/vehicle-service-api/internal/domain/client"
	"github.com/Aaron23010705/vehicle-service-api/internal/httperr"
	"github.com/Aaron23010705/vehicle-service-api/internal/models"
)

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute validates the full payload before it checks that the target exists,
// mirroring the create path, then overwrites every stored field.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	id string,
	in Fields,
) (*models.Client, error) {

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	if err := validateFields(in); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, httperr.ErrNotFound("client_not_found",
			"Client doesn't exist, can't update")
	}

	email := normalizeEmail(in.Email)

	inUse, err := uc.repo.EmailInUseByOther(ctx, email, oid)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, httperr.Conflict("email_in_use",
			"Email is already being used by another client")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, oid, &models.Client{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Phone:    in.Phone,
		Age:      int(*in.Age),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, httperr.ErrNotFound("client_not_found",
			"Client doesn't exist, can't update")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_updated",
		Entity:   "client",
		EntityID: oid.Hex(),
	})

	return updated, nil
}
