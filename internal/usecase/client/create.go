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

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateClient) Execute(ctx context.Context, in Fields) error {
	if err := validateFields(in); err != nil {
		return err
	}

	email := normalizeEmail(in.Email)

	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return httperr.Conflict("client_exists", "Client already exists")
	}

	// Hash before it ever reaches the store. Validation already ran against
	// the raw password.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cl := &models.Client{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Phone:    in.Phone,
		Age:      int(*in.Age),
	}

	if err := uc.repo.Insert(ctx, cl); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: cl.ID.Hex(),
	})

	return nil
}
