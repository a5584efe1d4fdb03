package store

import (
	"context"

	"github.com/google/uuid"

	"nailbook/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c domain.Client) (domain.Client, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s domain.Staff) (domain.Staff, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, s domain.Service) (domain.Service, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Service, error)
	// List returns active services unless includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]domain.Service, error)
}
