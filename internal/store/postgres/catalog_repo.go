package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"nailbook/internal/domain"
	"nailbook/internal/store"
)

type ClientRepo struct {
	db *bun.DB
}

func NewClientRepo(db *bun.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	m := c
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Client{}, err
	}
	return m, nil
}

func (r *ClientRepo) Get(ctx context.Context, id uuid.UUID) (domain.Client, error) {
	var c domain.Client
	err := r.db.NewSelect().Model(&c).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, store.ErrNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var rows []domain.Client
	err := r.db.NewSelect().Model(&rows).OrderExpr("name ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type StaffRepo struct {
	db *bun.DB
}

func NewStaffRepo(db *bun.DB) *StaffRepo {
	return &StaffRepo{db: db}
}

func (r *StaffRepo) Create(ctx context.Context, s domain.Staff) (domain.Staff, error) {
	m := s
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Staff{}, err
	}
	return m, nil
}

func (r *StaffRepo) Get(ctx context.Context, id uuid.UUID) (domain.Staff, error) {
	var s domain.Staff
	err := r.db.NewSelect().Model(&s).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Staff{}, store.ErrNotFound
		}
		return domain.Staff{}, err
	}
	return s, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	var rows []domain.Staff
	err := r.db.NewSelect().Model(&rows).OrderExpr("name ASC").Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type ServiceRepo struct {
	db *bun.DB
}

func NewServiceRepo(db *bun.DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

func (r *ServiceRepo) Create(ctx context.Context, s domain.Service) (domain.Service, error) {
	m := s
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Service{}, err
	}
	return m, nil
}

func (r *ServiceRepo) Get(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	var s domain.Service
	err := r.db.NewSelect().Model(&s).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Service{}, store.ErrNotFound
		}
		return domain.Service{}, err
	}
	return s, nil
}

func (r *ServiceRepo) List(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	var rows []domain.Service
	q := r.db.NewSelect().Model(&rows)
	if !includeInactive {
		q = q.Where("active")
	}
	if err := q.OrderExpr("name ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}
