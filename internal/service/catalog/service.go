package catalog

import (
	"context"
	"net/mail"
	"strings"

	"nailbook/internal/domain"
	"nailbook/internal/store"
)

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

type Service struct {
	clients  store.ClientRepository
	staff    store.StaffRepository
	services store.ServiceRepository
}

func NewService(clients store.ClientRepository, staff store.StaffRepository, services store.ServiceRepository) *Service {
	return &Service{clients: clients, staff: staff, services: services}
}

type CreateClientInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (domain.Client, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Client{}, validationError("name is required")
	}
	phone := strings.TrimSpace(in.Phone)
	if phone == "" {
		return domain.Client{}, validationError("phone is required")
	}
	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return domain.Client{}, validationError("invalid email address")
		}
	}

	return s.clients.Create(ctx, domain.Client{
		Name:  name,
		Phone: phone,
		Email: email,
		Notes: in.Notes,
	})
}

func (s *Service) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

type CreateStaffInput struct {
	Name        string
	Specialties []string
	// Active defaults to true when unset.
	Active *bool
}

func (s *Service) CreateStaff(ctx context.Context, in CreateStaffInput) (domain.Staff, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Staff{}, validationError("name is required")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}
	specialties := in.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return s.staff.Create(ctx, domain.Staff{
		Name:        name,
		Specialties: specialties,
		Active:      active,
	})
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	staff, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		staff = []domain.Staff{}
	}
	return staff, nil
}

type CreateServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Active          *bool
}

func (s *Service) CreateService(ctx context.Context, in CreateServiceInput) (domain.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.Service{}, validationError("name is required")
	}
	if in.DurationMinutes < domain.MinServiceDurationMinutes || in.DurationMinutes > domain.MaxServiceDurationMinutes {
		return domain.Service{}, validationError("duration_minutes must be between 5 and 480")
	}
	if in.Price < 0 {
		return domain.Service{}, validationError("price must not be negative")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	return s.services.Create(ctx, domain.Service{
		Name:            name,
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Price:           in.Price,
		Active:          active,
	})
}

func (s *Service) ListServices(ctx context.Context, includeInactive bool) ([]domain.Service, error) {
	services, err := s.services.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}
	return services, nil
}
