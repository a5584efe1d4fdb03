package scheduling

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"nailbook/internal/domain"
	"nailbook/internal/store"
)

type Service struct {
	appts    store.AppointmentRepository
	clients  store.ClientRepository
	staff    store.StaffRepository
	services store.ServiceRepository
}

func NewService(
	appts store.AppointmentRepository,
	clients store.ClientRepository,
	staff store.StaffRepository,
	services store.ServiceRepository,
) *Service {
	return &Service{
		appts:    appts,
		clients:  clients,
		staff:    staff,
		services: services,
	}
}

type CreateInput struct {
	ClientID  string
	StaffID   string
	ServiceID string
	StartTime time.Time
	Notes     string
}

// Create books an appointment. References are resolved in client, staff,
// service order and the first failure wins. The end time is always derived
// from the service's duration, never accepted from the caller, so a short
// declared window cannot dodge the overlap check.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Appointment, error) {
	if in.StartTime.IsZero() {
		return domain.Appointment{}, validationError("start_time is required")
	}

	clientID, ok := parseID(in.ClientID)
	if !ok {
		return domain.Appointment{}, notFound("Client")
	}
	if _, err := s.clients.Get(ctx, clientID); err != nil {
		return domain.Appointment{}, resolveErr(err, "Client")
	}

	staffID, ok := parseID(in.StaffID)
	if !ok {
		return domain.Appointment{}, notFound("Staff")
	}
	if _, err := s.staff.Get(ctx, staffID); err != nil {
		return domain.Appointment{}, resolveErr(err, "Staff")
	}

	serviceID, ok := parseID(in.ServiceID)
	if !ok {
		return domain.Appointment{}, notFound("Service")
	}
	svc, err := s.services.Get(ctx, serviceID)
	if err != nil {
		return domain.Appointment{}, resolveErr(err, "Service")
	}

	start := in.StartTime.UTC()
	end := start.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	appt := domain.Appointment{
		ClientID:  clientID,
		StaffID:   staffID,
		ServiceID: serviceID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusBooked,
		Notes:     in.Notes,
	}

	return s.appts.Create(ctx, appt)
}

type ListQuery struct {
	// Date, when non-empty, is a YYYY-MM-DD calendar day; results are
	// restricted to appointments starting within that day (UTC).
	Date    string
	StaffID string
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]domain.Appointment, error) {
	var filter store.AppointmentFilter

	if q.Date != "" {
		day, err := time.Parse("2006-01-02", q.Date)
		if err != nil {
			return nil, validationError("invalid date format, expected YYYY-MM-DD")
		}
		day = day.UTC()
		filter.Day = &day
	}

	if q.StaffID != "" {
		staffID, ok := parseID(q.StaffID)
		if !ok {
			return nil, validationError("invalid staff_id")
		}
		filter.StaffID = staffID
	}

	appts, err := s.appts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if appts == nil {
		appts = []domain.Appointment{}
	}
	return appts, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain.Appointment, error) {
	apptID, ok := parseID(id)
	if !ok {
		return domain.Appointment{}, notFound("Appointment")
	}
	appt, err := s.appts.Get(ctx, apptID)
	if err != nil {
		return domain.Appointment{}, resolveErr(err, "Appointment")
	}
	return appt, nil
}

type UpdateInput struct {
	Status *string
	Notes  *string
}

// Update applies a partial status/notes edit. When neither field is set the
// stored record is returned untouched, with no write and no timestamp bump.
//
// A status change back to booked performs no overlap re-check; the schedule
// can be manually over-packed that way. See DESIGN.md.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (domain.Appointment, error) {
	apptID, ok := parseID(id)
	if !ok {
		return domain.Appointment{}, notFound("Appointment")
	}

	appt, err := s.appts.Get(ctx, apptID)
	if err != nil {
		return domain.Appointment{}, resolveErr(err, "Appointment")
	}

	if in.Status == nil && in.Notes == nil {
		return appt, nil
	}

	var patch store.AppointmentPatch
	if in.Status != nil {
		status := domain.AppointmentStatus(*in.Status)
		if !status.Valid() {
			return domain.Appointment{}, validationError("status must be one of booked, canceled, completed")
		}
		patch.Status = &status
	}
	patch.Notes = in.Notes

	updated, err := s.appts.Update(ctx, apptID, patch)
	if err != nil {
		return domain.Appointment{}, resolveErr(err, "Appointment")
	}
	return updated, nil
}

func parseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func resolveErr(err error, entity string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(entity)
	}
	return err
}
