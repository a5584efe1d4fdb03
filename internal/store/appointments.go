package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nailbook/internal/domain"
)

// AppointmentFilter narrows a listing. Zero values mean "any".
type AppointmentFilter struct {
	StaffID uuid.UUID
	// Day, when set, restricts results to [Day, Day+24h). Callers pass
	// midnight UTC.
	Day *time.Time
}

// AppointmentPatch carries the optional fields of a partial update. Only
// non-nil fields are applied.
type AppointmentPatch struct {
	Status *domain.AppointmentStatus
	Notes  *string
}

type AppointmentRepository interface {
	// Create inserts the appointment after re-checking the staff member's
	// schedule under a per-staff lock. Returns ErrConflict when the window
	// overlaps a blocking appointment.
	Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]domain.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, patch AppointmentPatch) (domain.Appointment, error)
	HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
}
