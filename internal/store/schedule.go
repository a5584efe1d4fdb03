package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"nailbook/internal/domain"
)

// ScheduleTx is the set of operations available inside a per-staff
// schedule transaction. The lock serializes check-and-insert sequences for
// one staff member so two concurrent creates cannot both pass the overlap
// check.
type ScheduleTx interface {
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	// HasOverlap counts blocking appointments for staffID whose half-open
	// [start, end) window intersects the given one. excludeID, when not
	// uuid.Nil, leaves that appointment out of the count.
	HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
}
