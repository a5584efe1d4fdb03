package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// Blocks reports whether an appointment in this status occupies the staff
// member's schedule for overlap purposes. Canceled appointments never block.
func (s AppointmentStatus) Blocks() bool {
	return s == StatusBooked || s == StatusCompleted
}

// BlockingStatuses are the statuses considered by the overlap check.
var BlockingStatuses = []AppointmentStatus{StatusBooked, StatusCompleted}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID        uuid.UUID         `bun:"id,pk,type:uuid"`
	ClientID  uuid.UUID         `bun:"client_id,notnull,type:uuid"`
	StaffID   uuid.UUID         `bun:"staff_id,notnull,type:uuid"`
	ServiceID uuid.UUID         `bun:"service_id,notnull,type:uuid"`
	StartTime time.Time         `bun:"start_time,notnull"`
	EndTime   time.Time         `bun:"end_time,notnull"`
	Status    AppointmentStatus `bun:"status,notnull"`
	Notes     string            `bun:"notes"`
	CreatedAt time.Time         `bun:"created_at,notnull"`
	UpdatedAt time.Time         `bun:"updated_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

// Overlaps reports whether the half-open intervals [a.StartTime, a.EndTime)
// and [start, end) intersect. Back-to-back windows do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
