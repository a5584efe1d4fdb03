package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"nailbook/internal/domain"
	"nailbook/internal/store"
)

type fakeScheduleTx struct {
	hasOverlapFn func(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
	createFn     func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}

func (f *fakeScheduleTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	if f.createFn == nil {
		panic("CreateAppointment not configured")
	}
	return f.createFn(ctx, appt)
}

func (f *fakeScheduleTx) HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	if f.hasOverlapFn == nil {
		panic("HasOverlap not configured")
	}
	return f.hasOverlapFn(ctx, staffID, start, end, excludeID)
}

func TestCreateAppointmentInTx_ConflictWhenWindowBusy(t *testing.T) {
	inserted := false
	tx := &fakeScheduleTx{
		hasOverlapFn: func(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			inserted = true
			return appt, nil
		},
	}

	_, err := createAppointmentInTx(context.Background(), tx, domain.Appointment{
		StaffID:   uuid.MustParse("00000000-0000-0000-0000-000000000002"),
		StartTime: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
		Status:    domain.StatusBooked,
	})
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want store.ErrConflict", err)
	}
	if inserted {
		t.Fatalf("expected no insert when the window is busy")
	}
}

func TestCreateAppointmentInTx_ChecksExactWindowWithoutExclusion(t *testing.T) {
	staffID := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	start := time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	var gotStaff, gotExclude uuid.UUID
	var gotStart, gotEnd time.Time
	tx := &fakeScheduleTx{
		hasOverlapFn: func(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
			gotStaff, gotExclude = staffID, excludeID
			gotStart, gotEnd = start, end
			return false, nil
		},
		createFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			return appt, nil
		},
	}

	_, err := createAppointmentInTx(context.Background(), tx, domain.Appointment{
		StaffID:   staffID,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusBooked,
	})
	if err != nil {
		t.Fatalf("createAppointmentInTx error: %v", err)
	}
	if gotStaff != staffID {
		t.Fatalf("staff = %v, want %v", gotStaff, staffID)
	}
	if !gotStart.Equal(start) || !gotEnd.Equal(end) {
		t.Fatalf("window = [%v, %v), want [%v, %v)", gotStart, gotEnd, start, end)
	}
	if gotExclude != uuid.Nil {
		t.Fatalf("excludeID = %v, want uuid.Nil", gotExclude)
	}
}

func TestCreateAppointmentInTx_OverlapErrorStopsInsert(t *testing.T) {
	boom := errors.New("boom")
	inserted := false
	tx := &fakeScheduleTx{
		hasOverlapFn: func(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
			return false, boom
		},
		createFn: func(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
			inserted = true
			return appt, nil
		},
	}

	_, err := createAppointmentInTx(context.Background(), tx, domain.Appointment{})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if inserted {
		t.Fatalf("expected no insert after a failed overlap check")
	}
}
