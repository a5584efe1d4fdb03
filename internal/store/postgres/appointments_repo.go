package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"nailbook/internal/domain"
	"nailbook/internal/store"
)

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

type scheduleTx struct {
	tx bun.Tx
}

// Create runs the overlap check and the insert inside one per-staff
// transaction so concurrent creates for the same staff member serialize.
func (r *AppointmentRepo) Create(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	var out domain.Appointment
	err := r.InStaffTransaction(ctx, appt.StaffID, func(ctx context.Context, tx store.ScheduleTx) error {
		a, err := createAppointmentInTx(ctx, tx, appt)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return domain.Appointment{}, err
	}
	return out, nil
}

func createAppointmentInTx(ctx context.Context, tx store.ScheduleTx, appt domain.Appointment) (domain.Appointment, error) {
	busy, err := tx.HasOverlap(ctx, appt.StaffID, appt.StartTime, appt.EndTime, uuid.Nil)
	if err != nil {
		return domain.Appointment{}, err
	}
	if busy {
		return domain.Appointment{}, store.ErrConflict
	}
	return tx.CreateAppointment(ctx, appt)
}

func (r *AppointmentRepo) Get(ctx context.Context, id uuid.UUID) (domain.Appointment, error) {
	var appt domain.Appointment
	err := r.db.NewSelect().
		Model(&appt).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (r *AppointmentRepo) List(ctx context.Context, filter store.AppointmentFilter) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	q := r.db.NewSelect().Model(&rows)
	if filter.StaffID != uuid.Nil {
		q = q.Where("staff_id = ?", filter.StaffID)
	}
	if filter.Day != nil {
		day := filter.Day.UTC()
		q = q.Where("start_time >= ?", day).
			Where("start_time < ?", day.Add(24*time.Hour))
	}
	if err := q.OrderExpr("start_time ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id uuid.UUID, patch store.AppointmentPatch) (domain.Appointment, error) {
	q := r.db.NewUpdate().
		Model((*domain.Appointment)(nil)).
		Where("id = ?", id).
		Set("updated_at = ?", time.Now().UTC())
	if patch.Status != nil {
		q = q.Set("status = ?", *patch.Status)
	}
	if patch.Notes != nil {
		q = q.Set("notes = ?", *patch.Notes)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		// Reactivating a canceled appointment into a window that has since
		// been taken trips the exclusion constraint.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "appointments_no_overlap" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Appointment{}, err
	}
	if affected == 0 {
		return domain.Appointment{}, store.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *AppointmentRepo) HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	return hasOverlap(ctx, r.db, staffID, start, end, excludeID)
}

func (r *AppointmentRepo) InStaffTransaction(ctx context.Context, staffID uuid.UUID, fn func(ctx context.Context, tx store.ScheduleTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockStaffSchedule(ctx, tx, staffID); err != nil {
			return err
		}
		return fn(ctx, scheduleTx{tx: tx})
	})
}

func lockStaffSchedule(ctx context.Context, tx bun.Tx, staffID uuid.UUID) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", staffID.String()).Exec(ctx)
	return err
}

func (t scheduleTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := appt
	_, err := t.tx.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23P01" && pgErr.ConstraintName == "appointments_no_overlap" {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}
	return m, nil
}

func (t scheduleTx) HasOverlap(ctx context.Context, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	return hasOverlap(ctx, t.tx, staffID, start, end, excludeID)
}

// hasOverlap applies the half-open interval test: an existing appointment
// conflicts when existing.start_time < end AND existing.end_time > start.
// Only blocking statuses count; canceled appointments free their window.
func hasOverlap(ctx context.Context, idb bun.IDB, staffID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	q := idb.NewSelect().
		Model((*domain.Appointment)(nil)).
		Where("staff_id = ?", staffID).
		Where("status IN (?)", bun.In(domain.BlockingStatuses)).
		Where("start_time < ?", end).
		Where("end_time > ?", start)
	if excludeID != uuid.Nil {
		q = q.Where("id != ?", excludeID)
	}

	n, err := q.Count(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
