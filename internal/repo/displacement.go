package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/diones-souza/test-snaty/internal/domain"
)

// DisplacementRepo defines the persistence operations for Displacements.
// The service layer depends on this interface, not the Postgres implementation,
// which allows the service to be unit-tested with a mock.
type DisplacementRepo interface {
	// Create inserts a new, open displacement and returns the persisted record
	// (with DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, d domain.Displacement) (domain.Displacement, error)

	// GetByID retrieves a single displacement by id.
	// Returns domain.ErrNotFound if no displacement with that id exists.
	GetByID(ctx context.Context, id int64) (domain.Displacement, error)

	// List returns all displacements ordered by start_time descending.
	List(ctx context.Context) ([]domain.Displacement, error)

	// Close writes the closing fields of an open displacement.
	// Start-side columns are never touched. Returns domain.ErrNotFound if no
	// open displacement with that id exists.
	Close(ctx context.Context, c domain.Closing) (domain.Displacement, error)

	// Delete removes a displacement by id. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgDisplacementRepo is the Postgres implementation of DisplacementRepo.
type pgDisplacementRepo struct {
	db db
}

// NewDisplacementRepo constructs a DisplacementRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDisplacementRepo(db db) DisplacementRepo {
	return &pgDisplacementRepo{db: db}
}

const displacementColumns = `id, start_odometer, end_odometer, start_time, end_time,
	checklist, reason, notes, conductor_id, vehicle_id, client_id, created_at, updated_at`

// Create inserts a new displacement row and returns the full persisted record.
func (r *pgDisplacementRepo) Create(ctx context.Context, d domain.Displacement) (domain.Displacement, error) {
	q := `
		INSERT INTO displacements (start_odometer, start_time, checklist, reason, notes,
			conductor_id, vehicle_id, client_id)
		VALUES (@start_odometer, @start_time, @checklist, @reason, @notes,
			@conductor_id, @vehicle_id, @client_id)
		RETURNING ` + displacementColumns

	args := pgx.NamedArgs{
		"start_odometer": d.StartOdometer,
		"start_time":     d.StartTime,
		"checklist":      d.Checklist,
		"reason":         d.Reason,
		"notes":          d.Notes,
		"conductor_id":   d.ConductorID,
		"vehicle_id":     d.VehicleID,
		"client_id":      d.ClientID,
	}

	result, err := scanDisplacement(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("repo.DisplacementRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a displacement by primary key.
func (r *pgDisplacementRepo) GetByID(ctx context.Context, id int64) (domain.Displacement, error) {
	q := `SELECT ` + displacementColumns + ` FROM displacements WHERE id = @id`

	result, err := scanDisplacement(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("repo.DisplacementRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all displacements, most recent start first.
func (r *pgDisplacementRepo) List(ctx context.Context) ([]domain.Displacement, error) {
	q := `SELECT ` + displacementColumns + ` FROM displacements ORDER BY start_time DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DisplacementRepo.List: %w", err)
	}
	out, err := collect(rows, scanDisplacement)
	if err != nil {
		return nil, fmt.Errorf("repo.DisplacementRepo.List: %w", err)
	}
	return out, nil
}

// Close sets the closing columns, guarded so an already closed row is not
// rewritten by a concurrent close.
func (r *pgDisplacementRepo) Close(ctx context.Context, c domain.Closing) (domain.Displacement, error) {
	q := `
		UPDATE displacements
		SET end_odometer = @end_odometer,
		    end_time     = @end_time,
		    notes        = @notes,
		    updated_at   = now()
		WHERE id = @id
		  AND (end_odometer IS NULL OR end_odometer = 0)
		RETURNING ` + displacementColumns

	args := pgx.NamedArgs{
		"id":           c.ID,
		"end_odometer": c.EndOdometer,
		"end_time":     c.EndTime,
		"notes":        c.Notes,
	}

	result, err := scanDisplacement(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("repo.DisplacementRepo.Close: %w", err)
	}
	return result, nil
}

// Delete removes a displacement by primary key.
func (r *pgDisplacementRepo) Delete(ctx context.Context, id int64) error {
	ok, err := deleteByID(ctx, r.db, `DELETE FROM displacements WHERE id = @id`, id)
	if err != nil {
		return fmt.Errorf("repo.DisplacementRepo.Delete: %w", err)
	}
	if !ok {
		return fmt.Errorf("repo.DisplacementRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDisplacement maps a single database row into a domain.Displacement.
// It handles the nullable end_odometer and end_time columns.
func scanDisplacement(s scanner) (domain.Displacement, error) {
	var (
		d       domain.Displacement
		endKm   pgtype.Float8
		endTime pgtype.Timestamptz
	)

	err := s.Scan(&d.ID, &d.StartOdometer, &endKm, &d.StartTime, &endTime,
		&d.Checklist, &d.Reason, &d.Notes, &d.ConductorID, &d.VehicleID, &d.ClientID,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Displacement{}, domain.ErrNotFound
		}
		return domain.Displacement{}, err
	}

	if endKm.Valid {
		v := endKm.Float64
		d.EndOdometer = &v
	}
	if endTime.Valid {
		t := endTime.Time
		d.EndTime = &t
	}
	return d, nil
}
