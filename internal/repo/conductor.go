package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/diones-souza/test-snaty/internal/domain"
)

// ConductorRepo defines the persistence operations for Conductors.
type ConductorRepo interface {
	Create(ctx context.Context, c domain.Conductor) (domain.Conductor, error)
	GetByID(ctx context.Context, id int64) (domain.Conductor, error)
	List(ctx context.Context) ([]domain.Conductor, error)
	Delete(ctx context.Context, id int64) error
}

type pgConductorRepo struct {
	db db
}

// NewConductorRepo constructs a ConductorRepo backed by the provided db connection.
func NewConductorRepo(db db) ConductorRepo {
	return &pgConductorRepo{db: db}
}

const conductorColumns = `id, name, license_number, license_category, license_expiry, created_at`

func (r *pgConductorRepo) Create(ctx context.Context, c domain.Conductor) (domain.Conductor, error) {
	q := `
		INSERT INTO conductors (name, license_number, license_category, license_expiry)
		VALUES (@name, @license_number, @license_category, @license_expiry)
		RETURNING ` + conductorColumns

	args := pgx.NamedArgs{
		"name":             c.Name,
		"license_number":   c.LicenseNumber,
		"license_category": c.LicenseCategory,
		"license_expiry":   c.LicenseExpiry, // nil becomes NULL
	}

	result, err := scanConductor(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Conductor{}, fmt.Errorf("repo.ConductorRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgConductorRepo) GetByID(ctx context.Context, id int64) (domain.Conductor, error) {
	q := `SELECT ` + conductorColumns + ` FROM conductors WHERE id = @id`

	result, err := scanConductor(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Conductor{}, fmt.Errorf("repo.ConductorRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgConductorRepo) List(ctx context.Context) ([]domain.Conductor, error) {
	rows, err := r.db.Query(ctx, `SELECT `+conductorColumns+` FROM conductors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repo.ConductorRepo.List: %w", err)
	}
	out, err := collect(rows, scanConductor)
	if err != nil {
		return nil, fmt.Errorf("repo.ConductorRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgConductorRepo) Delete(ctx context.Context, id int64) error {
	ok, err := deleteByID(ctx, r.db, `DELETE FROM conductors WHERE id = @id`, id)
	if err != nil {
		return fmt.Errorf("repo.ConductorRepo.Delete: %w", err)
	}
	if !ok {
		return fmt.Errorf("repo.ConductorRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanConductor(s scanner) (domain.Conductor, error) {
	var (
		c      domain.Conductor
		expiry pgtype.Date
	)
	err := s.Scan(&c.ID, &c.Name, &c.LicenseNumber, &c.LicenseCategory, &expiry, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Conductor{}, domain.ErrNotFound
		}
		return domain.Conductor{}, err
	}
	if expiry.Valid {
		t := expiry.Time
		c.LicenseExpiry = &t
	}
	return c, nil
}
