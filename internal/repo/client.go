package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/diones-souza/test-snaty/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// Create inserts a client and returns the persisted record.
	Create(ctx context.Context, c domain.Client) (domain.Client, error)

	// GetByID returns domain.ErrNotFound if no client with that id exists.
	GetByID(ctx context.Context, id int64) (domain.Client, error)

	// List returns all clients ordered by id.
	List(ctx context.Context) ([]domain.Client, error)

	// Delete returns domain.ErrNotFound if no client with that id exists.
	Delete(ctx context.Context, id int64) error
}

type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

const clientColumns = `id, name, document_number, document_type, street, number, district, city, state, created_at`

func (r *pgClientRepo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	q := `
		INSERT INTO clients (name, document_number, document_type, street, number, district, city, state)
		VALUES (@name, @document_number, @document_type, @street, @number, @district, @city, @state)
		RETURNING ` + clientColumns

	args := pgx.NamedArgs{
		"name":            c.Name,
		"document_number": c.DocumentNumber,
		"document_type":   c.DocumentType,
		"street":          c.Street,
		"number":          c.Number,
		"district":        c.District,
		"city":            c.City,
		"state":           c.State,
	}

	result, err := scanClient(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgClientRepo) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	q := `SELECT ` + clientColumns + ` FROM clients WHERE id = @id`

	result, err := scanClient(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repo.ClientRepo.List: %w", err)
	}
	out, err := collect(rows, scanClient)
	if err != nil {
		return nil, fmt.Errorf("repo.ClientRepo.List: %w", err)
	}
	return out, nil
}

func (r *pgClientRepo) Delete(ctx context.Context, id int64) error {
	ok, err := deleteByID(ctx, r.db, `DELETE FROM clients WHERE id = @id`, id)
	if err != nil {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", err)
	}
	if !ok {
		return fmt.Errorf("repo.ClientRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanClient(s scanner) (domain.Client, error) {
	var c domain.Client
	err := s.Scan(&c.ID, &c.Name, &c.DocumentNumber, &c.DocumentType,
		&c.Street, &c.Number, &c.District, &c.City, &c.State, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, domain.ErrNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}
