// Package service contains the business logic for the dispatch API.
// Services validate inputs, enforce the displacement lifecycle, and
// orchestrate repo calls. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/repo"
)

// DisplacementService implements the displacement lifecycle: a displacement
// is started open and closed exactly once.
// It holds the reference repos because starting a displacement requires the
// referenced client, conductor, and vehicle to exist.
type DisplacementService struct {
	displacements repo.DisplacementRepo
	clients       repo.ClientRepo
	conductors    repo.ConductorRepo
	vehicles      repo.VehicleRepo
	now           func() time.Time
}

// NewDisplacementService constructs a DisplacementService backed by the provided repos.
func NewDisplacementService(
	displacements repo.DisplacementRepo,
	clients repo.ClientRepo,
	conductors repo.ConductorRepo,
	vehicles repo.VehicleRepo,
) *DisplacementService {
	return &DisplacementService{
		displacements: displacements,
		clients:       clients,
		conductors:    conductors,
		vehicles:      vehicles,
		now:           time.Now,
	}
}

// WithClock replaces the time source used to stamp missing start and end times.
func (s *DisplacementService) WithClock(now func() time.Time) *DisplacementService {
	s.now = now
	return s
}

// Start validates and persists a new open displacement.
// A zero StartTime is stamped with the current time. Any closing fields on
// the input are ignored.
// Returns domain.ErrValidation if input violates business rules or a
// reference does not resolve.
func (s *DisplacementService) Start(ctx context.Context, d domain.Displacement) (domain.Displacement, error) {
	if d.StartOdometer < 0 {
		return domain.Displacement{}, fmt.Errorf("%w: kmInicial deve ser maior ou igual a zero", domain.ErrValidation)
	}
	if err := s.checkReferences(ctx, d); err != nil {
		return domain.Displacement{}, fmt.Errorf("service.DisplacementService.Start: %w", err)
	}

	d.ID = 0
	d.EndOdometer = nil
	d.EndTime = nil
	if d.StartTime.IsZero() {
		d.StartTime = s.now().UTC()
	}

	result, err := s.displacements.Create(ctx, d)
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("service.DisplacementService.Start: %w", err)
	}
	return result, nil
}

// Close records the closing reading of an open displacement.
// A nil EndTime is stamped with the current time.
// Returns domain.ErrNotFound if the displacement does not exist,
// domain.ErrConflict if it is already closed, and domain.ErrValidation for
// readings or times that precede the start.
func (s *DisplacementService) Close(ctx context.Context, c domain.Closing) (domain.Displacement, error) {
	current, err := s.displacements.GetByID(ctx, c.ID)
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("service.DisplacementService.Close: %w", err)
	}
	if !current.IsOpen() {
		return domain.Displacement{}, fmt.Errorf("%w: deslocamento %d já foi encerrado", domain.ErrConflict, c.ID)
	}
	if c.EndTime == nil {
		now := s.now().UTC()
		c.EndTime = &now
	}
	if err := validateClosing(current, c); err != nil {
		return domain.Displacement{}, err
	}

	result, err := s.displacements.Close(ctx, c)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Closed or deleted between the read and the write.
			return domain.Displacement{}, fmt.Errorf("%w: deslocamento %d já foi encerrado", domain.ErrConflict, c.ID)
		}
		return domain.Displacement{}, fmt.Errorf("service.DisplacementService.Close: %w", err)
	}
	return result, nil
}

// GetByID returns a single displacement by id.
func (s *DisplacementService) GetByID(ctx context.Context, id int64) (domain.Displacement, error) {
	result, err := s.displacements.GetByID(ctx, id)
	if err != nil {
		return domain.Displacement{}, fmt.Errorf("service.DisplacementService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all displacements, most recent start first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *DisplacementService) List(ctx context.Context) ([]domain.Displacement, error) {
	result, err := s.displacements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.DisplacementService.List: %w", err)
	}
	if result == nil {
		return []domain.Displacement{}, nil
	}
	return result, nil
}

// Delete removes a displacement by id, open or closed.
func (s *DisplacementService) Delete(ctx context.Context, id int64) error {
	if err := s.displacements.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.DisplacementService.Delete: %w", err)
	}
	return nil
}

// checkReferences verifies the client, conductor, and vehicle exist.
// A missing reference is a validation failure, not a 404: the displacement
// being created is the resource, not the reference.
func (s *DisplacementService) checkReferences(ctx context.Context, d domain.Displacement) error {
	exists := func(_ any, err error) error { return err }
	checks := []struct {
		field string
		id    int64
		get   func(id int64) error
	}{
		{"idCliente", d.ClientID, func(id int64) error { return exists(s.clients.GetByID(ctx, id)) }},
		{"idCondutor", d.ConductorID, func(id int64) error { return exists(s.conductors.GetByID(ctx, id)) }},
		{"idVeiculo", d.VehicleID, func(id int64) error { return exists(s.vehicles.GetByID(ctx, id)) }},
	}
	for _, c := range checks {
		if c.id <= 0 {
			return fmt.Errorf("%w: %s é obrigatório", domain.ErrValidation, c.field)
		}
		if err := c.get(c.id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: %s %d não encontrado", domain.ErrValidation, c.field, c.id)
			}
			return err
		}
	}
	return nil
}

// validateClosing enforces the closing rules against the stored displacement.
//   - kmFinal must be positive and not below kmInicial.
//   - fimDeslocamento must not precede inicioDeslocamento.
func validateClosing(current domain.Displacement, c domain.Closing) error {
	if c.EndOdometer <= 0 {
		return fmt.Errorf("%w: kmFinal deve ser maior que zero", domain.ErrValidation)
	}
	if c.EndOdometer < current.StartOdometer {
		return fmt.Errorf("%w: kmFinal deve ser maior ou igual ao kmInicial", domain.ErrValidation)
	}
	if c.EndTime.Before(current.StartTime) {
		return fmt.Errorf("%w: fimDeslocamento não pode ser anterior ao inicioDeslocamento", domain.ErrValidation)
	}
	return nil
}
