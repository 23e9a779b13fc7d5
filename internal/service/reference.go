package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/repo"
)

// ClientService implements business logic for Client operations.
type ClientService struct {
	repo repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(r repo.ClientRepo) *ClientService {
	return &ClientService{repo: r}
}

// Create validates and persists a new client.
func (s *ClientService) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))
	if err := validateClient(c); err != nil {
		return domain.Client{}, err
	}
	result, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single client by id.
func (s *ClientService) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all clients. Never returns a nil slice.
func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ClientService.List: %w", err)
	}
	return nonNil(result), nil
}

// Delete removes a client. Displacements that reference it keep the id.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ClientService.Delete: %w", err)
	}
	return nil
}

// ConductorService implements business logic for Conductor operations.
type ConductorService struct {
	repo repo.ConductorRepo
}

// NewConductorService constructs a ConductorService backed by the provided ConductorRepo.
func NewConductorService(r repo.ConductorRepo) *ConductorService {
	return &ConductorService{repo: r}
}

// Create validates and persists a new conductor.
func (s *ConductorService) Create(ctx context.Context, c domain.Conductor) (domain.Conductor, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.LicenseCategory = strings.ToUpper(strings.TrimSpace(c.LicenseCategory))
	if err := validateConductor(c); err != nil {
		return domain.Conductor{}, err
	}
	result, err := s.repo.Create(ctx, c)
	if err != nil {
		return domain.Conductor{}, fmt.Errorf("service.ConductorService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single conductor by id.
func (s *ConductorService) GetByID(ctx context.Context, id int64) (domain.Conductor, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Conductor{}, fmt.Errorf("service.ConductorService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all conductors. Never returns a nil slice.
func (s *ConductorService) List(ctx context.Context) ([]domain.Conductor, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ConductorService.List: %w", err)
	}
	return nonNil(result), nil
}

// Delete removes a conductor.
func (s *ConductorService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ConductorService.Delete: %w", err)
	}
	return nil
}

// VehicleService implements business logic for Vehicle operations.
type VehicleService struct {
	repo repo.VehicleRepo
	now  func() time.Time
}

// NewVehicleService constructs a VehicleService backed by the provided VehicleRepo.
func NewVehicleService(r repo.VehicleRepo) *VehicleService {
	return &VehicleService{repo: r, now: time.Now}
}

// Create validates and persists a new vehicle.
func (s *VehicleService) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	v.MakeModel = strings.TrimSpace(v.MakeModel)
	if err := validateVehicle(v, s.now().Year()); err != nil {
		return domain.Vehicle{}, err
	}
	result, err := s.repo.Create(ctx, v)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single vehicle by id.
func (s *VehicleService) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Vehicle{}, fmt.Errorf("service.VehicleService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all vehicles. Never returns a nil slice.
func (s *VehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VehicleService.List: %w", err)
	}
	return nonNil(result), nil
}

// Delete removes a vehicle.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.VehicleService.Delete: %w", err)
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// validateClient enforces the client registration rules.
//   - nome is required and at least 3 characters.
//   - numeroDocumento is required and digits only.
//   - tipoDocumento is required.
//   - uf is at most 2 letters.
func validateClient(c domain.Client) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrValidation)
	case len([]rune(c.Name)) < 3:
		return fmt.Errorf("%w: nome deve ter no mínimo 3 caracteres", domain.ErrValidation)
	case strings.TrimSpace(c.DocumentNumber) == "":
		return fmt.Errorf("%w: numeroDocumento é obrigatório", domain.ErrValidation)
	case !onlyDigits(c.DocumentNumber):
		return fmt.Errorf("%w: numeroDocumento deve conter apenas números", domain.ErrValidation)
	case strings.TrimSpace(c.DocumentType) == "":
		return fmt.Errorf("%w: tipoDocumento é obrigatório", domain.ErrValidation)
	case len([]rune(c.State)) > 2:
		return fmt.Errorf("%w: uf deve ter no máximo 2 caracteres", domain.ErrValidation)
	case !onlyLetters(c.State):
		return fmt.Errorf("%w: uf deve conter apenas letras", domain.ErrValidation)
	}
	return nil
}

// validateConductor enforces the conductor registration rules.
func validateConductor(c domain.Conductor) error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: nome é obrigatório", domain.ErrValidation)
	case len([]rune(c.Name)) < 3:
		return fmt.Errorf("%w: nome deve ter no mínimo 3 caracteres", domain.ErrValidation)
	case strings.TrimSpace(c.LicenseNumber) == "":
		return fmt.Errorf("%w: numeroHabilitacao é obrigatório", domain.ErrValidation)
	case !onlyDigits(c.LicenseNumber):
		return fmt.Errorf("%w: numeroHabilitacao deve conter apenas números", domain.ErrValidation)
	case c.LicenseCategory == "":
		return fmt.Errorf("%w: categoriaHabilitacao é obrigatório", domain.ErrValidation)
	case len([]rune(c.LicenseCategory)) > 2:
		return fmt.Errorf("%w: categoriaHabilitacao deve ter no máximo 2 caracteres", domain.ErrValidation)
	}
	return nil
}

// validateVehicle enforces the vehicle registration rules.
// A zero year means unknown.
func validateVehicle(v domain.Vehicle, currentYear int) error {
	switch {
	case v.Plate == "":
		return fmt.Errorf("%w: placa é obrigatório", domain.ErrValidation)
	case len([]rune(v.Plate)) < 3:
		return fmt.Errorf("%w: placa deve ter no mínimo 3 caracteres", domain.ErrValidation)
	case v.MakeModel == "":
		return fmt.Errorf("%w: marcaModelo é obrigatório", domain.ErrValidation)
	case v.CurrentKm < 0:
		return fmt.Errorf("%w: kmAtual deve ser maior ou igual a zero", domain.ErrValidation)
	case v.Year != 0 && (v.Year < 1900 || v.Year > currentYear+1):
		return fmt.Errorf("%w: anoFabricacao inválido", domain.ErrValidation)
	}
	return nil
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func onlyLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
