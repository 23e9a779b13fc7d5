package service_test

import (
	"context"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/repo"
)

// ---- hand-written test doubles ---------------------------------------------
// Set only the function fields a test needs; a nil field panics when called,
// which flags an unexpected repo call.

type mockDisplacementRepo struct {
	create  func(ctx context.Context, d domain.Displacement) (domain.Displacement, error)
	getByID func(ctx context.Context, id int64) (domain.Displacement, error)
	list    func(ctx context.Context) ([]domain.Displacement, error)
	close   func(ctx context.Context, c domain.Closing) (domain.Displacement, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockDisplacementRepo) Create(ctx context.Context, d domain.Displacement) (domain.Displacement, error) {
	return m.create(ctx, d)
}
func (m *mockDisplacementRepo) GetByID(ctx context.Context, id int64) (domain.Displacement, error) {
	return m.getByID(ctx, id)
}
func (m *mockDisplacementRepo) List(ctx context.Context) ([]domain.Displacement, error) {
	return m.list(ctx)
}
func (m *mockDisplacementRepo) Close(ctx context.Context, c domain.Closing) (domain.Displacement, error) {
	return m.close(ctx, c)
}
func (m *mockDisplacementRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockClientRepo struct {
	create  func(ctx context.Context, c domain.Client) (domain.Client, error)
	getByID func(ctx context.Context, id int64) (domain.Client, error)
	list    func(ctx context.Context) ([]domain.Client, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockClientRepo) Create(ctx context.Context, c domain.Client) (domain.Client, error) {
	return m.create(ctx, c)
}
func (m *mockClientRepo) GetByID(ctx context.Context, id int64) (domain.Client, error) {
	return m.getByID(ctx, id)
}
func (m *mockClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	return m.list(ctx)
}
func (m *mockClientRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockConductorRepo struct {
	create  func(ctx context.Context, c domain.Conductor) (domain.Conductor, error)
	getByID func(ctx context.Context, id int64) (domain.Conductor, error)
	list    func(ctx context.Context) ([]domain.Conductor, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockConductorRepo) Create(ctx context.Context, c domain.Conductor) (domain.Conductor, error) {
	return m.create(ctx, c)
}
func (m *mockConductorRepo) GetByID(ctx context.Context, id int64) (domain.Conductor, error) {
	return m.getByID(ctx, id)
}
func (m *mockConductorRepo) List(ctx context.Context) ([]domain.Conductor, error) {
	return m.list(ctx)
}
func (m *mockConductorRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

type mockVehicleRepo struct {
	create  func(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error)
	getByID func(ctx context.Context, id int64) (domain.Vehicle, error)
	list    func(ctx context.Context) ([]domain.Vehicle, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockVehicleRepo) Create(ctx context.Context, v domain.Vehicle) (domain.Vehicle, error) {
	return m.create(ctx, v)
}
func (m *mockVehicleRepo) GetByID(ctx context.Context, id int64) (domain.Vehicle, error) {
	return m.getByID(ctx, id)
}
func (m *mockVehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	return m.list(ctx)
}
func (m *mockVehicleRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.DisplacementRepo = (*mockDisplacementRepo)(nil)
	_ repo.ClientRepo       = (*mockClientRepo)(nil)
	_ repo.ConductorRepo    = (*mockConductorRepo)(nil)
	_ repo.VehicleRepo      = (*mockVehicleRepo)(nil)
)

// existingRefs returns reference repos in which every id resolves.
func existingRefs() (*mockClientRepo, *mockConductorRepo, *mockVehicleRepo) {
	clients := &mockClientRepo{
		getByID: func(_ context.Context, id int64) (domain.Client, error) { return domain.Client{ID: id}, nil },
	}
	conductors := &mockConductorRepo{
		getByID: func(_ context.Context, id int64) (domain.Conductor, error) { return domain.Conductor{ID: id}, nil },
	}
	vehicles := &mockVehicleRepo{
		getByID: func(_ context.Context, id int64) (domain.Vehicle, error) { return domain.Vehicle{ID: id}, nil },
	}
	return clients, conductors, vehicles
}
