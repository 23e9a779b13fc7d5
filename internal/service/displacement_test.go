package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/service"
)

var fixedNow = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func newDisplacementService(d *mockDisplacementRepo) *service.DisplacementService {
	clients, conductors, vehicles := existingRefs()
	return service.NewDisplacementService(d, clients, conductors, vehicles).
		WithClock(func() time.Time { return fixedNow })
}

func validStart() domain.Displacement {
	return domain.Displacement{
		StartOdometer: 100,
		StartTime:     time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
		Reason:        "entrega",
		ClientID:      1,
		ConductorID:   2,
		VehicleID:     3,
	}
}

func openDisplacement(id int64) domain.Displacement {
	d := validStart()
	d.ID = id
	return d
}

func km(v float64) *float64 { return &v }

// ---- Start -----------------------------------------------------------------

func TestDisplacementService_Start_OK(t *testing.T) {
	var stored domain.Displacement
	svc := newDisplacementService(&mockDisplacementRepo{
		create: func(_ context.Context, d domain.Displacement) (domain.Displacement, error) {
			stored = d
			d.ID = 7
			return d, nil
		},
	})

	input := validStart()
	input.EndOdometer = km(500) // closing fields are ignored on start

	got, err := svc.Start(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Nil(t, stored.EndOdometer, "a started displacement is open")
	assert.Nil(t, stored.EndTime)
	assert.True(t, got.IsOpen())
}

func TestDisplacementService_Start_StampsMissingStartTime(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		create: func(_ context.Context, d domain.Displacement) (domain.Displacement, error) {
			return d, nil
		},
	})

	input := validStart()
	input.StartTime = time.Time{}

	got, err := svc.Start(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, got.StartTime.Equal(fixedNow))
}

func TestDisplacementService_Start_NegativeOdometer(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{})

	input := validStart()
	input.StartOdometer = -1

	_, err := svc.Start(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "kmInicial")
}

func TestDisplacementService_Start_MissingReference(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{})

	input := validStart()
	input.VehicleID = 0

	_, err := svc.Start(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "idVeiculo")
}

func TestDisplacementService_Start_UnknownReference(t *testing.T) {
	clients, conductors, vehicles := existingRefs()
	conductors.getByID = func(_ context.Context, _ int64) (domain.Conductor, error) {
		return domain.Conductor{}, domain.ErrNotFound
	}
	svc := service.NewDisplacementService(&mockDisplacementRepo{}, clients, conductors, vehicles)

	_, err := svc.Start(context.Background(), validStart())

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorContains(t, err, "idCondutor 2")
}

func TestDisplacementService_Start_ReferenceLookupFails(t *testing.T) {
	boom := errors.New("connection reset")
	clients, conductors, vehicles := existingRefs()
	clients.getByID = func(_ context.Context, _ int64) (domain.Client, error) {
		return domain.Client{}, boom
	}
	svc := service.NewDisplacementService(&mockDisplacementRepo{}, clients, conductors, vehicles)

	_, err := svc.Start(context.Background(), validStart())

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

// ---- Close -----------------------------------------------------------------

func TestDisplacementService_Close_OK(t *testing.T) {
	var written domain.Closing
	svc := newDisplacementService(&mockDisplacementRepo{
		getByID: func(_ context.Context, id int64) (domain.Displacement, error) {
			return openDisplacement(id), nil
		},
		close: func(_ context.Context, c domain.Closing) (domain.Displacement, error) {
			written = c
			d := openDisplacement(c.ID)
			d.EndOdometer = &c.EndOdometer
			d.EndTime = c.EndTime
			d.Notes = c.Notes
			return d, nil
		},
	})

	got, err := svc.Close(context.Background(), domain.Closing{ID: 5, EndOdometer: 120, Notes: "ok"})

	require.NoError(t, err)
	assert.False(t, got.IsOpen())
	assert.Equal(t, 20.0, got.Distance())
	require.NotNil(t, written.EndTime, "missing end time is stamped")
	assert.True(t, written.EndTime.Equal(fixedNow))
}

func TestDisplacementService_Close_NotFound(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		getByID: func(_ context.Context, _ int64) (domain.Displacement, error) {
			return domain.Displacement{}, domain.ErrNotFound
		},
	})

	_, err := svc.Close(context.Background(), domain.Closing{ID: 5, EndOdometer: 120})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDisplacementService_Close_AlreadyClosed(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		getByID: func(_ context.Context, id int64) (domain.Displacement, error) {
			d := openDisplacement(id)
			d.EndOdometer = km(150)
			return d, nil
		},
	})

	_, err := svc.Close(context.Background(), domain.Closing{ID: 5, EndOdometer: 200})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDisplacementService_Close_Validation(t *testing.T) {
	before := time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		closing domain.Closing
		want    string
	}{
		{"below start", domain.Closing{ID: 5, EndOdometer: 99}, "kmFinal deve ser maior ou igual ao kmInicial"},
		{"zero", domain.Closing{ID: 5, EndOdometer: 0}, "kmFinal deve ser maior que zero"},
		{"negative", domain.Closing{ID: 5, EndOdometer: -3}, "kmFinal deve ser maior que zero"},
		{"ends before start", domain.Closing{ID: 5, EndOdometer: 120, EndTime: &before}, "fimDeslocamento"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newDisplacementService(&mockDisplacementRepo{
				getByID: func(_ context.Context, id int64) (domain.Displacement, error) {
					return openDisplacement(id), nil
				},
			})

			_, err := svc.Close(context.Background(), tc.closing)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestDisplacementService_Close_RaceBecomesConflict(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		getByID: func(_ context.Context, id int64) (domain.Displacement, error) {
			return openDisplacement(id), nil
		},
		close: func(_ context.Context, _ domain.Closing) (domain.Displacement, error) {
			return domain.Displacement{}, domain.ErrNotFound
		},
	})

	_, err := svc.Close(context.Background(), domain.Closing{ID: 5, EndOdometer: 120})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

// ---- List / Delete ---------------------------------------------------------

func TestDisplacementService_List_ReturnsEmptySlice(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		list: func(_ context.Context) ([]domain.Displacement, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDisplacementService_Delete_NotFound(t *testing.T) {
	svc := newDisplacementService(&mockDisplacementRepo{
		delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
	})

	err := svc.Delete(context.Background(), 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
