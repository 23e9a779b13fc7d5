package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/domain"
)

func displacementFixture() domain.Displacement {
	return domain.Displacement{
		ID:            5,
		StartOdometer: 100,
		StartTime:     time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
		Reason:        "entrega",
		Checklist:     "pneus ok",
		ClientID:      1,
		ConductorID:   2,
		VehicleID:     3,
	}
}

// ---- GET /Deslocamento -----------------------------------------------------

func TestListDisplacements_200(t *testing.T) {
	closed := displacementFixture()
	end := closed.StartTime.Add(time.Hour)
	km := 180.0
	closed.EndOdometer = &km
	closed.EndTime = &end

	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		list: func(_ context.Context) ([]domain.Displacement, error) {
			return []domain.Displacement{displacementFixture(), closed}, nil
		},
	}})

	rec := serve(h, http.MethodGet, "/Deslocamento", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []apitypes.Displacement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2023-06-01T10:00:00", resp[0].StartTime)
	assert.True(t, resp[0].IsOpen())
	assert.Empty(t, resp[0].EndTime)
	assert.False(t, resp[1].IsOpen())
	assert.Equal(t, "2023-06-01T11:00:00", resp[1].EndTime)
}

func TestListDisplacements_emptyIsArray(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		list: func(_ context.Context) ([]domain.Displacement, error) { return []domain.Displacement{}, nil },
	}})

	rec := serve(h, http.MethodGet, "/Deslocamento", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

// ---- GET /Deslocamento/{id} ------------------------------------------------

func TestGetDisplacement_404(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		getByID: func(_ context.Context, _ int64) (domain.Displacement, error) {
			return domain.Displacement{}, fmt.Errorf("repo: %w", domain.ErrNotFound)
		},
	}})

	rec := serve(h, http.MethodGet, "/Deslocamento/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Deslocamento não encontrado", strings.TrimSpace(rec.Body.String()))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestGetDisplacement_400_InvalidID(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{}})

	for _, id := range []string{"abc", "1.5"} {
		rec := serve(h, http.MethodGet, "/Deslocamento/"+id, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
	}
}

func TestGetDisplacement_NonPositiveIDIsNotFound(t *testing.T) {
	var asked []int64
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		getByID: func(_ context.Context, id int64) (domain.Displacement, error) {
			asked = append(asked, id)
			return domain.Displacement{}, domain.ErrNotFound
		},
	}})

	for _, id := range []string{"0", "-4"} {
		rec := serve(h, http.MethodGet, "/Deslocamento/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "id %q", id)
	}
	assert.Equal(t, []int64{0, -4}, asked)
}

func TestGetDisplacement_500_HidesInternalError(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		getByID: func(_ context.Context, _ int64) (domain.Displacement, error) {
			return domain.Displacement{}, errors.New("pq: connection refused")
		},
	}})

	rec := serve(h, http.MethodGet, "/Deslocamento/1", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

// ---- POST /Deslocamento/IniciarDeslocamento --------------------------------

func TestStartDisplacement_201(t *testing.T) {
	var got domain.Displacement
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		start: func(_ context.Context, d domain.Displacement) (domain.Displacement, error) {
			got = d
			d.ID = 5
			return d, nil
		},
	}})

	rec := serve(h, http.MethodPost, "/Deslocamento/IniciarDeslocamento", jsonBody(t, map[string]any{
		"kmInicial":          100,
		"inicioDeslocamento": "01/06/2023 10:00:00",
		"motivo":             "entrega",
		"checkList":          "pneus ok",
		"observacao":         "",
		"idCliente":          1,
		"idCondutor":         2,
		"idVeiculo":          3,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 100.0, got.StartOdometer)
	assert.True(t, got.StartTime.Equal(time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(3), got.VehicleID)

	var resp apitypes.Displacement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "2023-06-01T10:00:00", resp.StartTime)
}

func TestStartDisplacement_EmptyStartTimeLeftForService(t *testing.T) {
	var got domain.Displacement
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		start: func(_ context.Context, d domain.Displacement) (domain.Displacement, error) {
			got = d
			return d, nil
		},
	}})

	rec := serve(h, http.MethodPost, "/Deslocamento/IniciarDeslocamento", jsonBody(t, apitypes.StartDisplacement{
		StartOdometer: 10, ClientID: 1, ConductorID: 1, VehicleID: 1,
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, got.StartTime.IsZero())
}

func TestStartDisplacement_422_ValidationMessageVerbatim(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		start: func(_ context.Context, _ domain.Displacement) (domain.Displacement, error) {
			return domain.Displacement{}, fmt.Errorf("service.DisplacementService.Start: %w: idVeiculo 3 não encontrado", domain.ErrValidation)
		},
	}})

	rec := serve(h, http.MethodPost, "/Deslocamento/IniciarDeslocamento", jsonBody(t, apitypes.StartDisplacement{VehicleID: 3}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "idVeiculo 3 não encontrado", strings.TrimSpace(rec.Body.String()))
}

func TestStartDisplacement_422_UnparseableDate(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{}})

	rec := serve(h, http.MethodPost, "/Deslocamento/IniciarDeslocamento", jsonBody(t, map[string]any{
		"inicioDeslocamento": "ontem",
	}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "inicioDeslocamento")
}

func TestStartDisplacement_400_MalformedBody(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{}})

	rec := serve(h, http.MethodPost, "/Deslocamento/IniciarDeslocamento", jsonBody(t, "not an object"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartDisplacement_413_BodyTooLarge(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{}})

	req := httptest.NewRequest(http.MethodPost, "/Deslocamento/IniciarDeslocamento",
		strings.NewReader(`{"kmInicial": 100, "motivo": "entrega longa"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 8)
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "Corpo da requisição muito grande", strings.TrimSpace(rec.Body.String()))
}

// ---- PUT /Deslocamento/{id}/EncerrarDeslocamento ---------------------------

func TestCloseDisplacement_200(t *testing.T) {
	var got domain.Closing
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		close: func(_ context.Context, c domain.Closing) (domain.Displacement, error) {
			got = c
			d := displacementFixture()
			d.EndOdometer = &c.EndOdometer
			d.EndTime = c.EndTime
			d.Notes = c.Notes
			return d, nil
		},
	}})

	rec := serve(h, http.MethodPut, "/Deslocamento/5/EncerrarDeslocamento", jsonBody(t, apitypes.CloseDisplacement{
		ID:          5,
		EndOdometer: 120,
		EndTime:     "2023-06-01T12:30:00",
		Notes:       "sem ocorrências",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, 120.0, got.EndOdometer)
	require.NotNil(t, got.EndTime)
	assert.True(t, got.EndTime.Equal(time.Date(2023, 6, 1, 12, 30, 0, 0, time.UTC)))
	assert.Equal(t, "sem ocorrências", got.Notes)

	var resp apitypes.Displacement
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.IsOpen())
	assert.Equal(t, 100.0, resp.StartOdometer, "start side untouched")
}

func TestCloseDisplacement_EmptyEndTimeLeftForService(t *testing.T) {
	var got domain.Closing
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		close: func(_ context.Context, c domain.Closing) (domain.Displacement, error) {
			got = c
			return displacementFixture(), nil
		},
	}})

	rec := serve(h, http.MethodPut, "/Deslocamento/5/EncerrarDeslocamento", jsonBody(t, apitypes.CloseDisplacement{EndOdometer: 120}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), got.ID, "path id wins when the body omits it")
	assert.Nil(t, got.EndTime)
}

func TestCloseDisplacement_409_AlreadyClosed(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		close: func(_ context.Context, _ domain.Closing) (domain.Displacement, error) {
			return domain.Displacement{}, fmt.Errorf("%w: deslocamento 5 já foi encerrado", domain.ErrConflict)
		},
	}})

	rec := serve(h, http.MethodPut, "/Deslocamento/5/EncerrarDeslocamento", jsonBody(t, apitypes.CloseDisplacement{ID: 5, EndOdometer: 120}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "deslocamento 5 já foi encerrado", strings.TrimSpace(rec.Body.String()))
}

func TestCloseDisplacement_404(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		close: func(_ context.Context, _ domain.Closing) (domain.Displacement, error) {
			return domain.Displacement{}, domain.ErrNotFound
		},
	}})

	rec := serve(h, http.MethodPut, "/Deslocamento/5/EncerrarDeslocamento", jsonBody(t, apitypes.CloseDisplacement{EndOdometer: 120}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCloseDisplacement_422_MismatchedID(t *testing.T) {
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{}})

	rec := serve(h, http.MethodPut, "/Deslocamento/5/EncerrarDeslocamento", jsonBody(t, apitypes.CloseDisplacement{ID: 6, EndOdometer: 120}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- DELETE /Deslocamento/{id} ---------------------------------------------

func TestDeleteDisplacement_204(t *testing.T) {
	var deleted int64
	h := newHTTPHandler(deps{displacements: &mockDisplacementServicer{
		delete: func(_ context.Context, id int64) error {
			deleted = id
			return nil
		},
	}})

	rec := serve(h, http.MethodDelete, "/Deslocamento/7", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(7), deleted)
}
