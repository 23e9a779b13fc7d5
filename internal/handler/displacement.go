package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diones-souza/test-snaty/internal/datefmt"
	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

const displacementNotFound = "Deslocamento não encontrado"

// ListDisplacements implements GET /Deslocamento.
func (s *Server) ListDisplacements(ctx context.Context, _ gen.ListDisplacementsRequestObject) (gen.ListDisplacementsResponseObject, error) {
	list, err := s.displacements.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListDisplacements200JSONResponse(mapSlice(list, displacementToResponse)), nil
}

// GetDisplacement implements GET /Deslocamento/{id}.
func (s *Server) GetDisplacement(ctx context.Context, req gen.GetDisplacementRequestObject) (gen.GetDisplacementResponseObject, error) {
	d, err := s.displacements.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetDisplacement404TextResponse(displacementNotFound), nil
		}
		return nil, err
	}
	return gen.GetDisplacement200JSONResponse(displacementToResponse(d)), nil
}

// StartDisplacement implements POST /Deslocamento/IniciarDeslocamento.
func (s *Server) StartDisplacement(ctx context.Context, req gen.StartDisplacementRequestObject) (gen.StartDisplacementResponseObject, error) {
	d, err := requestToDisplacement(*req.Body)
	if err == nil {
		d, err = s.displacements.Start(ctx, d)
	}
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.StartDisplacement422TextResponse(validationMessage(err)), nil
		}
		return nil, err
	}
	return gen.StartDisplacement201JSONResponse(displacementToResponse(d)), nil
}

// CloseDisplacement implements PUT /Deslocamento/{id}/EncerrarDeslocamento.
// Only the closing fields are read from the body.
func (s *Server) CloseDisplacement(ctx context.Context, req gen.CloseDisplacementRequestObject) (gen.CloseDisplacementResponseObject, error) {
	closing, err := requestToClosing(req.Id, *req.Body)
	var closed domain.Displacement
	if err == nil {
		closed, err = s.displacements.Close(ctx, closing)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.CloseDisplacement404TextResponse(displacementNotFound), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.CloseDisplacement409TextResponse(conflictMessage(err)), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.CloseDisplacement422TextResponse(validationMessage(err)), nil
		}
		return nil, err
	}
	return gen.CloseDisplacement200JSONResponse(displacementToResponse(closed)), nil
}

// DeleteDisplacement implements DELETE /Deslocamento/{id}.
func (s *Server) DeleteDisplacement(ctx context.Context, req gen.DeleteDisplacementRequestObject) (gen.DeleteDisplacementResponseObject, error) {
	if err := s.displacements.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteDisplacement404TextResponse(displacementNotFound), nil
		}
		return nil, err
	}
	return gen.DeleteDisplacement204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

func requestToDisplacement(body gen.StartDisplacement) (domain.Displacement, error) {
	start, err := parseOptionalTime("inicioDeslocamento", deref(body.InicioDeslocamento))
	if err != nil {
		return domain.Displacement{}, err
	}
	d := domain.Displacement{
		StartOdometer: body.KmInicial,
		Checklist:     deref(body.CheckList),
		Reason:        deref(body.Motivo),
		Notes:         deref(body.Observacao),
		ClientID:      body.IdCliente,
		ConductorID:   body.IdCondutor,
		VehicleID:     body.IdVeiculo,
	}
	if start != nil {
		d.StartTime = *start
	}
	return d, nil
}

// requestToClosing builds a domain.Closing keyed by the path id.
// A body id of zero means absent.
func requestToClosing(id int64, body gen.CloseDisplacement) (domain.Closing, error) {
	if body.Id != nil && *body.Id != 0 && *body.Id != id {
		return domain.Closing{}, fmt.Errorf("%w: id do corpo (%d) difere do id da rota (%d)", domain.ErrValidation, *body.Id, id)
	}
	end, err := parseOptionalTime("fimDeslocamento", deref(body.FimDeslocamento))
	if err != nil {
		return domain.Closing{}, err
	}
	return domain.Closing{
		ID:          id,
		EndOdometer: body.KmFinal,
		EndTime:     end,
		Notes:       deref(body.Observacao),
	}, nil
}

// parseOptionalTime accepts any timestamp shape the date normalizer knows.
// An empty value yields nil.
func parseOptionalTime(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := datefmt.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s inválido: %q", domain.ErrValidation, field, value)
	}
	t = t.UTC()
	return &t, nil
}

func displacementToResponse(d domain.Displacement) gen.Displacement {
	resp := gen.Displacement{
		Id:                 d.ID,
		KmInicial:          d.StartOdometer,
		KmFinal:            d.EndOdometer,
		InicioDeslocamento: formatTime(d.StartTime),
		CheckList:          d.Checklist,
		Motivo:             d.Reason,
		Observacao:         d.Notes,
		IdCondutor:         d.ConductorID,
		IdVeiculo:          d.VehicleID,
		IdCliente:          d.ClientID,
	}
	if d.EndTime != nil {
		end := formatTime(*d.EndTime)
		resp.FimDeslocamento = &end
	}
	return resp
}

func formatTime(t time.Time) string {
	return t.UTC().Format(datefmt.WireLayout)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func mapSlice[D, W any](items []D, conv func(D) W) []W {
	out := make([]W, len(items))
	for i, item := range items {
		out[i] = conv(item)
	}
	return out
}
