package handler

import (
	"context"
	"errors"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

// dateLayout is the wire layout of date-only fields.
const dateLayout = "2006-01-02"

const (
	clientNotFound    = "Cliente não encontrado"
	conductorNotFound = "Condutor não encontrado"
	vehicleNotFound   = "Veículo não encontrado"
)

// --- clients ----------------------------------------------------------------

// ListClients implements GET /Cliente.
func (s *Server) ListClients(ctx context.Context, _ gen.ListClientsRequestObject) (gen.ListClientsResponseObject, error) {
	items, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListClients200JSONResponse(mapSlice(items, clientToResponse)), nil
}

// GetClient implements GET /Cliente/{id}.
func (s *Server) GetClient(ctx context.Context, req gen.GetClientRequestObject) (gen.GetClientResponseObject, error) {
	c, err := s.clients.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetClient404TextResponse(clientNotFound), nil
		}
		return nil, err
	}
	return gen.GetClient200JSONResponse(clientToResponse(c)), nil
}

// CreateClient implements POST /Cliente.
func (s *Server) CreateClient(ctx context.Context, req gen.CreateClientRequestObject) (gen.CreateClientResponseObject, error) {
	created, err := s.clients.Create(ctx, requestToClient(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateClient422TextResponse(validationMessage(err)), nil
		}
		return nil, err
	}
	return gen.CreateClient201JSONResponse(clientToResponse(created)), nil
}

// DeleteClient implements DELETE /Cliente/{id}.
func (s *Server) DeleteClient(ctx context.Context, req gen.DeleteClientRequestObject) (gen.DeleteClientResponseObject, error) {
	if err := s.clients.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteClient404TextResponse(clientNotFound), nil
		}
		return nil, err
	}
	return gen.DeleteClient204Response{}, nil
}

func clientToResponse(c domain.Client) gen.Client {
	return gen.Client{
		Id:              &c.ID,
		Nome:            c.Name,
		NumeroDocumento: c.DocumentNumber,
		TipoDocumento:   c.DocumentType,
		Logradouro:      c.Street,
		Numero:          c.Number,
		Bairro:          c.District,
		Cidade:          c.City,
		Uf:              c.State,
	}
}

func requestToClient(c gen.Client) domain.Client {
	return domain.Client{
		Name:           c.Nome,
		DocumentNumber: c.NumeroDocumento,
		DocumentType:   c.TipoDocumento,
		Street:         c.Logradouro,
		Number:         c.Numero,
		District:       c.Bairro,
		City:           c.Cidade,
		State:          c.Uf,
	}
}

// --- conductors -------------------------------------------------------------

// ListConductors implements GET /Condutor.
func (s *Server) ListConductors(ctx context.Context, _ gen.ListConductorsRequestObject) (gen.ListConductorsResponseObject, error) {
	items, err := s.conductors.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListConductors200JSONResponse(mapSlice(items, conductorToResponse)), nil
}

// GetConductor implements GET /Condutor/{id}.
func (s *Server) GetConductor(ctx context.Context, req gen.GetConductorRequestObject) (gen.GetConductorResponseObject, error) {
	c, err := s.conductors.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetConductor404TextResponse(conductorNotFound), nil
		}
		return nil, err
	}
	return gen.GetConductor200JSONResponse(conductorToResponse(c)), nil
}

// CreateConductor implements POST /Condutor.
// vencimentoHabilitacao accepts any date shape the normalizer recognizes.
func (s *Server) CreateConductor(ctx context.Context, req gen.CreateConductorRequestObject) (gen.CreateConductorResponseObject, error) {
	c, err := requestToConductor(*req.Body)
	if err == nil {
		c, err = s.conductors.Create(ctx, c)
	}
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateConductor422TextResponse(validationMessage(err)), nil
		}
		return nil, err
	}
	return gen.CreateConductor201JSONResponse(conductorToResponse(c)), nil
}

// DeleteConductor implements DELETE /Condutor/{id}.
func (s *Server) DeleteConductor(ctx context.Context, req gen.DeleteConductorRequestObject) (gen.DeleteConductorResponseObject, error) {
	if err := s.conductors.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteConductor404TextResponse(conductorNotFound), nil
		}
		return nil, err
	}
	return gen.DeleteConductor204Response{}, nil
}

func conductorToResponse(c domain.Conductor) gen.Conductor {
	resp := gen.Conductor{
		Id:                   &c.ID,
		Nome:                 c.Name,
		NumeroHabilitacao:    c.LicenseNumber,
		CategoriaHabilitacao: c.LicenseCategory,
	}
	if c.LicenseExpiry != nil {
		expiry := c.LicenseExpiry.Format(dateLayout)
		resp.VencimentoHabilitacao = &expiry
	}
	return resp
}

func requestToConductor(c gen.Conductor) (domain.Conductor, error) {
	expiry, err := parseOptionalTime("vencimentoHabilitacao", deref(c.VencimentoHabilitacao))
	if err != nil {
		return domain.Conductor{}, err
	}
	return domain.Conductor{
		Name:            c.Nome,
		LicenseNumber:   c.NumeroHabilitacao,
		LicenseCategory: c.CategoriaHabilitacao,
		LicenseExpiry:   expiry,
	}, nil
}

// --- vehicles ---------------------------------------------------------------

// ListVehicles implements GET /Veiculo.
func (s *Server) ListVehicles(ctx context.Context, _ gen.ListVehiclesRequestObject) (gen.ListVehiclesResponseObject, error) {
	items, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	return gen.ListVehicles200JSONResponse(mapSlice(items, vehicleToResponse)), nil
}

// GetVehicle implements GET /Veiculo/{id}.
func (s *Server) GetVehicle(ctx context.Context, req gen.GetVehicleRequestObject) (gen.GetVehicleResponseObject, error) {
	v, err := s.vehicles.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetVehicle404TextResponse(vehicleNotFound), nil
		}
		return nil, err
	}
	return gen.GetVehicle200JSONResponse(vehicleToResponse(v)), nil
}

// CreateVehicle implements POST /Veiculo.
func (s *Server) CreateVehicle(ctx context.Context, req gen.CreateVehicleRequestObject) (gen.CreateVehicleResponseObject, error) {
	created, err := s.vehicles.Create(ctx, requestToVehicle(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateVehicle422TextResponse(validationMessage(err)), nil
		}
		return nil, err
	}
	return gen.CreateVehicle201JSONResponse(vehicleToResponse(created)), nil
}

// DeleteVehicle implements DELETE /Veiculo/{id}.
func (s *Server) DeleteVehicle(ctx context.Context, req gen.DeleteVehicleRequestObject) (gen.DeleteVehicleResponseObject, error) {
	if err := s.vehicles.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteVehicle404TextResponse(vehicleNotFound), nil
		}
		return nil, err
	}
	return gen.DeleteVehicle204Response{}, nil
}

// vehicleToResponse omits anoFabricacao when the year is unknown.
func vehicleToResponse(v domain.Vehicle) gen.Vehicle {
	resp := gen.Vehicle{
		Id:          &v.ID,
		Placa:       v.Plate,
		MarcaModelo: v.MakeModel,
		KmAtual:     v.CurrentKm,
	}
	if v.Year != 0 {
		resp.AnoFabricacao = &v.Year
	}
	return resp
}

func requestToVehicle(v gen.Vehicle) domain.Vehicle {
	return domain.Vehicle{
		Plate:     v.Placa,
		MakeModel: v.MarcaModelo,
		Year:      deref(v.AnoFabricacao),
		CurrentKm: v.KmAtual,
	}
}
