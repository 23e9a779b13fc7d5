package service

import (
	"context"
	"fmt"

	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/repo"
)

// ExportService assembles a flat export of all displacements with their
// references resolved.
type ExportService struct {
	displacements repo.DisplacementRepo
	clients       repo.ClientRepo
	conductors    repo.ConductorRepo
	vehicles      repo.VehicleRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(
	displacements repo.DisplacementRepo,
	clients repo.ClientRepo,
	conductors repo.ConductorRepo,
	vehicles repo.VehicleRepo,
) *ExportService {
	return &ExportService{displacements: displacements, clients: clients, conductors: conductors, vehicles: vehicles}
}

// Export returns one ExportRow per displacement, in list order.
// References that no longer resolve leave their name fields empty.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	displacements, err := s.displacements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	conductors, err := s.conductors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	clientByID := make(map[int64]domain.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}
	conductorByID := make(map[int64]domain.Conductor, len(conductors))
	for _, c := range conductors {
		conductorByID[c.ID] = c
	}
	vehicleByID := make(map[int64]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehicleByID[v.ID] = v
	}

	rows := make([]domain.ExportRow, 0, len(displacements))
	for _, d := range displacements {
		vehicle := vehicleByID[d.VehicleID]
		rows = append(rows, domain.ExportRow{
			DisplacementID: d.ID,
			StartOdometer:  d.StartOdometer,
			EndOdometer:    d.EndOdometer,
			StartTime:      d.StartTime,
			EndTime:        d.EndTime,
			Distance:       d.Distance(),
			Open:           d.IsOpen(),
			Reason:         d.Reason,
			Checklist:      d.Checklist,
			Notes:          d.Notes,
			ClientID:       d.ClientID,
			ClientName:     clientByID[d.ClientID].Name,
			ConductorID:    d.ConductorID,
			ConductorName:  conductorByID[d.ConductorID].Name,
			VehicleID:      d.VehicleID,
			VehiclePlate:   vehicle.Plate,
			VehicleModel:   vehicle.MakeModel,
		})
	}
	return rows, nil
}
