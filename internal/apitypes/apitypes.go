// Package apitypes defines the JSON contract of the dispatch API.
// Field names follow the wire format consumed by the dashboard; timestamps
// travel as strings and are reconciled with package datefmt on both sides.
package apitypes

// Client is a customer served by a displacement.
type Client struct {
	ID             int64  `json:"id,omitempty"`
	Name           string `json:"nome"`
	DocumentNumber string `json:"numeroDocumento"`
	DocumentType   string `json:"tipoDocumento"`
	Street         string `json:"logradouro"`
	Number         string `json:"numero"`
	District       string `json:"bairro"`
	City           string `json:"cidade"`
	State          string `json:"uf"`
}

// RefID implements Reference.
func (c Client) RefID() int64 { return c.ID }

// Conductor is a licensed driver.
type Conductor struct {
	ID              int64  `json:"id,omitempty"`
	Name            string `json:"nome"`
	LicenseNumber   string `json:"numeroHabilitacao"`
	LicenseCategory string `json:"categoriaHabilitacao"`
	LicenseExpiry   string `json:"vencimentoHabilitacao,omitempty"`
}

// RefID implements Reference.
func (c Conductor) RefID() int64 { return c.ID }

// Vehicle is a fleet vehicle.
type Vehicle struct {
	ID        int64   `json:"id,omitempty"`
	Plate     string  `json:"placa"`
	MakeModel string  `json:"marcaModelo"`
	Year      int     `json:"anoFabricacao,omitempty"`
	CurrentKm float64 `json:"kmAtual"`
}

// RefID implements Reference.
func (v Vehicle) RefID() int64 { return v.ID }

// Reference is implemented by the entities a displacement points at.
type Reference interface {
	RefID() int64
}

// Displacement is a trip record as it travels over the wire.
// EndOdometer is nil while the trip is open.
type Displacement struct {
	ID            int64    `json:"id,omitempty"`
	StartOdometer float64  `json:"kmInicial"`
	EndOdometer   *float64 `json:"kmFinal"`
	StartTime     string   `json:"inicioDeslocamento"`
	EndTime       string   `json:"fimDeslocamento,omitempty"`
	Checklist     string   `json:"checkList"`
	Reason        string   `json:"motivo"`
	Notes         string   `json:"observacao"`
	ConductorID   int64    `json:"idCondutor"`
	VehicleID     int64    `json:"idVeiculo"`
	ClientID      int64    `json:"idCliente"`
}

// IsOpen reports whether the trip still awaits its closing odometer.
// A zero reading counts as absent.
func (d Displacement) IsOpen() bool {
	return d.EndOdometer == nil || *d.EndOdometer == 0
}

// StartDisplacement is the body of POST Deslocamento/IniciarDeslocamento.
type StartDisplacement struct {
	StartOdometer float64 `json:"kmInicial"`
	StartTime     string  `json:"inicioDeslocamento"`
	Checklist     string  `json:"checkList"`
	Reason        string  `json:"motivo"`
	Notes         string  `json:"observacao"`
	ConductorID   int64   `json:"idCondutor"`
	VehicleID     int64   `json:"idVeiculo"`
	ClientID      int64   `json:"idCliente"`
}

// CloseDisplacement is the body of PUT Deslocamento/{id}/EncerrarDeslocamento.
// It carries only the closing fields; start-side fields are immutable.
// Empty timestamps are stamped by the server.
type CloseDisplacement struct {
	ID          int64   `json:"id"`
	EndOdometer float64 `json:"kmFinal"`
	EndTime     string  `json:"fimDeslocamento"`
	Notes       string  `json:"observacao"`
}
