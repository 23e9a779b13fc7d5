package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/diones-souza/test-snaty/internal/apitypes"
	"github.com/diones-souza/test-snaty/internal/datefmt"
)

// ActionClose marks rows that can still be closed.
const ActionClose = "Encerrar"

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, headers...)
	return tw
}

func writeRow(w io.Writer, cells ...string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

// WriteClients renders the clients grid.
func WriteClients(w io.Writer, list []apitypes.Client) error {
	tw := newTable(w, "Código", "Nome", "Numero do Documento", "Tipo de Documento", "Rua", "Numero", "Bairro", "Cidade", "UF")
	for _, c := range list {
		writeRow(tw, formatID(c.ID), c.Name, c.DocumentNumber, c.DocumentType, c.Street, c.Number, c.District, c.City, c.State)
	}
	return tw.Flush()
}

// WriteConductors renders the conductors grid. License expiry is shown as
// a date.
func WriteConductors(w io.Writer, list []apitypes.Conductor) error {
	tw := newTable(w, "Código", "Nome", "Numero Habilitação", "Categoria Habilitação", "Vencimento Habilitação")
	for _, c := range list {
		writeRow(tw, formatID(c.ID), c.Name, c.LicenseNumber, c.LicenseCategory, datefmt.Normalize(c.LicenseExpiry, datefmt.DateFormat))
	}
	return tw.Flush()
}

// WriteVehicles renders the vehicles grid.
func WriteVehicles(w io.Writer, list []apitypes.Vehicle) error {
	tw := newTable(w, "Código", "Placa", "Marca/Modelo", "Ano de Fabricação", "KM Atual")
	for _, v := range list {
		year := ""
		if v.Year != 0 {
			year = strconv.Itoa(v.Year)
		}
		writeRow(tw, formatID(v.ID), v.Plate, v.MakeModel, year, formatKm(v.CurrentKm))
	}
	return tw.Flush()
}

// WriteDisplacements renders the displacements grid. Open trips carry the
// close action in the last column.
func WriteDisplacements(w io.Writer, list []apitypes.Displacement) error {
	tw := newTable(w,
		"Código", "KM Inicial", "KM Final", "Início do Deslocamento", "Fim do Deslocamento",
		"CheckList", "Motivo", "Observacao",
		"Código do Condutor", "Código do Veículo", "Código do Cliente", "Ações")
	for _, d := range list {
		end, action := "", ActionClose
		if !d.IsOpen() {
			end, action = formatKm(*d.EndOdometer), ""
		}
		writeRow(tw,
			formatID(d.ID), formatKm(d.StartOdometer), end,
			datefmt.NormalizeDateTime(d.StartTime), datefmt.NormalizeDateTime(d.EndTime),
			d.Checklist, d.Reason, d.Notes,
			formatID(d.ConductorID), formatID(d.VehicleID), formatID(d.ClientID), action)
	}
	return tw.Flush()
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatKm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
