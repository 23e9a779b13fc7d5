package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/diones-souza/test-snaty/internal/datefmt"
	"github.com/diones-souza/test-snaty/internal/domain"
	"github.com/diones-souza/test-snaty/internal/handler/gen"
)

const (
	exportSheet = "Deslocamentos"
	exportBase  = "deslocamentos"
)

// exportHeaders defines the column names written as the first row of any export.
var exportHeaders = []string{
	"id", "kmInicial", "kmFinal", "distancia", "inicioDeslocamento", "fimDeslocamento",
	"situacao", "motivo", "checkList", "observacao",
	"idCliente", "cliente", "idCondutor", "condutor", "idVeiculo", "placa", "marcaModelo",
}

// ExportDisplacements implements GET /Deslocamento/Exportar.
// Use ?format=xlsx for a spreadsheet; the default is CSV.
func (s *Server) ExportDisplacements(ctx context.Context, req gen.ExportDisplacementsRequestObject) (gen.ExportDisplacementsResponseObject, error) {
	format := gen.Csv
	if req.Params.Format != nil && *req.Params.Format != "" {
		format = *req.Params.Format
	}
	if format != gen.Csv && format != gen.Xlsx {
		return gen.ExportDisplacements400TextResponse(fmt.Sprintf("Formato não suportado: %s", format)), nil
	}

	rows, err := s.export.Export(ctx)
	if err != nil {
		return nil, err
	}

	headers := gen.ExportDisplacements200ResponseHeaders{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", exportBase+"."+string(format)),
	}
	if format == gen.Xlsx {
		body, err := buildXLSX(rows)
		if err != nil {
			return nil, err
		}
		return gen.ExportDisplacements200ApplicationvndOpenxmlformatsOfficedocumentSpreadsheetmlSheetResponse{
			Body:          bytes.NewReader(body),
			Headers:       headers,
			ContentLength: int64(len(body)),
		}, nil
	}
	body, err := buildCSV(rows)
	if err != nil {
		return nil, err
	}
	return gen.ExportDisplacements200TextcsvResponse{
		Body:          bytes.NewReader(body),
		Headers:       headers,
		ContentLength: int64(len(body)),
	}, nil
}

// buildCSV encodes rows as CSV with a header line.
func buildCSV(rows []domain.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("handler.buildCSV: %w", err)
	}
	for _, r := range rows {
		record := make([]string, 0, len(exportHeaders))
		for _, v := range exportRecord(r) {
			record = append(record, fmt.Sprint(v))
		}
		if err := cw.Write(record); err != nil {
			return nil, fmt.Errorf("handler.buildCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("handler.buildCSV: %w", err)
	}
	return buf.Bytes(), nil
}

// buildXLSX writes rows to a single-sheet workbook. Numeric columns stay
// numeric in the spreadsheet.
func buildXLSX(rows []domain.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}
	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("handler.buildXLSX: %w", err)
		}
		record := exportRecord(r)
		if err := f.SetSheetRow(exportSheet, cell, &record); err != nil {
			return nil, fmt.Errorf("handler.buildXLSX: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("handler.buildXLSX: %w", err)
	}
	return buf.Bytes(), nil
}

// exportRecord flattens a row in exportHeaders order.
// Open trips leave kmFinal and fimDeslocamento empty.
func exportRecord(r domain.ExportRow) []any {
	var endOdometer any = ""
	if r.EndOdometer != nil {
		endOdometer = *r.EndOdometer
	}
	status := "Encerrado"
	if r.Open {
		status = "Aberto"
	}
	return []any{
		r.DisplacementID,
		r.StartOdometer,
		endOdometer,
		r.Distance,
		displayTime(&r.StartTime),
		displayTime(r.EndTime),
		status,
		r.Reason,
		r.Checklist,
		r.Notes,
		r.ClientID,
		r.ClientName,
		r.ConductorID,
		r.ConductorName,
		r.VehicleID,
		r.VehiclePlate,
		r.VehicleModel,
	}
}

// displayTime renders t in the canonical display format, or "" if t is nil.
func displayTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return datefmt.Format(t.UTC(), datefmt.DateTimeFormat)
}
