package http

import (
	"fmt"

	"tms/internal/core/application/usecases/queries"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Ordens"
	exportDate      = "02/01/2006"
	exportDateTime  = "02/01/2006 15:04"
)

var exportHeaders = []string{
	"Número",
	"Status",
	"Motorista",
	"CPF",
	"Origem",
	"Destino",
	"Carga",
	"Peso (kg)",
	"Data agendada",
	"Observações",
	"Criada em",
}

// buildWorkbook renders orders as a single sheet, one row per order in the
// order given, under a bold header row.
func buildWorkbook(orders []queries.OrderResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}

	for i, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("export: header cell: %w", err)
		}
		if err = f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("export: header %q: %w", header, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}
	if err = f.SetRowStyle(exportSheet, 1, 1, bold); err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(exportHeaders))
	if err != nil {
		return nil, fmt.Errorf("export: last column: %w", err)
	}
	if err = f.SetColWidth(exportSheet, "A", lastCol, 20); err != nil {
		return nil, fmt.Errorf("export: column width: %w", err)
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("export: row cell: %w", err)
		}
		row := exportRow(o)
		if err = f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("export: row %s: %w", o.OrderNumber, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportRow(o queries.OrderResponse) []any {
	var weight, notes any
	if o.WeightKg != nil {
		weight = *o.WeightKg
	}
	if o.Notes != nil {
		notes = *o.Notes
	}

	return []any{
		o.OrderNumber,
		o.Status.Label(),
		o.Driver.Name,
		o.Driver.CPF,
		o.OriginAddress,
		o.DestinationAddress,
		o.CargoDescription,
		weight,
		o.ScheduledDate.Format(exportDate),
		notes,
		o.CreatedAt.Format(exportDateTime),
	}
}
