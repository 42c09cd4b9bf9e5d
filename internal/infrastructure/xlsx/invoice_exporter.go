// Package xlsx exporta el listado de faturas a una hoja de cálculo Excel.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	appbilling "github.com/jhoicas/pipeday-api/internal/application/billing"
	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

const sheet = "Faturas"

var headers = []string{"Cliente", "Serviço", "Valor (R$)", "Vencimento", "Status", "Criada em"}

var colWidths = []float64{32, 28, 14, 14, 12, 18}

var statusLabels = map[string]string{
	string(entity.InvoicePending):   "Pendente",
	string(entity.InvoicePaid):      "Pago",
	string(entity.InvoiceExpired):   "Vencido",
	string(entity.InvoiceCancelled): "Cancelado",
}

// InvoiceExporter implementa billing.InvoiceExporter con excelize.
type InvoiceExporter struct{}

var _ appbilling.InvoiceExporter = (*InvoiceExporter)(nil)

func NewInvoiceExporter() *InvoiceExporter { return &InvoiceExporter{} }

// ExportInvoices una fila por factura más una fila de total al final.
func (e *InvoiceExporter) ExportInvoices(_ context.Context, rows []dto.InvoiceResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#8EA9DB", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo moneda: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	row := 2
	for _, inv := range rows {
		value, _ := inv.Value.Float64()
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), inv.ClientName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), inv.ServiceName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), value)
		f.SetCellStyle(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), moneyStyle)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), inv.DueDate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), statusLabel(inv.Status))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), inv.CreatedAt.Format("2006-01-02 15:04"))
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	if len(rows) > 0 {
		f.SetCellFormula(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("SUM(C2:C%d)", row-1))
	} else {
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), 0)
	}
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), boldStyle)

	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func statusLabel(s string) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return s
}
