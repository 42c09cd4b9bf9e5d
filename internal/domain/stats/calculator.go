// Package stats deriva las métricas del dashboard a partir de las colecciones de
// clientes, negocios y facturas. Todo es puro: sin I/O ni mutación, y una entrada
// vacía produce ceros.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// StaleLeadThreshold antigüedad a partir de la cual un NEW_CONTACT se considera estancado.
const StaleLeadThreshold = 48 * time.Hour

// Summary métricas escalares del dashboard.
type Summary struct {
	TotalReceived       decimal.Decimal // facturas PAID
	TotalPending        decimal.Decimal // facturas PENDING
	TotalLost           decimal.Decimal // negocios LOST
	ExpiredInvoiceCount int
	LostDealCount       int
	ActiveClientCount   int // todos los clientes cuentan como activos
	StaleLeadCount      int
}

// ChartPoint barra del gráfico Recebido/Pendente/Perdido.
type ChartPoint struct {
	Name  string
	Value decimal.Decimal
}

// Compute calcula el resumen relativo a now. No se cachea: un negocio cruza el umbral
// de estancamiento solo por el paso del tiempo.
func Compute(clients []*entity.Client, deals []*entity.Deal, invoices []*entity.Invoice, now time.Time) Summary {
	s := Summary{
		TotalReceived:     decimal.Zero,
		TotalPending:      decimal.Zero,
		TotalLost:         decimal.Zero,
		ActiveClientCount: len(clients),
	}

	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoicePaid:
			s.TotalReceived = s.TotalReceived.Add(inv.Value)
		case entity.InvoicePending:
			s.TotalPending = s.TotalPending.Add(inv.Value)
		case entity.InvoiceExpired:
			s.ExpiredInvoiceCount++
		}
	}

	cutoff := now.Add(-StaleLeadThreshold)
	for _, d := range deals {
		switch d.Stage {
		case entity.StageLost:
			s.TotalLost = s.TotalLost.Add(d.Value)
			s.LostDealCount++
		case entity.StageNewContact:
			if d.CreatedAt.Before(cutoff) {
				s.StaleLeadCount++
			}
		}
	}
	return s
}

// Chart serie del gráfico de barras del dashboard.
func (s Summary) Chart() []ChartPoint {
	return []ChartPoint{
		{Name: "Recebido", Value: s.TotalReceived},
		{Name: "Pendente", Value: s.TotalPending},
		{Name: "Perdido", Value: s.TotalLost},
	}
}
