package stats

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

// ClientSummary acumulados de la ficha de un cliente.
type ClientSummary struct {
	TotalPaid     decimal.Decimal
	OpenDealCount int // negocios con etapa distinta de CLOSED (LOST incluido)
	Deals         []*entity.Deal
	Invoices      []*entity.Invoice
}

// ClientRollup calcula la ficha del cliente; listas por fecha de creación descendente.
func ClientRollup(clientID string, deals []*entity.Deal, invoices []*entity.Invoice) ClientSummary {
	sum := ClientSummary{
		TotalPaid: decimal.Zero,
		Deals:     []*entity.Deal{},
		Invoices:  []*entity.Invoice{},
	}
	for _, d := range deals {
		if d.ClientID != clientID {
			continue
		}
		sum.Deals = append(sum.Deals, d)
		if d.Stage != entity.StageClosed {
			sum.OpenDealCount++
		}
	}
	for _, inv := range invoices {
		if inv.ClientID != clientID {
			continue
		}
		sum.Invoices = append(sum.Invoices, inv)
		if inv.Status == entity.InvoicePaid {
			sum.TotalPaid = sum.TotalPaid.Add(inv.Value)
		}
	}
	sort.SliceStable(sum.Deals, func(i, j int) bool {
		return sum.Deals[i].CreatedAt.After(sum.Deals[j].CreatedAt)
	})
	sort.SliceStable(sum.Invoices, func(i, j int) bool {
		return sum.Invoices[i].CreatedAt.After(sum.Invoices[j].CreatedAt)
	})
	return sum
}
