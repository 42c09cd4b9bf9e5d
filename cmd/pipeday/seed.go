package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/postgres"
)

// seedNamespace los ids de ejemplo son UUID v5 estables: volver a sembrar choca con
// la clave primaria y la transacción entera se descarta.
var seedNamespace = uuid.MustParse("6f1c5a52-8a3e-4c1d-9a57-2f1f0c6e9d10")

func seedID(key string) string {
	return uuid.NewSHA1(seedNamespace, []byte(key)).String()
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type seedSet struct {
	Clients  []*entity.Client
	Services []*entity.Service
	Deals    []*entity.Deal
	Invoices []*entity.Invoice
}

// sampleData clientes, servicios, negocios y faturas de demostración.
func sampleData() seedSet {
	return seedSet{
		Clients: []*entity.Client{
			{ID: seedID("client-1"), Name: "João Silva", Email: "joao@tech.com", Phone: "11999999999", Notes: "Cliente VIP", CreatedAt: day("2023-10-01")},
			{ID: seedID("client-2"), Name: "Maria Souza", Email: "maria@design.co", Phone: "21988888888", Notes: "Interesse em branding", CreatedAt: day("2023-10-05")},
			{ID: seedID("client-3"), Name: "Pedro Santos", Email: "pedro@marketing.com", Phone: "31977777777", Notes: "Indicação do Carlos", CreatedAt: day("2023-10-10")},
		},
		Services: []*entity.Service{
			{ID: seedID("service-1"), Name: "Consultoria Estratégica", BaseValue: decimal.NewFromInt(1500), BillingType: entity.BillingUnique, Notes: "2 reuniões de 1h"},
			{ID: seedID("service-2"), Name: "Gestão de Tráfego", BaseValue: decimal.NewFromInt(2500), BillingType: entity.BillingMonthly, Notes: "Setup incluso"},
			{ID: seedID("service-3"), Name: "Criação de Website", BaseValue: decimal.NewFromInt(5000), BillingType: entity.BillingUnique, Notes: "Landing page simples"},
		},
		Deals: []*entity.Deal{
			{ID: seedID("deal-1"), ClientID: seedID("client-1"), ServiceID: seedID("service-1"), Value: decimal.NewFromInt(1500),
				Stage: entity.StageNewContact, Temperature: entity.TemperatureWarm, PaymentStatus: entity.PaymentPending, CreatedAt: day("2023-10-12")},
			{ID: seedID("deal-2"), ClientID: seedID("client-2"), ServiceID: seedID("service-3"), Value: decimal.NewFromInt(4500),
				Stage: entity.StageProposalSent, Temperature: entity.TemperatureHot, PaymentStatus: entity.PaymentPending, CreatedAt: day("2023-10-15")},
		},
		Invoices: []*entity.Invoice{
			{ID: seedID("invoice-1"), ClientID: seedID("client-1"), ServiceID: seedID("service-1"), Value: decimal.NewFromInt(1500),
				DueDate: day("2023-11-20"), Status: entity.InvoicePaid, CreatedAt: day("2023-11-01")},
			{ID: seedID("invoice-2"), ClientID: seedID("client-2"), ServiceID: seedID("service-3"), Value: decimal.NewFromInt(4500),
				DueDate: day("2023-12-05"), Status: entity.InvoicePending, CreatedAt: day("2023-11-05")},
		},
	}
}

// insert crea todo en orden dentro de los repos recibidos.
func (s seedSet) insert(ctx context.Context, repos postgres.Repositories) error {
	for _, c := range s.Clients {
		if err := repos.Clients.Create(ctx, c); err != nil {
			return err
		}
	}
	for _, sv := range s.Services {
		if err := repos.Services.Create(ctx, sv); err != nil {
			return err
		}
	}
	for _, d := range s.Deals {
		if err := repos.Deals.Create(ctx, d); err != nil {
			return err
		}
	}
	for _, inv := range s.Invoices {
		if err := repos.Invoices.Create(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga clientes, servicios, negocios y faturas de ejemplo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			data := sampleData()
			err = postgres.NewTxRunner(pool).Run(ctx, func(repos postgres.Repositories) error {
				return data.insert(ctx, repos)
			})
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			a.log.Info().
				Int("clients", len(data.Clients)).
				Int("services", len(data.Services)).
				Int("deals", len(data.Deals)).
				Int("invoices", len(data.Invoices)).
				Msg("datos de ejemplo cargados")
			return nil
		},
	}
}
