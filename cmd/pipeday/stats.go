package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain/funnel"
	"github.com/jhoicas/pipeday-api/internal/domain/stats"
	"github.com/jhoicas/pipeday-api/internal/infrastructure/postgres"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Muestra los indicadores del dashboard y el tablero por etapa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			store := workspace.NewStore(
				postgres.NewClientRepository(pool),
				postgres.NewServiceRepository(pool),
				postgres.NewDealRepository(pool),
				postgres.NewInvoiceRepository(pool),
				a.log.Zerolog(),
			)
			if err := store.Refresh(ctx); err != nil {
				return err
			}
			return printStats(cmd.OutOrStdout(), store.Snapshot(), time.Now())
		},
	}
}

func printStats(out io.Writer, snap workspace.Snapshot, now time.Time) error {
	s := stats.Compute(snap.Clients, snap.Deals, snap.Invoices, now)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Recebido\t%s\n", s.TotalReceived.StringFixed(2))
	fmt.Fprintf(w, "Pendente\t%s\n", s.TotalPending.StringFixed(2))
	fmt.Fprintf(w, "Perdido\t%s\n", s.TotalLost.StringFixed(2))
	fmt.Fprintf(w, "Faturas vencidas\t%d\n", s.ExpiredInvoiceCount)
	fmt.Fprintf(w, "Negócios perdidos\t%d\n", s.LostDealCount)
	fmt.Fprintf(w, "Clientes ativos\t%d\n", s.ActiveClientCount)
	fmt.Fprintf(w, "Leads parados (+48h)\t%d\n", s.StaleLeadCount)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ETAPA\tNEGÓCIOS\tVALOR")
	for _, col := range funnel.Board(snap.Deals) {
		fmt.Fprintf(w, "%s\t%d\t%s\n", col.Label, col.Count, col.Total.StringFixed(2))
	}
	return w.Flush()
}
