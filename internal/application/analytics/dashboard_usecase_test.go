package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/internal/application/analytics"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
)

type fakeWorkspace struct{ snap workspace.Snapshot }

func (f *fakeWorkspace) Snapshot() workspace.Snapshot      { return f.snap }
func (f *fakeWorkspace) Refresh(ctx context.Context) error { return nil }

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newUseCase() *analytics.DashboardUseCase {
	ws := &fakeWorkspace{snap: workspace.Snapshot{
		Clients:  []*entity.Client{{ID: "1", Name: "João Silva", Email: "joao@tech.com"}, {ID: "2", Name: "Maria Souza"}},
		Services: []*entity.Service{{ID: "s1", Name: "Consultoria Estratégica"}},
		Deals: []*entity.Deal{
			{ID: "d1", ClientID: "1", ServiceID: "s1", Stage: entity.StageNewContact, Value: decimal.NewFromInt(100), CreatedAt: now.Add(-72 * time.Hour)},
			{ID: "d2", ClientID: "2", ServiceID: "s1", Stage: entity.StageLost, Value: decimal.NewFromInt(300), CreatedAt: now},
		},
		Invoices: []*entity.Invoice{
			{ID: "inv1", ClientID: "1", ServiceID: "s1", Value: decimal.NewFromInt(1500), Status: entity.InvoicePaid},
			{ID: "inv2", ClientID: "2", ServiceID: "s1", Value: decimal.NewFromInt(4500), Status: entity.InvoicePending},
		},
	}}
	return analytics.NewDashboardUseCase(ws).WithClock(func() time.Time { return now })
}

func TestGetSummary(t *testing.T) {
	s := newUseCase().GetSummary(context.Background())

	assert.True(t, decimal.NewFromInt(1500).Equal(s.TotalReceived))
	assert.True(t, decimal.NewFromInt(4500).Equal(s.TotalPending))
	assert.True(t, decimal.NewFromInt(300).Equal(s.TotalLost))
	assert.Equal(t, 2, s.ActiveClients)
	assert.Equal(t, 1, s.LostDeals)
	assert.Equal(t, 1, s.StaleLeads)
	require.Len(t, s.Chart, 3)
	assert.Equal(t, "Pendente", s.Chart[1].Name)
}

func TestSearch(t *testing.T) {
	uc := newUseCase()

	res := uc.Search(context.Background(), "joão")
	require.Len(t, res.Clients, 1)
	assert.Equal(t, "João Silva", res.Clients[0].Name)
	require.Len(t, res.Deals, 1)
	assert.Equal(t, "Consultoria Estratégica", res.Deals[0].ServiceName)

	empty := uc.Search(context.Background(), "")
	assert.Empty(t, empty.Clients)
	assert.Empty(t, empty.Deals)
}

func TestClientSummary(t *testing.T) {
	uc := newUseCase()

	sum, err := uc.ClientSummary(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(sum.TotalPaid))
	assert.Equal(t, 1, sum.OpenDeals)
	assert.Len(t, sum.Invoices, 1)

	_, err = uc.ClientSummary(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
