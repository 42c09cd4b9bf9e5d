package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/pipeline"
	"github.com/jhoicas/pipeday-api/internal/application/ports"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository/mocks"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles
// ──────────────────────────────────────────────────────────────────────────────

type fakeWorkspace struct {
	snap      workspace.Snapshot
	refreshes int
	onRefresh func(*workspace.Snapshot)
}

func (f *fakeWorkspace) Snapshot() workspace.Snapshot { return f.snap }

func (f *fakeWorkspace) Refresh(ctx context.Context) error {
	f.refreshes++
	if f.onRefresh != nil {
		f.onRefresh(&f.snap)
	}
	return nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) InvoiceGenerated(ctx context.Context, ev ports.InvoiceEvent) error {
	return m.Called(ctx, ev).Error(0)
}

type countingMetrics struct {
	transitions, invoices, failures int
}

func (c *countingMetrics) StageChanged(_, _ entity.Stage) { c.transitions++ }
func (c *countingMetrics) InvoiceGenerated()              { c.invoices++ }
func (c *countingMetrics) InvoiceGenerationFailed()       { c.failures++ }

var fixedNow = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

type fixture struct {
	uc       *pipeline.UseCase
	deals    *mocks.DealRepository
	invoices *mocks.InvoiceRepository
	notifier *mockNotifier
	metrics  *countingMetrics
	ws       *fakeWorkspace
}

func newFixture(deals ...*entity.Deal) *fixture {
	f := &fixture{
		deals:    new(mocks.DealRepository),
		invoices: new(mocks.InvoiceRepository),
		notifier: new(mockNotifier),
		metrics:  &countingMetrics{},
		ws: &fakeWorkspace{snap: workspace.Snapshot{
			Clients:  []*entity.Client{{ID: "c1", Name: "João Silva"}},
			Services: []*entity.Service{{ID: "s1", Name: "Consultoria Estratégica", BaseValue: decimal.NewFromInt(1500)}},
			Deals:    deals,
		}},
	}
	// El almacén devuelve lo mismo que la caché salvo que el test diga otra cosa.
	f.deals.On("Get", mock.Anything, mock.Anything).Return(func(_ context.Context, id string) (*entity.Deal, error) {
		if d, ok := f.ws.snap.Deal(id); ok {
			cp := *d
			return &cp, nil
		}
		return nil, domain.ErrNotFound
	}).Maybe()
	f.uc = pipeline.NewUseCase(f.deals, f.invoices, f.ws, f.notifier, f.metrics, zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })
	return f
}

func dealAt(stage entity.Stage) *entity.Deal {
	return &entity.Deal{
		ID:            "d1",
		ClientID:      "c1",
		ServiceID:     "s1",
		Value:         decimal.NewFromInt(1500),
		Stage:         stage,
		Temperature:   entity.TemperatureHot,
		PaymentStatus: entity.PaymentPending,
	}
}

func stagePatch(s entity.Stage) entity.DealPatch { return entity.StagePatch(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Avance guiado
// ──────────────────────────────────────────────────────────────────────────────

func TestAdvance_ProposalSentToNegotiation_NoInvoice(t *testing.T) {
	f := newFixture(dealAt(entity.StageProposalSent))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageNegotiation)).Return(nil).Once()

	resp, err := f.uc.Advance(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "NEGOTIATION", resp.Deal.Stage)
	assert.False(t, resp.DecisionRequired)
	assert.Nil(t, resp.Invoice)
	f.deals.AssertExpectations(t)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Equal(t, 1, f.ws.refreshes)
}

func TestAdvance_NewContactToProposalSent(t *testing.T) {
	f := newFixture(dealAt(entity.StageNewContact))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageProposalSent)).Return(nil).Once()

	resp, err := f.uc.Advance(context.Background(), "d1")

	require.NoError(t, err)
	assert.Equal(t, "PROPOSAL_SENT", resp.Deal.Stage)
	assert.Equal(t, "João Silva", resp.Deal.ClientName)
}

func TestAdvance_FromNegotiation_RequiresDecisionWithoutMutation(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))

	resp, err := f.uc.Advance(context.Background(), "d1")

	require.NoError(t, err)
	assert.True(t, resp.DecisionRequired)
	assert.Equal(t, []string{"CLOSED", "LOST"}, resp.Options)
	assert.Equal(t, "NEGOTIATION", resp.Deal.Stage)
	f.deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	assert.Zero(t, f.ws.refreshes)
}

func TestAdvance_FromTerminalStage(t *testing.T) {
	for _, s := range []entity.Stage{entity.StageClosed, entity.StageLost} {
		f := newFixture(dealAt(s))
		_, err := f.uc.Advance(context.Background(), "d1")
		assert.ErrorIs(t, err, domain.ErrTerminalStage)
		f.deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestAdvance_UnknownDeal(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Advance(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compuerta de decisión
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_Lost_NoInvoice(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageLost)).Return(nil).Once()

	resp, err := f.uc.Decide(context.Background(), "d1", entity.StageLost)

	require.NoError(t, err)
	assert.Equal(t, "LOST", resp.Deal.Stage)
	assert.Nil(t, resp.Invoice)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Zero(t, f.metrics.invoices)
}

func TestDecide_Closed_CreatesPendingInvoiceDueToday(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageClosed)).Return(nil).Once()

	var created *entity.Invoice
	f.invoices.On("Create", mock.Anything, mock.AnythingOfType("*entity.Invoice")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Invoice) }).
		Return(nil).Once()
	f.notifier.On("InvoiceGenerated", mock.Anything, mock.MatchedBy(func(ev ports.InvoiceEvent) bool {
		return ev.DealID == "d1" && ev.ClientName == "João Silva"
	})).Return(nil).Once()

	resp, err := f.uc.Decide(context.Background(), "d1", entity.StageClosed)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "c1", created.ClientID)
	assert.Equal(t, "s1", created.ServiceID)
	assert.True(t, decimal.NewFromInt(1500).Equal(created.Value))
	assert.Equal(t, entity.InvoicePending, created.Status)
	assert.Empty(t, created.PixCode)
	assert.Equal(t, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), created.DueDate)

	require.NotNil(t, resp.Invoice)
	assert.Equal(t, "2024-05-20", resp.Invoice.DueDate)
	assert.Equal(t, "CLOSED", resp.Deal.Stage)
	assert.Equal(t, 1, f.metrics.invoices)
	f.invoices.AssertNumberOfCalls(t, "Create", 1)
	f.notifier.AssertExpectations(t)
}

func TestDecide_InvalidChoice(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))

	_, err := f.uc.Decide(context.Background(), "d1", entity.StageProposalSent)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	f.deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDecide_SinDecisionPendiente(t *testing.T) {
	for _, s := range []entity.Stage{entity.StageNewContact, entity.StageProposalSent, entity.StageClosed} {
		f := newFixture(dealAt(s))

		_, err := f.uc.Decide(context.Background(), "d1", entity.StageClosed)

		assert.ErrorIs(t, err, domain.ErrInvalidInput, "etapa %s", s)
		f.deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Arrastre directo
// ──────────────────────────────────────────────────────────────────────────────

func TestMove_ClosedOntoClosed_PersistsWithoutInvoice(t *testing.T) {
	f := newFixture(dealAt(entity.StageClosed))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageClosed)).Return(nil).Once()

	resp, err := f.uc.Move(context.Background(), "d1", entity.StageClosed)

	require.NoError(t, err)
	assert.Nil(t, resp.Invoice)
	f.deals.AssertExpectations(t)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMove_SkipToClosed_CreatesInvoice(t *testing.T) {
	f := newFixture(dealAt(entity.StageNewContact))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageClosed)).Return(nil).Once()
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.On("InvoiceGenerated", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Move(context.Background(), "d1", entity.StageClosed)

	require.NoError(t, err)
	assert.NotNil(t, resp.Invoice)
	f.invoices.AssertNumberOfCalls(t, "Create", 1)
}

func TestMove_ReopenAndCloseAgain_GeneratesNewInvoice(t *testing.T) {
	deal := dealAt(entity.StageClosed)
	f := newFixture(deal)
	f.deals.On("Update", mock.Anything, "d1", mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("InvoiceGenerated", mock.Anything, mock.Anything).Return(nil)

	_, err := f.uc.Move(context.Background(), "d1", entity.StageNegotiation)
	require.NoError(t, err)
	deal.Stage = entity.StageNegotiation // lo que devolvería el refresco

	_, err = f.uc.Move(context.Background(), "d1", entity.StageClosed)
	require.NoError(t, err)

	f.invoices.AssertNumberOfCalls(t, "Create", 1)
	assert.Equal(t, 2, f.metrics.transitions)
}

func TestMove_UnknownStage(t *testing.T) {
	f := newFixture(dealAt(entity.StageNewContact))
	_, err := f.uc.Move(context.Background(), "d1", "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos del almacén
// ──────────────────────────────────────────────────────────────────────────────

// Con la caché atrasada (refresco fallido) el segundo arrastre a CLOSED no debe
// facturar otra vez: la etapa de partida se lee del almacén.
func TestMove_CacheAtrasada_NoDuplicaFactura(t *testing.T) {
	ctx := context.Background()
	clients := new(mocks.ClientRepository)
	clients.On("List", mock.Anything).Return([]*entity.Client{{ID: "c1", Name: "João Silva"}}, nil)
	services := new(mocks.ServiceRepository)
	services.On("List", mock.Anything).Return([]*entity.Service{{ID: "s1", Name: "Consultoria Estratégica"}}, nil)
	invoices := new(mocks.InvoiceRepository)
	invoices.On("List", mock.Anything).Return([]*entity.Invoice{}, nil)
	invoices.On("Create", mock.Anything, mock.Anything).Return(nil)

	stored := dealAt(entity.StageNegotiation)
	deals := new(mocks.DealRepository)
	deals.On("List", mock.Anything).Return([]*entity.Deal{dealAt(entity.StageNegotiation)}, nil).Once()
	deals.On("List", mock.Anything).Return(nil, errors.New("timeout"))
	deals.On("Get", mock.Anything, "d1").Return(func(context.Context, string) (*entity.Deal, error) {
		cp := *stored
		return &cp, nil
	})
	deals.On("Update", mock.Anything, "d1", mock.Anything).
		Run(func(args mock.Arguments) {
			next := args.Get(2).(entity.DealPatch).Apply(*stored)
			stored = &next
		}).
		Return(nil)

	ws := workspace.NewStore(clients, services, deals, invoices, zerolog.Nop())
	require.NoError(t, ws.Refresh(ctx))
	uc := pipeline.NewUseCase(deals, invoices, ws, nil, nil, zerolog.Nop()).
		WithClock(func() time.Time { return fixedNow })

	first, err := uc.Move(ctx, "d1", entity.StageClosed)
	require.NoError(t, err)
	assert.NotNil(t, first.Invoice)

	cached, _ := ws.Snapshot().Deal("d1")
	require.Equal(t, entity.StageNegotiation, cached.Stage, "la caché sigue atrasada")

	second, err := uc.Move(ctx, "d1", entity.StageClosed)
	require.NoError(t, err)
	assert.Nil(t, second.Invoice)
	invoices.AssertNumberOfCalls(t, "Create", 1)
	deals.AssertNumberOfCalls(t, "Update", 2)
}

func TestMove_LecturaDelNegocioFalla(t *testing.T) {
	f := newFixture()
	f.deals.ExpectedCalls = nil
	f.deals.On("Get", mock.Anything, "d1").
		Return(nil, &domain.PersistenceError{Op: "get", Entity: "deal", Err: errors.New("conexión rechazada")})

	_, err := f.uc.Move(context.Background(), "d1", entity.StageClosed)

	assert.ErrorIs(t, err, domain.ErrPersistence)
	f.deals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestMove_NegocioBorradoEnElAlmacen(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	f.deals.On("Update", mock.Anything, "d1", mock.Anything).Return(domain.ErrNotFound)

	_, err := f.uc.Move(context.Background(), "d1", entity.StageClosed)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransition_StageUpdateFails(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	storeErr := &domain.PersistenceError{Op: "update", Entity: "deal", Err: errors.New("conexión rechazada")}
	f.deals.On("Update", mock.Anything, "d1", mock.Anything).Return(storeErr)

	resp, err := f.uc.Decide(context.Background(), "d1", entity.StageClosed)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrPersistence)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Zero(t, f.ws.refreshes)
}

func TestTransition_InvoiceCreateFails_DealStaysClosed(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	f.deals.On("Update", mock.Anything, "d1", stagePatch(entity.StageClosed)).Return(nil)
	storeErr := &domain.PersistenceError{Op: "create", Entity: "invoice", Err: errors.New("violación de FK")}
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	resp, err := f.uc.Decide(context.Background(), "d1", entity.StageClosed)

	var genErr *domain.InvoiceGenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "d1", genErr.DealID)
	assert.ErrorIs(t, err, domain.ErrInvoiceGeneration)
	require.NotNil(t, resp)
	assert.Equal(t, "CLOSED", resp.Deal.Stage)
	assert.Nil(t, resp.Invoice)
	assert.Equal(t, 1, f.metrics.failures)
	f.deals.AssertNotCalled(t, "Update", mock.Anything, "d1", stagePatch(entity.StageNegotiation))
	f.notifier.AssertNotCalled(t, "InvoiceGenerated", mock.Anything, mock.Anything)
}

func TestTransition_NotifierFailureIsIgnored(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	f.deals.On("Update", mock.Anything, "d1", mock.Anything).Return(nil)
	f.invoices.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("InvoiceGenerated", mock.Anything, mock.Anything).Return(errors.New("broker caído"))

	resp, err := f.uc.Decide(context.Background(), "d1", entity.StageClosed)

	require.NoError(t, err)
	assert.NotNil(t, resp.Invoice)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta, edición y baja
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_RequiresClientAndService(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateDealRequest{ServiceID: "s1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.Create(context.Background(), dto.CreateDealRequest{ClientID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.deals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DefaultsFromService(t *testing.T) {
	f := newFixture()
	var created *entity.Deal
	f.deals.On("Create", mock.Anything, mock.AnythingOfType("*entity.Deal")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Deal) }).
		Return(nil)

	resp, err := f.uc.Create(context.Background(), dto.CreateDealRequest{ClientID: "c1", ServiceID: "s1"})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.StageNewContact, created.Stage)
	assert.Equal(t, entity.TemperatureWarm, created.Temperature)
	assert.Equal(t, entity.PaymentPending, created.PaymentStatus)
	assert.True(t, decimal.NewFromInt(1500).Equal(created.Value))
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.Equal(t, "Consultoria Estratégica", resp.ServiceName)
	assert.Equal(t, 1, f.ws.refreshes)
}

func TestCreate_RespuestaConCacheRefrescada(t *testing.T) {
	f := newFixture()
	f.ws.onRefresh = func(snap *workspace.Snapshot) {
		snap.Clients = append(snap.Clients, &entity.Client{ID: "c9", Name: "Pedro Santos"})
	}
	f.deals.On("Create", mock.Anything, mock.Anything).Return(nil)

	resp, err := f.uc.Create(context.Background(), dto.CreateDealRequest{ClientID: "c9", ServiceID: "s1"})

	require.NoError(t, err)
	assert.Equal(t, "Pedro Santos", resp.ClientName)
}

func TestCreate_ExplicitZeroValueIsKept(t *testing.T) {
	f := newFixture()
	var created *entity.Deal
	f.deals.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Deal) }).
		Return(nil)

	zero := decimal.Zero
	_, err := f.uc.Create(context.Background(), dto.CreateDealRequest{ClientID: "c1", ServiceID: "s1", Value: &zero})

	require.NoError(t, err)
	assert.True(t, created.Value.IsZero())
}

func TestUpdate_EditsFieldsButNotStage(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	details := "Cliente pediu desconto"
	f.deals.On("Update", mock.Anything, "d1", entity.DealPatch{Details: &details}).Return(nil).Once()

	resp, err := f.uc.Update(context.Background(), "d1", dto.UpdateDealRequest{Details: &details})

	require.NoError(t, err)
	assert.Equal(t, details, resp.Details)
	assert.Equal(t, "NEGOTIATION", resp.Stage)
}

func TestDelete_Unconditional(t *testing.T) {
	f := newFixture(dealAt(entity.StageClosed))
	f.deals.On("Delete", mock.Anything, "d1").Return(nil).Once()

	require.NoError(t, f.uc.Delete(context.Background(), "d1"))
	f.invoices.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestBoard_GroupsByStage(t *testing.T) {
	f := newFixture(dealAt(entity.StageNegotiation))
	cols := f.uc.Board(context.Background())
	require.Len(t, cols, 5)
	assert.Equal(t, 1, cols[2].Count)
	assert.Equal(t, "Em Negociação", cols[2].Label)
}
