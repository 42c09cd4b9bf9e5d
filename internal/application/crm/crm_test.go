package crm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pipeday-api/internal/application/crm"
	"github.com/jhoicas/pipeday-api/internal/application/dto"
	"github.com/jhoicas/pipeday-api/internal/application/workspace"
	"github.com/jhoicas/pipeday-api/internal/domain"
	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository/mocks"
)

type fakeWorkspace struct {
	snap      workspace.Snapshot
	refreshes int
}

func (f *fakeWorkspace) Snapshot() workspace.Snapshot      { return f.snap }
func (f *fakeWorkspace) Refresh(ctx context.Context) error { f.refreshes++; return nil }

func seededWorkspace() *fakeWorkspace {
	return &fakeWorkspace{snap: workspace.Snapshot{
		Clients: []*entity.Client{
			{ID: "1", Name: "João Silva", Email: "joao@tech.com"},
			{ID: "2", Name: "Maria Souza", Email: "maria@design.co"},
			{ID: "3", Name: "Pedro Santos", Email: "pedro@marketing.com"},
		},
		Services: []*entity.Service{
			{ID: "s1", Name: "Consultoria Estratégica", BaseValue: decimal.NewFromInt(1500), BillingType: entity.BillingUnique},
			{ID: "s2", Name: "Gestão de Redes Sociais", BaseValue: decimal.NewFromInt(800), BillingType: entity.BillingMonthly},
		},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClient_List_FilterAndPaginate(t *testing.T) {
	uc := crm.NewClientUseCase(new(mocks.ClientRepository), seededWorkspace(), zerolog.Nop())

	all := uc.List(context.Background(), dto.ListQuery{PageSize: 2})
	assert.Len(t, all.Items, 2)
	assert.Equal(t, 3, all.Page.Total)
	assert.Equal(t, 2, all.Page.MaxPage)

	second := uc.List(context.Background(), dto.ListQuery{PageSize: 2, Page: 2})
	require.Len(t, second.Items, 1)
	assert.Equal(t, "Pedro Santos", second.Items[0].Name)

	filtered := uc.List(context.Background(), dto.ListQuery{Q: "MARIA"})
	require.Len(t, filtered.Items, 1)
	assert.Equal(t, "2", filtered.Items[0].ID)
}

func TestClient_Create_RequiresName(t *testing.T) {
	repo := new(mocks.ClientRepository)
	uc := crm.NewClientUseCase(repo, seededWorkspace(), zerolog.Nop())

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestClient_Create_PersistsAndRefreshes(t *testing.T) {
	repo := new(mocks.ClientRepository)
	ws := seededWorkspace()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Client) bool {
		return c.Name == "Ana Lima" && c.ID != ""
	})).Return(nil)
	uc := crm.NewClientUseCase(repo, ws, zerolog.Nop())

	resp, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: " Ana Lima ", Email: "ana@lima.com"})

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", resp.Name)
	assert.Equal(t, 1, ws.refreshes)
}

func TestClient_Create_StoreFailure(t *testing.T) {
	repo := new(mocks.ClientRepository)
	ws := seededWorkspace()
	repo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.PersistenceError{Op: "create", Entity: "client", Err: errors.New("down")})
	uc := crm.NewClientUseCase(repo, ws, zerolog.Nop())

	_, err := uc.Create(context.Background(), dto.CreateClientRequest{Name: "Ana"})

	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.Zero(t, ws.refreshes)
}

func TestClient_Update_OnlyPresentFields(t *testing.T) {
	repo := new(mocks.ClientRepository)
	phone := "11911112222"
	repo.On("Update", mock.Anything, "1", entity.ClientPatch{Phone: &phone}).Return(nil).Once()
	uc := crm.NewClientUseCase(repo, seededWorkspace(), zerolog.Nop())

	resp, err := uc.Update(context.Background(), "1", dto.UpdateClientRequest{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, "João Silva", resp.Name)
	assert.Equal(t, phone, resp.Phone)
	repo.AssertExpectations(t)
}

func TestClient_Update_NotFound(t *testing.T) {
	uc := crm.NewClientUseCase(new(mocks.ClientRepository), seededWorkspace(), zerolog.Nop())
	name := "X"
	_, err := uc.Update(context.Background(), "99", dto.UpdateClientRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Servicios
// ──────────────────────────────────────────────────────────────────────────────

func TestService_Create_Validation(t *testing.T) {
	repo := new(mocks.ServiceRepository)
	uc := crm.NewServiceUseCase(repo, seededWorkspace(), zerolog.Nop())

	_, err := uc.Create(context.Background(), dto.CreateServiceRequest{Name: "SEO", BaseValue: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateServiceRequest{Name: "SEO", BillingType: "YEARLY"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_DefaultsToUnique(t *testing.T) {
	repo := new(mocks.ServiceRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Service) bool {
		return s.BillingType == entity.BillingUnique
	})).Return(nil)
	uc := crm.NewServiceUseCase(repo, seededWorkspace(), zerolog.Nop())

	resp, err := uc.Create(context.Background(), dto.CreateServiceRequest{Name: "SEO", BaseValue: decimal.NewFromInt(900)})

	require.NoError(t, err)
	assert.Equal(t, "UNIQUE", resp.BillingType)
}

func TestService_Update_ZeroValueIsAChange(t *testing.T) {
	repo := new(mocks.ServiceRepository)
	zero := decimal.Zero
	repo.On("Update", mock.Anything, "s1", entity.ServicePatch{BaseValue: &zero}).Return(nil).Once()
	uc := crm.NewServiceUseCase(repo, seededWorkspace(), zerolog.Nop())

	resp, err := uc.Update(context.Background(), "s1", dto.UpdateServiceRequest{BaseValue: &zero})

	require.NoError(t, err)
	assert.True(t, resp.BaseValue.IsZero())
	repo.AssertExpectations(t)
}

func TestService_List_Filter(t *testing.T) {
	uc := crm.NewServiceUseCase(new(mocks.ServiceRepository), seededWorkspace(), zerolog.Nop())
	res := uc.List(context.Background(), dto.ListQuery{Q: "redes"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, "s2", res.Items[0].ID)
}
