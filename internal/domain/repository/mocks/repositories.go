// Package mocks dobles de testify/mock para los puertos de datos. Solo se usan en tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/pipeday-api/internal/domain/entity"
	"github.com/jhoicas/pipeday-api/internal/domain/repository"
)

var (
	_ repository.ClientRepository   = (*ClientRepository)(nil)
	_ repository.ServiceRepository  = (*ServiceRepository)(nil)
	_ repository.DealRepository     = (*DealRepository)(nil)
	_ repository.InvoiceRepository  = (*InvoiceRepository)(nil)
	_ repository.SettingsRepository = (*SettingsRepository)(nil)
)

// ClientRepository
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) List(ctx context.Context) ([]*entity.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Client), args.Error(1)
}

func (m *ClientRepository) Create(ctx context.Context, c *entity.Client) error {
	return m.Called(ctx, c).Error(0)
}

func (m *ClientRepository) Update(ctx context.Context, id string, patch entity.ClientPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ServiceRepository
type ServiceRepository struct {
	mock.Mock
}

func (m *ServiceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Service), args.Error(1)
}

func (m *ServiceRepository) Create(ctx context.Context, s *entity.Service) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ServiceRepository) Update(ctx context.Context, id string, patch entity.ServicePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ServiceRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// DealRepository
type DealRepository struct {
	mock.Mock
}

func (m *DealRepository) List(ctx context.Context) ([]*entity.Deal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Deal), args.Error(1)
}

// Get acepta un valor fijo o una func(ctx, id) para leer un estado que cambia durante el test.
func (m *DealRepository) Get(ctx context.Context, id string) (*entity.Deal, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, string) (*entity.Deal, error)); ok {
		return fn(ctx, id)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Deal), args.Error(1)
}

func (m *DealRepository) Create(ctx context.Context, d *entity.Deal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *DealRepository) Update(ctx context.Context, id string, patch entity.DealPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *DealRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// InvoiceRepository
type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) List(ctx context.Context) ([]*entity.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *InvoiceRepository) Update(ctx context.Context, id string, patch entity.InvoicePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *InvoiceRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// SettingsRepository
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Load(ctx context.Context) (*entity.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Settings), args.Error(1)
}

func (m *SettingsRepository) Save(ctx context.Context, s entity.Settings) error {
	return m.Called(ctx, s).Error(0)
}
