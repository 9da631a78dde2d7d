package service

import (
	"context"

	"RegistryAdmin/internal/model"
	"RegistryAdmin/internal/repo"

	"github.com/stretchr/testify/mock"
)

// мок для repo.CustomerRepository
type mockCustomerRepo struct{ mock.Mock }

func (m *mockCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCustomerRepo) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*model.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Customer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) Update(ctx context.Context, id string, updates map[string]any) (*model.Customer, error) {
	args := m.Called(ctx, id, updates)
	if c, ok := args.Get(0).(*model.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) ListServiceRefs(ctx context.Context, customerID string) ([]model.CustomerServiceRef, error) {
	args := m.Called(ctx, customerID)
	if v, ok := args.Get(0).([]model.CustomerServiceRef); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerRepo) ReplaceServiceRefs(ctx context.Context, customerID string, refs []model.CustomerServiceRef) error {
	return m.Called(ctx, customerID, refs).Error(0)
}

func (m *mockCustomerRepo) UpsertServiceRefs(ctx context.Context, refs []model.CustomerServiceRef) error {
	return m.Called(ctx, refs).Error(0)
}

var _ repo.CustomerRepository = (*mockCustomerRepo)(nil)

// мок для repo.ServiceProviderRepository
type mockSPRepo struct{ mock.Mock }

func (m *mockSPRepo) Get(ctx context.Context) (*model.ServiceProvider, error) {
	args := m.Called(ctx)
	if sp, ok := args.Get(0).(*model.ServiceProvider); ok {
		return sp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSPRepo) Save(ctx context.Context, sp *model.ServiceProvider) error {
	return m.Called(ctx, sp).Error(0)
}

func (m *mockSPRepo) ListEndpoints(ctx context.Context) ([]model.Endpoint, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Endpoint); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSPRepo) CreateEndpoint(ctx context.Context, ep *model.Endpoint) error {
	return m.Called(ctx, ep).Error(0)
}

func (m *mockSPRepo) DeleteEndpoint(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSPRepo) ListServices(ctx context.Context) ([]model.Service, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Service); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSPRepo) CreateService(ctx context.Context, s *model.Service) error {
	return m.Called(ctx, s).Error(0)
}

var _ repo.ServiceProviderRepository = (*mockSPRepo)(nil)
