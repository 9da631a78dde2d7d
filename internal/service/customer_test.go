package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"RegistryAdmin/internal/model"
	"RegistryAdmin/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCustomerService_Connect(t *testing.T) {
	ctx := context.Background()
	m := new(mockCustomerRepo)
	sp := new(mockSPRepo)
	svc := NewCustomerService(m, sp, zap.NewNop().Sugar())

	t.Run("ok assigns did", func(t *testing.T) {
		m.ExpectedCalls = nil
		sp.ExpectedCalls = nil
		sp.On("Get", mock.Anything).Return(nil, repo.ErrNotFound).Once()
		m.On("GetByID", mock.Anything, "1").Return(nil, repo.ErrNotFound).Once()
		m.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
			return c.ID == "1" && c.Name == "Notenboom" && strings.HasPrefix(c.Did, "did:nuts:")
		})).Return(nil).Once()

		c, err := svc.Connect(ctx, ConnectCustomerRequest{ID: " 1 ", Name: "Notenboom"})
		assert.NoError(t, err)
		assert.Equal(t, "1", c.ID)
		m.AssertExpectations(t)
	})

	t.Run("conflict when id taken", func(t *testing.T) {
		m.ExpectedCalls = nil
		m.On("GetByID", mock.Anything, "1").Return(&model.Customer{ID: "1"}, nil).Once()

		c, err := svc.Connect(ctx, ConnectCustomerRequest{ID: "1", Name: "x"})
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrAlreadyExists)
		m.AssertExpectations(t)
	})

	t.Run("validation", func(t *testing.T) {
		m.ExpectedCalls = nil
		_, err := svc.Connect(ctx, ConnectCustomerRequest{ID: "", Name: "x"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.Connect(ctx, ConnectCustomerRequest{ID: "1", Name: "  "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repo failure bubbles up", func(t *testing.T) {
		m.ExpectedCalls = nil
		boom := errors.New("db down")
		m.On("GetByID", mock.Anything, "1").Return(nil, boom).Once()
		_, err := svc.Connect(ctx, ConnectCustomerRequest{ID: "1", Name: "x"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestCustomerService_ListAndUpdate(t *testing.T) {
	ctx := context.Background()
	m := new(mockCustomerRepo)
	svc := NewCustomerService(m, new(mockSPRepo), zap.NewNop().Sugar())

	m.On("List", mock.Anything).Return(nil, nil).Once()
	list, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)

	town := "Utrecht"
	m.On("Update", mock.Anything, "1", map[string]any{"name": "New", "active": true, "town": &town}).
		Return(&model.Customer{ID: "1", Name: "New", Active: true}, nil).Once()
	c, err := svc.Update(ctx, "1", UpdateCustomerRequest{Active: true, Name: "New", Town: &town})
	assert.NoError(t, err)
	assert.True(t, c.Active)

	_, err = svc.Update(ctx, "1", UpdateCustomerRequest{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
	m.AssertExpectations(t)
}

func TestCustomerService_ConnectRegistersNutsComm(t *testing.T) {
	ctx := context.Background()
	m := new(mockCustomerRepo)
	sp := new(mockSPRepo)
	svc := NewCustomerService(m, sp, zap.NewNop().Sugar())

	m.On("GetByID", mock.Anything, "1").Return(nil, repo.ErrNotFound).Once()
	m.On("Create", mock.Anything, mock.AnythingOfType("*model.Customer")).Return(nil).Once()
	sp.On("Get", mock.Anything).Return(&model.ServiceProvider{ID: "did:nuts:sp"}, nil).Once()
	sp.On("ListEndpoints", mock.Anything).Return([]model.Endpoint{{ID: "e1", Type: model.NutsCommService}}, nil).Once()
	m.On("UpsertServiceRefs", mock.Anything, []model.CustomerServiceRef{{
		CustomerID: "1",
		Type:       model.NutsCommService,
		Ref:        "did:nuts:sp?type=NutsComm",
	}}).Return(nil).Once()

	_, err := svc.Connect(ctx, ConnectCustomerRequest{ID: "1", Name: "Notenboom"})
	assert.NoError(t, err)
	m.AssertExpectations(t)
	sp.AssertExpectations(t)
}

func TestCustomerService_ConnectDuplicateOnInsert(t *testing.T) {
	ctx := context.Background()
	m := new(mockCustomerRepo)
	svc := NewCustomerService(m, new(mockSPRepo), zap.NewNop().Sugar())

	// параллельный connect успел вставить строку между проверкой и вставкой
	m.On("GetByID", mock.Anything, "1").Return(nil, repo.ErrNotFound).Once()
	m.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("%w: UNIQUE constraint failed", repo.ErrAlreadyExists)).Once()

	_, err := svc.Connect(ctx, ConnectCustomerRequest{ID: "1", Name: "x"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCustomerService_ManageServices(t *testing.T) {
	ctx := context.Background()
	services := []model.Service{{ID: "s1", Name: "bgz"}, {ID: "s2", Name: "eOverdracht"}}

	t.Run("replaces compound services", func(t *testing.T) {
		m := new(mockCustomerRepo)
		sp := new(mockSPRepo)
		svc := NewCustomerService(m, sp, zap.NewNop().Sugar())

		m.On("GetByID", mock.Anything, "1").Return(&model.Customer{ID: "1"}, nil).Twice()
		sp.On("Get", mock.Anything).Return(&model.ServiceProvider{ID: "did:nuts:sp"}, nil).Once()
		sp.On("ListServices", mock.Anything).Return(services, nil).Once()
		want := []model.CustomerServiceRef{{CustomerID: "1", Type: "eOverdracht", ServiceID: "s2", Ref: "did:nuts:sp?type=eOverdracht"}}
		m.On("ReplaceServiceRefs", mock.Anything, "1", want).Return(nil).Once()
		m.On("ListServiceRefs", mock.Anything, "1").Return(want, nil).Once()

		res, err := svc.ManageServices(ctx, "1", []string{"s2", "s2"})
		assert.NoError(t, err)
		assert.Equal(t, want, res)
		m.AssertExpectations(t)
	})

	t.Run("unknown service", func(t *testing.T) {
		m := new(mockCustomerRepo)
		sp := new(mockSPRepo)
		svc := NewCustomerService(m, sp, zap.NewNop().Sugar())

		m.On("GetByID", mock.Anything, "1").Return(&model.Customer{ID: "1"}, nil).Once()
		sp.On("Get", mock.Anything).Return(&model.ServiceProvider{ID: "did:nuts:sp"}, nil).Once()
		sp.On("ListServices", mock.Anything).Return(services, nil).Once()

		_, err := svc.ManageServices(ctx, "1", []string{"nope"})
		assert.ErrorIs(t, err, ErrInvalidInput)
		m.AssertNotCalled(t, "ReplaceServiceRefs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no provider", func(t *testing.T) {
		m := new(mockCustomerRepo)
		sp := new(mockSPRepo)
		svc := NewCustomerService(m, sp, zap.NewNop().Sugar())

		m.On("GetByID", mock.Anything, "1").Return(&model.Customer{ID: "1"}, nil).Once()
		sp.On("Get", mock.Anything).Return(nil, repo.ErrNotFound).Once()

		_, err := svc.ManageServices(ctx, "1", nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown customer", func(t *testing.T) {
		m := new(mockCustomerRepo)
		svc := NewCustomerService(m, new(mockSPRepo), zap.NewNop().Sugar())
		m.On("GetByID", mock.Anything, "x").Return(nil, repo.ErrNotFound).Once()

		_, err := svc.Services(ctx, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
