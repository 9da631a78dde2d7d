package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"RegistryAdmin/internal/model"
	"RegistryAdmin/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EndpointRequest - регистрация endpoint'а сервис-провайдера.
type EndpointRequest struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// ServiceRequest - добавление составного сервиса.
type ServiceRequest struct {
	Name      string   `json:"name"`
	Endpoints []string `json:"endpoints"`
}

// ServiceProviderService управляет сервис-провайдером, его endpoint'ами и сервисами.
type ServiceProviderService struct {
	repo      repo.ServiceProviderRepository
	customers repo.CustomerRepository
	logger    *zap.SugaredLogger
}

func NewServiceProviderService(r repo.ServiceProviderRepository, customers repo.CustomerRepository, logger *zap.SugaredLogger) *ServiceProviderService {
	return &ServiceProviderService{repo: r, customers: customers, logger: logger}
}

func (s *ServiceProviderService) Get(ctx context.Context) (*model.ServiceProvider, error) {
	return s.repo.Get(ctx)
}

// Save создаёт или обновляет провайдера. Пустой ID сохраняет текущий DID,
// а при первом создании генерирует новый.
func (s *ServiceProviderService) Save(ctx context.Context, sp model.ServiceProvider) (*model.ServiceProvider, error) {
	sp.Name = strings.TrimSpace(sp.Name)
	if sp.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if sp.ID == "" {
		current, err := s.repo.Get(ctx)
		switch {
		case err == nil:
			sp.ID = current.ID
		case errors.Is(err, repo.ErrNotFound):
			sp.ID = NewDID()
		default:
			return nil, err
		}
	}
	if err := s.repo.Save(ctx, &sp); err != nil {
		return nil, err
	}
	s.logger.Infow("service provider saved", "id", sp.ID)
	// DID провайдера мог смениться, ссылки клиентов обновляем
	if err := s.syncCustomers(ctx); err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *ServiceProviderService) Endpoints(ctx context.Context) ([]model.Endpoint, error) {
	if _, err := s.repo.Get(ctx); err != nil {
		return nil, err
	}
	res, err := s.repo.ListEndpoints(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Endpoint{}
	}
	return res, nil
}

// RegisterEndpoint требует существующего провайдера и абсолютного URL.
func (s *ServiceProviderService) RegisterEndpoint(ctx context.Context, req EndpointRequest) (*model.Endpoint, error) {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	u, err := url.Parse(req.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: url must be absolute", ErrInvalidInput)
	}
	if _, err := s.repo.Get(ctx); err != nil {
		return nil, err
	}
	ep := &model.Endpoint{ID: uuid.NewString(), Type: req.Type, URL: u.String()}
	if err := s.repo.CreateEndpoint(ctx, ep); err != nil {
		return nil, err
	}
	s.logger.Infow("endpoint registered", "id", ep.ID, "type", ep.Type)
	if ep.Type == model.NutsCommService {
		if err := s.syncCustomers(ctx); err != nil {
			return nil, err
		}
	}
	return ep, nil
}

func (s *ServiceProviderService) DeleteEndpoint(ctx context.Context, id string) error {
	if err := uuid.Validate(id); err != nil {
		return fmt.Errorf("%w: invalid endpoint id", ErrInvalidInput)
	}
	return s.repo.DeleteEndpoint(ctx, id)
}

func (s *ServiceProviderService) Services(ctx context.Context) ([]model.Service, error) {
	res, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Service{}
	}
	return res, nil
}

// AddService проверяет, что все указанные endpoint'ы зарегистрированы.
func (s *ServiceProviderService) AddService(ctx context.Context, req ServiceRequest) (*model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Name == model.NutsCommService {
		return nil, fmt.Errorf("%w: %s is reserved", ErrInvalidInput, model.NutsCommService)
	}
	if len(req.Endpoints) > 0 {
		eps, err := s.repo.ListEndpoints(ctx)
		if err != nil {
			return nil, err
		}
		known := make(map[string]struct{}, len(eps))
		for _, ep := range eps {
			known[ep.ID] = struct{}{}
		}
		for _, id := range req.Endpoints {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("%w: unknown endpoint %q", ErrInvalidInput, id)
			}
		}
	}
	svc := &model.Service{ID: uuid.NewString(), Name: req.Name, Endpoints: req.Endpoints}
	if svc.Endpoints == nil {
		svc.Endpoints = []string{}
	}
	if err := s.repo.CreateService(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// syncCustomers прописывает NutsComm провайдера всем подключённым клиентам.
func (s *ServiceProviderService) syncCustomers(ctx context.Context) error {
	list, err := s.customers.List(ctx)
	if err != nil {
		return err
	}
	if err := syncNutsComm(ctx, s.repo, s.customers, list); err != nil {
		return err
	}
	s.logger.Debugw("customers synced", "count", len(list))
	return nil
}
