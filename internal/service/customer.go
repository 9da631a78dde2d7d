package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"RegistryAdmin/internal/model"
	"RegistryAdmin/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectCustomerRequest - данные для подключения нового клиента.
type ConnectCustomerRequest struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Town *string `json:"town,omitempty"`
}

// UpdateCustomerRequest - изменяемые поля клиента.
type UpdateCustomerRequest struct {
	Active bool    `json:"active"`
	Name   string  `json:"name"`
	Town   *string `json:"town,omitempty"`
}

// CustomerService инкапсулирует бизнес-логику работы с клиентами.
type CustomerService struct {
	repo   repo.CustomerRepository
	sp     repo.ServiceProviderRepository
	logger *zap.SugaredLogger
}

func NewCustomerService(r repo.CustomerRepository, sp repo.ServiceProviderRepository, logger *zap.SugaredLogger) *CustomerService {
	return &CustomerService{repo: r, sp: sp, logger: logger}
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	res, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.Customer{}
	}
	return res, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Connect регистрирует клиента и выдаёт ему DID.
func (s *CustomerService) Connect(ctx context.Context, req ConnectCustomerRequest) (*model.Customer, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	if req.ID == "" || req.Name == "" {
		return nil, fmt.Errorf("%w: id and name are required", ErrInvalidInput)
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	switch {
	case err == nil && existing != nil:
		return nil, ErrAlreadyExists
	case err != nil && !errors.Is(err, repo.ErrNotFound):
		return nil, err
	}

	c := &model.Customer{
		ID:   req.ID,
		Did:  NewDID(),
		Name: req.Name,
		Town: req.Town,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Infow("customer connected", "id", c.ID, "did", c.Did)

	// новый клиент сразу получает NutsComm провайдера, если он зарегистрирован
	if err := syncNutsComm(ctx, s.sp, s.repo, []model.Customer{*c}); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, req UpdateCustomerRequest) (*model.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, map[string]any{
		"name":   req.Name,
		"active": req.Active,
		"town":   req.Town,
	})
}

// NewDID генерирует идентификатор в пространстве did:nuts.
func NewDID() string {
	return "did:nuts:" + uuid.NewString()
}

// Services возвращает сервисы, включённые у клиента.
func (s *CustomerService) Services(ctx context.Context, id string) ([]model.CustomerServiceRef, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	res, err := s.repo.ListServiceRefs(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []model.CustomerServiceRef{}
	}
	return res, nil
}

// ManageServices приводит набор составных сервисов клиента к serviceIDs.
// Каждый id должен быть сервисом провайдера. NutsComm-ссылка не затрагивается.
func (s *CustomerService) ManageServices(ctx context.Context, id string, serviceIDs []string) ([]model.CustomerServiceRef, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sp, err := s.sp.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: service provider is not configured", ErrInvalidInput)
		}
		return nil, err
	}
	services, err := s.sp.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Service, len(services))
	for _, svc := range services {
		byID[svc.ID] = svc
	}

	refs := make([]model.CustomerServiceRef, 0, len(serviceIDs))
	seen := make(map[string]struct{}, len(serviceIDs))
	for _, sid := range serviceIDs {
		if _, dup := seen[sid]; dup {
			continue
		}
		seen[sid] = struct{}{}
		svc, ok := byID[sid]
		if !ok {
			return nil, fmt.Errorf("%w: unknown service %q", ErrInvalidInput, sid)
		}
		refs = append(refs, model.CustomerServiceRef{
			CustomerID: id,
			Type:       svc.Name,
			ServiceID:  svc.ID,
			Ref:        model.ServiceRef(sp.ID, svc.Name),
		})
	}
	if err := s.repo.ReplaceServiceRefs(ctx, id, refs); err != nil {
		return nil, err
	}
	s.logger.Infow("customer services updated", "id", id, "services", len(refs))
	return s.Services(ctx, id)
}

// syncNutsComm прописывает клиентам ссылку на NutsComm-endpoint провайдера.
// Ничего не делает, пока провайдер или его NutsComm-endpoint не заведены.
func syncNutsComm(ctx context.Context, sp repo.ServiceProviderRepository, customers repo.CustomerRepository, list []model.Customer) error {
	if len(list) == 0 {
		return nil
	}
	provider, err := sp.Get(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}
	eps, err := sp.ListEndpoints(ctx)
	if err != nil {
		return err
	}
	registered := false
	for _, ep := range eps {
		if ep.Type == model.NutsCommService {
			registered = true
			break
		}
	}
	if !registered {
		return nil
	}
	refs := make([]model.CustomerServiceRef, 0, len(list))
	for _, c := range list {
		refs = append(refs, model.CustomerServiceRef{
			CustomerID: c.ID,
			Type:       model.NutsCommService,
			Ref:        model.ServiceRef(provider.ID, model.NutsCommService),
		})
	}
	if err := customers.UpsertServiceRefs(ctx, refs); err != nil {
		return fmt.Errorf("register %s on customers: %w", model.NutsCommService, err)
	}
	return nil
}
