package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"RegistryAdmin/internal/cli/api"
	"RegistryAdmin/internal/cli/model"
	"RegistryAdmin/internal/cli/session"
)

var (
	// ErrRedirected - сервер ответил 401, пользователь уже отправлен на страницу входа.
	ErrRedirected = errors.New("session rejected by server")
	// ErrNotLoggedIn - локально нет сохранённой сессии.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidCredentials - сервер отверг логин/пароль.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// Registry - типизированный клиент API реестра поверх api.Client.
type Registry struct {
	api     *api.Client
	session *session.Accessor
}

var _ AuthService = (*Registry)(nil)

func NewRegistry(c *api.Client, s *session.Accessor) *Registry {
	return &Registry{api: c, session: s}
}

func (r *Registry) call(ctx context.Context, method, path string, body, out any) error {
	ok, err := r.api.Call(ctx, method, path, body, nil, out)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRedirected
	}
	return nil
}

type createSessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createSessionResponse struct {
	Token string `json:"token"`
}

// Login обменивает логин/пароль на токен и сохраняет его под ключом session.
func (r *Registry) Login(ctx context.Context, login, password string) error {
	var resp createSessionResponse
	err := r.call(ctx, http.MethodPost, "/web/auth", createSessionRequest{Username: login, Password: password}, &resp)
	if err != nil {
		var he *api.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusForbidden || he.StatusCode == http.StatusUnauthorized) {
			return ErrInvalidCredentials
		}
		if errors.Is(err, ErrRedirected) {
			return ErrInvalidCredentials
		}
		return err
	}
	if resp.Token == "" {
		return errors.New("server returned empty token")
	}
	if err := r.session.Save(resp.Token); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return r.session.SaveUser(login)
}

func (r *Registry) Logout() error {
	return r.session.Clear()
}

func (r *Registry) CurrentUser() (string, error) {
	if r.session.Token() == "" {
		return "", ErrNotLoggedIn
	}
	return r.session.User(), nil
}

// Whoami спрашивает у сервера владельца текущего токена.
func (r *Registry) Whoami(ctx context.Context) (string, error) {
	var resp struct {
		Username string `json:"username"`
	}
	if err := r.call(ctx, http.MethodGet, "/web/session", nil, &resp); err != nil {
		return "", err
	}
	return resp.Username, nil
}

func (r *Registry) Customers(ctx context.Context) ([]model.Customer, error) {
	var res []model.Customer
	if err := r.call(ctx, http.MethodGet, "/web/customers", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Registry) Customer(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	if err := r.call(ctx, http.MethodGet, "/web/customers/"+url.PathEscape(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Registry) ConnectCustomer(ctx context.Context, req model.ConnectCustomerRequest) (*model.Customer, error) {
	var c model.Customer
	if err := r.call(ctx, http.MethodPost, "/web/customers", req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Registry) UpdateCustomer(ctx context.Context, id string, req model.UpdateCustomerRequest) (*model.Customer, error) {
	var c model.Customer
	if err := r.call(ctx, http.MethodPut, "/web/customers/"+url.PathEscape(id), req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Registry) CustomerServices(ctx context.Context, id string) ([]model.CustomerServiceRef, error) {
	var res []model.CustomerServiceRef
	if err := r.call(ctx, http.MethodGet, "/web/customers/"+url.PathEscape(id)+"/services", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SetCustomerServices заменяет набор включённых клиенту сервисов. Пустой список выключает все.
func (r *Registry) SetCustomerServices(ctx context.Context, id string, serviceIDs []string) ([]model.CustomerServiceRef, error) {
	if serviceIDs == nil {
		serviceIDs = []string{}
	}
	var res []model.CustomerServiceRef
	if err := r.call(ctx, http.MethodPut, "/web/customers/"+url.PathEscape(id)+"/services", serviceIDs, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ServiceProvider возвращает (nil, nil), если провайдер ещё не настроен.
func (r *Registry) ServiceProvider(ctx context.Context) (*model.ServiceProvider, error) {
	var sp model.ServiceProvider
	err := r.call(ctx, http.MethodGet, "/web/service-provider", nil, &sp)
	if err != nil {
		var he *api.HTTPError
		if errors.As(err, &he) && he.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

func (r *Registry) SaveServiceProvider(ctx context.Context, sp model.ServiceProvider) (*model.ServiceProvider, error) {
	var res model.ServiceProvider
	if err := r.call(ctx, http.MethodPut, "/web/service-provider", sp, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *Registry) Endpoints(ctx context.Context) ([]model.Endpoint, error) {
	var res []model.Endpoint
	if err := r.call(ctx, http.MethodGet, "/web/service-provider/endpoints", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Registry) RegisterEndpoint(ctx context.Context, typ, endpointURL string) (*model.Endpoint, error) {
	var ep model.Endpoint
	body := map[string]string{"type": typ, "url": endpointURL}
	if err := r.call(ctx, http.MethodPost, "/web/service-provider/endpoints", body, &ep); err != nil {
		return nil, err
	}
	return &ep, nil
}

func (r *Registry) DeleteEndpoint(ctx context.Context, id string) error {
	return r.call(ctx, http.MethodDelete, "/web/service-provider/endpoints/"+url.PathEscape(id), nil, nil)
}

func (r *Registry) Services(ctx context.Context) ([]model.Service, error) {
	var res []model.Service
	if err := r.call(ctx, http.MethodGet, "/web/service-provider/services", nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Registry) AddService(ctx context.Context, name string, endpoints []string) (*model.Service, error) {
	var s model.Service
	body := map[string]any{"name": name, "endpoints": endpoints}
	if err := r.call(ctx, http.MethodPost, "/web/service-provider/services", body, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
