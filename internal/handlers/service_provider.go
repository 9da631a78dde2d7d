package handlers

import (
	"net/http"

	"RegistryAdmin/internal/model"
	"RegistryAdmin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServiceProviderHandler обслуживает /web/service-provider и вложенные ресурсы.
type ServiceProviderHandler struct {
	SPService *service.ServiceProviderService
	Logger    *zap.SugaredLogger
}

func NewServiceProviderHandler(s *service.ServiceProviderService, logger *zap.SugaredLogger) *ServiceProviderHandler {
	return &ServiceProviderHandler{SPService: s, Logger: logger}
}

func (h *ServiceProviderHandler) Get(w http.ResponseWriter, r *http.Request) {
	sp, err := h.SPService.Get(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (h *ServiceProviderHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.ServiceProvider
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	sp, err := h.SPService.Save(r.Context(), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sp)
}

func (h *ServiceProviderHandler) Endpoints(w http.ResponseWriter, r *http.Request) {
	eps, err := h.SPService.Endpoints(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, eps)
}

func (h *ServiceProviderHandler) RegisterEndpoint(w http.ResponseWriter, r *http.Request) {
	var req service.EndpointRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ep, err := h.SPService.RegisterEndpoint(r.Context(), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, ep)
}

func (h *ServiceProviderHandler) DeleteEndpoint(w http.ResponseWriter, r *http.Request) {
	if err := h.SPService.DeleteEndpoint(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ServiceProviderHandler) Services(w http.ResponseWriter, r *http.Request) {
	list, err := h.SPService.Services(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ServiceProviderHandler) AddService(w http.ResponseWriter, r *http.Request) {
	var req service.ServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	s, err := h.SPService.AddService(r.Context(), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, s)
}
