package handlers

import (
	"net/http"

	"RegistryAdmin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CustomerHandler обслуживает /web/customers.
type CustomerHandler struct {
	CustomerService *service.CustomerService
	Logger          *zap.SugaredLogger
}

func NewCustomerHandler(s *service.CustomerService, logger *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{CustomerService: s, Logger: logger}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.CustomerService.List(r.Context())
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.CustomerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Connect(w http.ResponseWriter, r *http.Request) {
	var req service.ConnectCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.CustomerService.Connect(r.Context(), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.CustomerService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) Services(w http.ResponseWriter, r *http.Request) {
	refs, err := h.CustomerService.Services(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

// ManageServices принимает JSON-массив id сервисов провайдера.
func (h *CustomerHandler) ManageServices(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := decodeJSON(r, &ids); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	refs, err := h.CustomerService.ManageServices(r.Context(), chi.URLParam(r, "id"), ids)
	if err != nil {
		writeError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}
