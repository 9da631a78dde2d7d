package handlers

import (
	"RegistryAdmin/internal/config"
	"RegistryAdmin/internal/middleware"
	"RegistryAdmin/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	sessionService *service.SessionService,
	customerService *service.CustomerService,
	spService *service.ServiceProviderService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	sessionHandler := NewSessionHandler(sessionService, logger, config)
	customerHandler := NewCustomerHandler(customerService, logger)
	spHandler := NewServiceProviderHandler(spService, logger)

	r.Post("/web/auth", sessionHandler.CreateSession)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/web/session", sessionHandler.Current)

		r.Get("/web/customers", customerHandler.List)
		r.Post("/web/customers", customerHandler.Connect)
		r.Get("/web/customers/{id}", customerHandler.Get)
		r.Put("/web/customers/{id}", customerHandler.Update)
		r.Get("/web/customers/{id}/services", customerHandler.Services)
		r.Put("/web/customers/{id}/services", customerHandler.ManageServices)

		r.Get("/web/service-provider", spHandler.Get)
		r.Put("/web/service-provider", spHandler.Save)
		r.Get("/web/service-provider/endpoints", spHandler.Endpoints)
		r.Post("/web/service-provider/endpoints", spHandler.RegisterEndpoint)
		r.Delete("/web/service-provider/endpoints/{id}", spHandler.DeleteEndpoint)
		r.Get("/web/service-provider/services", spHandler.Services)
		r.Post("/web/service-provider/services", spHandler.AddService)
	})

	return &Handler{Router: r}
}
