package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/star-hub/starid/internal/config"
	"github.com/star-hub/starid/internal/utils/logger"
)

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	cfg    *config.Config
}

func New(cfg *config.Config, log *slog.Logger) *CustomRouter {
	router := &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		cfg:    cfg,
	}

	return router
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ServiceHandler interface {
	Info(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	ServiceHandler
}

// withLogger puts a request-scoped logger into the request context,
// tagged with the request ID. Handlers retrieve it via logger.FromContext.
func (cr *CustomRouter) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := cr.logger
		if log == nil {
			log = slog.Default()
		}
		if reqID := middleware.GetReqID(r.Context()); reqID != "" {
			log = log.With(slog.String("request_id", reqID))
		}
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context(), log)))
	})
}

func (cr *CustomRouter) SetRouter(h Handler) {
	cr.router.Use(middleware.RequestID)
	cr.router.Use(cr.withLogger)

	cr.router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})
	})
	cr.router.Get("/", h.Info)
	cr.router.Get("/ping", h.Ping)

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
