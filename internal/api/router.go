package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hackgods/appointment-store/internal/appointment"
)

// AppointmentStore is the part of *appointment.Store the handlers use.
type AppointmentStore interface {
	Create(ctx context.Context, in appointment.NewAppointment) (*appointment.Appointment, error)
	List(ctx context.Context) ([]appointment.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]appointment.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]appointment.Appointment, error)
	Get(ctx context.Context, id string) (*appointment.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status appointment.AppointmentStatus) (*appointment.Appointment, error)
}

type RouterConfig struct {
	Store        AppointmentStore
	Logger       *zap.Logger
	Dependencies []Dependency
	Env          string
	Version      string
}

func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(log))

	health := NewHealthHandler(cfg.Dependencies, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	h := &appointmentHandler{store: cfg.Store, log: log}
	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/{id}", h.get)
		r.Patch("/{id}/status", h.updateStatus)
	})

	return r
}
