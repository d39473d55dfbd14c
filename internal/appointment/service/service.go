package service

import (
	"context"
	"errors"
	"log/slog"

	"registrar/internal/appointment/models"
	"registrar/internal/platform/metrics"
	"registrar/internal/platform/observability"
	"registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	"registrar/pkg/platform/sentinel"
)

type Store interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, id domain.AppointmentID) (*models.Appointment, error)
	Delete(ctx context.Context, id domain.AppointmentID) error
	List(ctx context.Context) ([]*models.Appointment, error)
	Count(ctx context.Context) (int, error)
}

// Service is the appointment registry. Appointments are added and removed
// whole; there is no registry-level update.
//
// Service is not safe for concurrent use; guard it externally when shared.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	obs     *observability.Recorder
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store}
	for _, opt := range opts {
		opt(s)
	}
	s.obs = observability.NewRecorder(metrics.RegistryAppointment, s.logger, s.metrics)
	return s
}

// Add stores an appointment. Fails with CodeConflict when appointment is nil
// or its id is already registered.
func (s *Service) Add(ctx context.Context, appointment *models.Appointment) error {
	ctx, span := s.obs.Start(ctx, "add")
	defer span.End()

	if appointment == nil {
		return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "appointment cannot be nil"))
	}
	if err := s.store.Create(ctx, appointment); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "appointment already exists"))
		}
		return s.obs.Failed(ctx, span, "add", dErrors.Wrap(err, dErrors.CodeInternal, "failed to add appointment"))
	}
	s.obs.Added(ctx, span, appointment.ID().String())
	return nil
}

// Delete removes an appointment. Fails with CodeNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id domain.AppointmentID) error {
	ctx, span := s.obs.Start(ctx, "delete", "record_id", id.String())
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		return s.obs.Failed(ctx, span, "delete", translate(err, "failed to delete appointment"))
	}
	s.obs.Deleted(ctx, span, id.String())
	return nil
}

func (s *Service) Get(ctx context.Context, id domain.AppointmentID) (*models.Appointment, error) {
	appointment, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get appointment")
	}
	return appointment, nil
}

// List returns all appointments ordered by id.
func (s *Service) List(ctx context.Context) ([]*models.Appointment, error) {
	appointments, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list appointments")
	}
	return appointments, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count appointments")
	}
	return n, nil
}

func translate(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "appointment not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}
