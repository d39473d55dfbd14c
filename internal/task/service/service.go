package service

import (
	"context"
	"errors"
	"log/slog"

	"registrar/internal/platform/metrics"
	"registrar/internal/platform/observability"
	"registrar/internal/task/models"
	"registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	"registrar/pkg/platform/sentinel"
)

type Store interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id domain.TaskID) (*models.Task, error)
	Delete(ctx context.Context, id domain.TaskID) error
	List(ctx context.Context) ([]*models.Task, error)
	Count(ctx context.Context) (int, error)
}

// Service is the task registry. Updates go through the stored *models.Task,
// so the Store must hand back the pointer it was given.
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
	s.obs = observability.NewRecorder(metrics.RegistryTask, s.logger, s.metrics)
	return s
}

// Add stores a task. Fails with CodeConflict when task is nil or its id is
// already registered.
func (s *Service) Add(ctx context.Context, task *models.Task) error {
	ctx, span := s.obs.Start(ctx, "add")
	defer span.End()

	if task == nil {
		return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "task cannot be nil"))
	}
	if err := s.store.Create(ctx, task); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "task already exists"))
		}
		return s.obs.Failed(ctx, span, "add", dErrors.Wrap(err, dErrors.CodeInternal, "failed to add task"))
	}
	s.obs.Added(ctx, span, task.ID().String())
	return nil
}

// Delete removes a task. Fails with CodeNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id domain.TaskID) error {
	ctx, span := s.obs.Start(ctx, "delete", "record_id", id.String())
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		return s.obs.Failed(ctx, span, "delete", translate(err, "failed to delete task"))
	}
	s.obs.Deleted(ctx, span, id.String())
	return nil
}

// UpdateName sets the name of a registered task. An invalid name is
// returned as the task's own CodeInvalidInput error.
func (s *Service) UpdateName(ctx context.Context, id domain.TaskID, name string) error {
	return s.update(ctx, id, "name", func(t *models.Task) error {
		return t.UpdateName(name)
	})
}

func (s *Service) UpdateDescription(ctx context.Context, id domain.TaskID, description string) error {
	return s.update(ctx, id, "description", func(t *models.Task) error {
		return t.UpdateDescription(description)
	})
}

// Get returns the registered task. Callers must not mutate it directly;
// use the Update methods.
func (s *Service) Get(ctx context.Context, id domain.TaskID) (*models.Task, error) {
	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get task")
	}
	return task, nil
}

// List returns all tasks ordered by id.
func (s *Service) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list tasks")
	}
	return tasks, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count tasks")
	}
	return n, nil
}

func (s *Service) update(ctx context.Context, id domain.TaskID, field string, apply func(*models.Task) error) error {
	operation := "update_" + field
	ctx, span := s.obs.Start(ctx, operation, "record_id", id.String())
	defer span.End()

	task, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.obs.Failed(ctx, span, operation, translate(err, "failed to load task"))
	}
	if err := apply(task); err != nil {
		return s.obs.Failed(ctx, span, operation, err)
	}
	s.obs.Updated(ctx, span, id.String(), field)
	return nil
}

func translate(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "task not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}
