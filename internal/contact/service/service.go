package service

import (
	"context"
	"errors"
	"log/slog"

	"registrar/internal/contact/models"
	"registrar/internal/platform/metrics"
	"registrar/internal/platform/observability"
	"registrar/pkg/domain"
	dErrors "registrar/pkg/domain-errors"
	"registrar/pkg/platform/sentinel"
)

// createAttempts bounds id regeneration when a generated id collides.
const createAttempts = 3

type Store interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id domain.ContactID) (*models.Contact, error)
	Delete(ctx context.Context, id domain.ContactID) error
	List(ctx context.Context) ([]*models.Contact, error)
	Count(ctx context.Context) (int, error)
}

// Service is the contact registry. Updates go through the stored
// *models.Contact, so the Store must hand back the pointer it was given.
//
// Service is not safe for concurrent use; guard it externally when shared.
type Service struct {
	store   Store
	newID   func() domain.ContactID
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

// WithIDGenerator replaces domain.NewContactID as the source of ids for
// Create.
func WithIDGenerator(fn func() domain.ContactID) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// New constructs a Service.
func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, newID: domain.NewContactID}
	for _, opt := range opts {
		opt(s)
	}
	s.obs = observability.NewRecorder(metrics.RegistryContact, s.logger, s.metrics)
	return s
}

// Create builds a contact under a generated id and registers it. Omitted
// fields take the models defaults.
func (s *Service) Create(ctx context.Context, opts ...models.Option) (*models.Contact, error) {
	for attempt := 1; ; attempt++ {
		contact, err := models.NewContact(s.newID().String(), opts...)
		if err != nil {
			return nil, err
		}
		err = s.Add(ctx, contact)
		if err == nil {
			return contact, nil
		}
		if !dErrors.HasCode(err, dErrors.CodeConflict) || attempt == createAttempts {
			return nil, err
		}
	}
}

// Add stores a contact. Fails with CodeConflict when contact is nil or its
// id is already registered.
func (s *Service) Add(ctx context.Context, contact *models.Contact) error {
	ctx, span := s.obs.Start(ctx, "add")
	defer span.End()

	if contact == nil {
		return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "contact cannot be nil"))
	}
	if err := s.store.Create(ctx, contact); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return s.obs.Failed(ctx, span, "add", dErrors.New(dErrors.CodeConflict, "contact already exists"))
		}
		return s.obs.Failed(ctx, span, "add", dErrors.Wrap(err, dErrors.CodeInternal, "failed to add contact"))
	}
	s.obs.Added(ctx, span, contact.ID().String())
	return nil
}

// Delete removes a contact. Fails with CodeNotFound for an unknown id.
func (s *Service) Delete(ctx context.Context, id domain.ContactID) error {
	ctx, span := s.obs.Start(ctx, "delete", "record_id", id.String())
	defer span.End()

	if err := s.store.Delete(ctx, id); err != nil {
		return s.obs.Failed(ctx, span, "delete", translate(err, "failed to delete contact"))
	}
	s.obs.Deleted(ctx, span, id.String())
	return nil
}

// The Update methods fail with CodeNotFound for an unknown id and return
// the contact's own CodeInvalidInput error for an invalid value, leaving
// the field unchanged.

func (s *Service) UpdateFirstName(ctx context.Context, id domain.ContactID, firstName string) error {
	return s.update(ctx, id, "first_name", func(c *models.Contact) error {
		return c.UpdateFirstName(firstName)
	})
}

func (s *Service) UpdateLastName(ctx context.Context, id domain.ContactID, lastName string) error {
	return s.update(ctx, id, "last_name", func(c *models.Contact) error {
		return c.UpdateLastName(lastName)
	})
}

func (s *Service) UpdatePhoneNumber(ctx context.Context, id domain.ContactID, phoneNumber string) error {
	return s.update(ctx, id, "phone_number", func(c *models.Contact) error {
		return c.UpdatePhoneNumber(phoneNumber)
	})
}

func (s *Service) UpdateAddress(ctx context.Context, id domain.ContactID, address string) error {
	return s.update(ctx, id, "address", func(c *models.Contact) error {
		return c.UpdateAddress(address)
	})
}

// Get returns the registered contact. Callers must not mutate it directly;
// use the Update methods.
func (s *Service) Get(ctx context.Context, id domain.ContactID) (*models.Contact, error) {
	contact, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to get contact")
	}
	return contact, nil
}

// List returns all contacts ordered by id.
func (s *Service) List(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list contacts")
	}
	return contacts, nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count contacts")
	}
	return n, nil
}

func (s *Service) update(ctx context.Context, id domain.ContactID, field string, apply func(*models.Contact) error) error {
	operation := "update_" + field
	ctx, span := s.obs.Start(ctx, operation, "record_id", id.String())
	defer span.End()

	contact, err := s.store.FindByID(ctx, id)
	if err != nil {
		return s.obs.Failed(ctx, span, operation, translate(err, "failed to load contact"))
	}
	if err := apply(contact); err != nil {
		return s.obs.Failed(ctx, span, operation, err)
	}
	s.obs.Updated(ctx, span, id.String(), field)
	return nil
}

func translate(err error, message string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "contact not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}
