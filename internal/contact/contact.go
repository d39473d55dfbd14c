package contact

import (
	"registrar/internal/contact/models"
	"registrar/internal/contact/service"
	"registrar/internal/storage"
	"registrar/pkg/domain"
)

// Service exposes the contact registry.
type Service = service.Service

// NewStore returns an empty in-memory contact store.
func NewStore() *storage.InMemory[domain.ContactID, *models.Contact] {
	return storage.NewInMemory[domain.ContactID, *models.Contact]()
}

// NewService constructs a contact registry backed by a fresh in-memory store.
func NewService(opts ...service.Option) *Service {
	return service.New(NewStore(), opts...)
}
