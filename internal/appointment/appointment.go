package appointment

import (
	"registrar/internal/appointment/models"
	"registrar/internal/appointment/service"
	"registrar/internal/storage"
	"registrar/pkg/domain"
)

// Service exposes the appointment registry.
type Service = service.Service

func NewStore() *storage.InMemory[domain.AppointmentID, *models.Appointment] {
	return storage.NewInMemory[domain.AppointmentID, *models.Appointment]()
}

// NewService constructs an appointment registry backed by a fresh in-memory
// store.
func NewService(opts ...service.Option) *Service {
	return service.New(NewStore(), opts...)
}
