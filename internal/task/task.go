package task

import (
	"registrar/internal/storage"
	"registrar/internal/task/models"
	"registrar/internal/task/service"
	"registrar/pkg/domain"
)

// Service exposes the task registry.
type Service = service.Service

// NewStore returns an empty in-memory task store.
func NewStore() *storage.InMemory[domain.TaskID, *models.Task] {
	return storage.NewInMemory[domain.TaskID, *models.Task]()
}

// NewService constructs a task registry backed by a fresh in-memory store.
func NewService(opts ...service.Option) *Service {
	return service.New(NewStore(), opts...)
}
