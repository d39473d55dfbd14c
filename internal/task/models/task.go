package models

import (
	"registrar/pkg/domain"
)

const (
	MaxNameLength        = 20
	MaxDescriptionLength = 50
)

// Task is a named unit of work.
//
// Invariants:
//   - ID is present, at most 10 characters, and immutable
//   - Name is present and at most 20 characters
//   - Description is present and at most 50 characters
type Task struct {
	id          domain.TaskID
	name        string
	description string
}

func NewTask(taskID, name, description string) (*Task, error) {
	id, err := domain.ParseTaskID(taskID)
	if err != nil {
		return nil, err
	}
	if err := checkName(name); err != nil {
		return nil, err
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}
	return &Task{id: id, name: name, description: description}, nil
}

func (t *Task) ID() domain.TaskID   { return t.id }
func (t *Task) Name() string        { return t.name }
func (t *Task) Description() string { return t.description }

// UpdateName replaces the name. On error the previous value is kept.
func (t *Task) UpdateName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	t.name = name
	return nil
}

// UpdateDescription replaces the description. On error the previous value is
// kept.
func (t *Task) UpdateDescription(description string) error {
	if err := checkDescription(description); err != nil {
		return err
	}
	t.description = description
	return nil
}

func checkName(name string) error {
	return domain.CheckMaxLength("name", name, MaxNameLength)
}

func checkDescription(description string) error {
	return domain.CheckMaxLength("description", description, MaxDescriptionLength)
}
