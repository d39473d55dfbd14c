package models

import (
	"time"

	"registrar/pkg/domain"
)

const MaxDescriptionLength = 50

// Appointment is a scheduled entry with a future date.
//
// Invariants:
//   - ID is present, at most 10 characters, and immutable
//   - Date was strictly after the construction instant; it has no updater
//     and is not re-checked once time passes it
//   - Description is present and at most 50 characters
type Appointment struct {
	id          domain.AppointmentID
	date        time.Time
	description string
}

// NewAppointment validates id, then date against now, then description, and
// stops at the first failure.
func NewAppointment(appointmentID string, date time.Time, description string, now time.Time) (*Appointment, error) {
	id, err := domain.ParseAppointmentID(appointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CheckFuture("date", date, now); err != nil {
		return nil, err
	}
	if err := checkDescription(description); err != nil {
		return nil, err
	}
	return &Appointment{id: id, date: date, description: description}, nil
}

func (a *Appointment) ID() domain.AppointmentID { return a.id }
func (a *Appointment) Date() time.Time          { return a.date }
func (a *Appointment) Description() string      { return a.description }

// UpdateDescription replaces the description. On error the previous value is
// kept.
func (a *Appointment) UpdateDescription(description string) error {
	if err := checkDescription(description); err != nil {
		return err
	}
	a.description = description
	return nil
}

func checkDescription(description string) error {
	return domain.CheckMaxLength("description", description, MaxDescriptionLength)
}
