package domain

import (
	"github.com/google/uuid"
)

// MaxIDLength bounds every record identifier.
const MaxIDLength = 10

// Typed identifiers keep appointment, contact, and task keys from being
// mixed up at compile time. Construct them with the Parse functions at
// trust boundaries; a direct conversion skips validation.
type (
	AppointmentID string
	ContactID     string
	TaskID        string
)

func ParseAppointmentID(s string) (AppointmentID, error) {
	if err := CheckMaxLength("appointment_id", s, MaxIDLength); err != nil {
		return "", err
	}
	return AppointmentID(s), nil
}

func ParseContactID(s string) (ContactID, error) {
	if err := CheckMaxLength("contact_id", s, MaxIDLength); err != nil {
		return "", err
	}
	return ContactID(s), nil
}

func ParseTaskID(s string) (TaskID, error) {
	if err := CheckMaxLength("task_id", s, MaxIDLength); err != nil {
		return "", err
	}
	return TaskID(s), nil
}

// NewContactID generates an identifier from the first MaxIDLength
// characters of a random UUID string.
func NewContactID() ContactID {
	return ContactID(uuid.NewString()[:MaxIDLength])
}

func (id AppointmentID) String() string { return string(id) }
func (id ContactID) String() string     { return string(id) }
func (id TaskID) String() string        { return string(id) }

func (id AppointmentID) IsNil() bool { return id == "" }
func (id ContactID) IsNil() bool     { return id == "" }
func (id TaskID) IsNil() bool        { return id == "" }
