// Package seed loads a YAML fixture of appointments, contacts and tasks and
// registers it into the three registries.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"registrar/internal/appointment"
	appointmentModels "registrar/internal/appointment/models"
	"registrar/internal/contact"
	contactModels "registrar/internal/contact/models"
	"registrar/internal/task"
	taskModels "registrar/internal/task/models"
	dErrors "registrar/pkg/domain-errors"
)

type Fixture struct {
	Appointments []AppointmentRecord `yaml:"appointments"`
	Contacts     []ContactRecord     `yaml:"contacts"`
	Tasks        []TaskRecord        `yaml:"tasks"`
}

type AppointmentRecord struct {
	ID          string    `yaml:"id"`
	Date        time.Time `yaml:"date"`
	Description string    `yaml:"description"`
}

// ContactRecord leaves omitted fields nil so they take the contact defaults.
type ContactRecord struct {
	ID          string  `yaml:"id"`
	FirstName   *string `yaml:"first_name"`
	LastName    *string `yaml:"last_name"`
	PhoneNumber *string `yaml:"phone_number"`
	Address     *string `yaml:"address"`
}

type TaskRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Registries are the targets of Apply.
type Registries struct {
	Appointments *appointment.Service
	Contacts     *contact.Service
	Tasks        *task.Service
}

// Summary counts the records Apply registered.
type Summary struct {
	Appointments int
	Contacts     int
	Tasks        int
}

// Load decodes a fixture. Unknown keys are rejected.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "failed to decode seed fixture")
	}
	return &fx, nil
}

func LoadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "failed to open seed fixture")
	}
	defer f.Close()
	return Load(f)
}

// Apply registers appointments, then contacts, then tasks, and stops at the
// first record that fails. Records registered before the failure stay.
// Appointment dates are checked against now.
func Apply(ctx context.Context, fx *Fixture, now time.Time, regs Registries) (Summary, error) {
	var sum Summary
	if fx == nil {
		return sum, nil
	}

	for i, rec := range fx.Appointments {
		a, err := appointmentModels.NewAppointment(rec.ID, rec.Date, rec.Description, now)
		if err == nil {
			err = regs.Appointments.Add(ctx, a)
		}
		if err != nil {
			return sum, recordError(err, "appointment", i)
		}
		sum.Appointments++
	}

	for i, rec := range fx.Contacts {
		c, err := contactModels.NewContact(rec.ID, rec.options()...)
		if err == nil {
			err = regs.Contacts.Add(ctx, c)
		}
		if err != nil {
			return sum, recordError(err, "contact", i)
		}
		sum.Contacts++
	}

	for i, rec := range fx.Tasks {
		t, err := taskModels.NewTask(rec.ID, rec.Name, rec.Description)
		if err == nil {
			err = regs.Tasks.Add(ctx, t)
		}
		if err != nil {
			return sum, recordError(err, "task", i)
		}
		sum.Tasks++
	}

	return sum, nil
}

func (rec ContactRecord) options() []contactModels.Option {
	var opts []contactModels.Option
	if rec.FirstName != nil {
		opts = append(opts, contactModels.WithFirstName(*rec.FirstName))
	}
	if rec.LastName != nil {
		opts = append(opts, contactModels.WithLastName(*rec.LastName))
	}
	if rec.PhoneNumber != nil {
		opts = append(opts, contactModels.WithPhoneNumber(*rec.PhoneNumber))
	}
	if rec.Address != nil {
		opts = append(opts, contactModels.WithAddress(*rec.Address))
	}
	return opts
}

// recordError keeps the record's own code and field so callers can still
// branch on them.
func recordError(err error, kind string, index int) error {
	wrapped := dErrors.Wrap(err, dErrors.CodeOf(err), fmt.Sprintf("seed %s #%d", kind, index))
	wrapped.Field = dErrors.FieldOf(err)
	return wrapped
}
