package seed

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registrar/internal/appointment"
	"registrar/internal/contact"
	contactModels "registrar/internal/contact/models"
	"registrar/internal/task"
	dErrors "registrar/pkg/domain-errors"
)

var now = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func newRegistries() Registries {
	return Registries{
		Appointments: appointment.NewService(),
		Contacts:     contact.NewService(),
		Tasks:        task.NewService(),
	}
}

func TestLoadFileAndApply(t *testing.T) {
	ctx := context.Background()
	fx, err := LoadFile("testdata/fixture.yaml")
	require.NoError(t, err)
	require.Len(t, fx.Appointments, 2)
	assert.Equal(t, time.Date(2030, time.May, 1, 9, 30, 0, 0, time.UTC), fx.Appointments[0].Date.UTC())

	regs := newRegistries()
	sum, err := Apply(ctx, fx, now, regs)
	require.NoError(t, err)
	assert.Equal(t, Summary{Appointments: 2, Contacts: 2, Tasks: 1}, sum)

	ada, err := regs.Contacts.Get(ctx, "C100")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", ada.LastName())

	grace, err := regs.Contacts.Get(ctx, "C101")
	require.NoError(t, err)
	assert.Equal(t, "Grace", grace.FirstName())
	assert.Equal(t, contactModels.DefaultText, grace.LastName())
	assert.Equal(t, contactModels.DefaultPhoneNumber, grace.PhoneNumber())

	report, err := regs.Tasks.Get(ctx, "T100")
	require.NoError(t, err)
	assert.Equal(t, "Write report", report.Name())
}

func TestLoad(t *testing.T) {
	t.Run("empty input is an empty fixture", func(t *testing.T) {
		fx, err := Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, fx.Tasks)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		_, err := Load(strings.NewReader("tasks:\n  - id: T1\n    owner: bob\n"))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/absent.yaml")
		assert.Error(t, err)
	})
}

func TestApplyStopsAtFirstInvalidRecord(t *testing.T) {
	ctx := context.Background()
	fx, err := Load(strings.NewReader(`
tasks:
  - id: T1
    name: First
    description: ok
  - id: T2
    name: ""
    description: ok
  - id: T3
    name: Third
    description: ok
`))
	require.NoError(t, err)

	regs := newRegistries()
	sum, err := Apply(ctx, fx, now, regs)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	assert.Equal(t, "name", dErrors.FieldOf(err))
	assert.Contains(t, err.Error(), "seed task #1")
	assert.Equal(t, 1, sum.Tasks)

	n, err := regs.Tasks.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestApplyRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("past appointment", func(t *testing.T) {
		fx := &Fixture{Appointments: []AppointmentRecord{
			{ID: "A1", Date: now.Add(-time.Hour), Description: "Late"},
		}}
		_, err := Apply(ctx, fx, now, newRegistries())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, "date", dErrors.FieldOf(err))
	})

	t.Run("duplicate contact id", func(t *testing.T) {
		fx := &Fixture{Contacts: []ContactRecord{{ID: "C1"}, {ID: "C1"}}}
		sum, err := Apply(ctx, fx, now, newRegistries())
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
		assert.Contains(t, err.Error(), "seed contact #1")
		assert.Equal(t, 1, sum.Contacts)
	})

	t.Run("nil fixture is a no-op", func(t *testing.T) {
		sum, err := Apply(ctx, nil, now, newRegistries())
		require.NoError(t, err)
		assert.Zero(t, sum)
	})
}
