package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "registrar/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs are present and at most 10 characters"
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseTaskID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, "task_id", dErrors.FieldOf(err))
	})

	t.Run("rejects id longer than limit", func(t *testing.T) {
		_, err := ParseContactID("ID1234567890")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Equal(t, "contact_id", dErrors.FieldOf(err))
	})

	t.Run("accepts id at limit", func(t *testing.T) {
		id, err := ParseAppointmentID("ID12345678")
		require.NoError(t, err)
		assert.Equal(t, AppointmentID("ID12345678"), id)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		id, err := ParseTaskID(strings.Repeat("é", MaxIDLength))
		require.NoError(t, err)
		assert.Equal(t, MaxIDLength, len([]rune(id.String())))
	})
}

func TestParseID_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Empty string", "", true},
		{"Single character", "A", false},
		{"Short id", "A123", false},
		{"Exactly ten", "0123456789", false},
		{"Eleven", "0123456789A", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppointmentID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestAllIDTypes_ConsistentBehavior ensures all ID types share one rule.
func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	t.Run("all accept valid id", func(t *testing.T) {
		_, errAppointment := ParseAppointmentID("A123")
		_, errContact := ParseContactID("A123")
		_, errTask := ParseTaskID("A123")

		require.NoError(t, errAppointment)
		require.NoError(t, errContact)
		require.NoError(t, errTask)
	})

	for _, input := range []string{"", "ABCDEFGHIJK"} {
		t.Run("all reject: "+input, func(t *testing.T) {
			_, errAppointment := ParseAppointmentID(input)
			_, errContact := ParseContactID(input)
			_, errTask := ParseTaskID(input)

			require.Error(t, errAppointment)
			require.Error(t, errContact)
			require.Error(t, errTask)
		})
	}
}

func TestNewContactID(t *testing.T) {
	t.Run("generates parseable ids", func(t *testing.T) {
		id := NewContactID()
		parsed, err := ParseContactID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
		assert.Len(t, id.String(), MaxIDLength)
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		seen := make(map[ContactID]struct{})
		for i := 0; i < 100; i++ {
			seen[NewContactID()] = struct{}{}
		}
		assert.Len(t, seen, 100)
	})
}
