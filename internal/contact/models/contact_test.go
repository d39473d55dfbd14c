package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "registrar/pkg/domain-errors"
)

type ContactSuite struct {
	suite.Suite
	contact *Contact
}

const (
	validContactID = "ID12345678"
	validFirstName = "John"
	validLastName  = "Doe"
	validPhone     = "1234567890"
	validAddress   = "123 Main St"
)

func TestContactSuite(t *testing.T) {
	suite.Run(t, new(ContactSuite))
}

func (s *ContactSuite) SetupTest() {
	c, err := NewContact(validContactID,
		WithFirstName(validFirstName),
		WithLastName(validLastName),
		WithPhoneNumber(validPhone),
		WithAddress(validAddress),
	)
	s.Require().NoError(err)
	s.contact = c
}

func (s *ContactSuite) TestConstruction() {
	s.Run("accessors return supplied values", func() {
		s.Equal(validContactID, s.contact.ID().String())
		s.Equal(validFirstName, s.contact.FirstName())
		s.Equal(validLastName, s.contact.LastName())
		s.Equal(validPhone, s.contact.PhoneNumber())
		s.Equal(validAddress, s.contact.Address())
	})

	s.Run("omitted fields take defaults", func() {
		c, err := NewContact("C1")
		s.Require().NoError(err)
		s.Equal(DefaultFields(), c.Fields())
		s.Equal("INITIAL", c.FirstName())
		s.Equal("1235559999", c.PhoneNumber())
	})

	s.Run("partial options keep remaining defaults", func() {
		c, err := NewContact("C1", WithFirstName("Jane"), WithLastName("Roe"))
		s.Require().NoError(err)
		s.Equal(Fields{
			FirstName:   "Jane",
			LastName:    "Roe",
			PhoneNumber: DefaultPhoneNumber,
			Address:     DefaultText,
		}, c.Fields())
	})

	s.Run("explicit empty option is rejected", func() {
		_, err := NewContact("C1", WithAddress(""))
		s.Require().Error(err)
		s.Equal("address", dErrors.FieldOf(err))
	})
}

func (s *ContactSuite) TestValidation() {
	tests := []struct {
		name      string
		id        string
		opts      []Option
		wantField string
	}{
		{"id too long", "ID1234567890", nil, "contact_id"},
		{"empty id", "", nil, "contact_id"},
		{"first name too long", validContactID, []Option{WithFirstName("Johnathanxx")}, "first_name"},
		{"empty first name", validContactID, []Option{WithFirstName("")}, "first_name"},
		{"last name too long", validContactID, []Option{WithLastName("DoeDoeDoeDoe")}, "last_name"},
		{"empty last name", validContactID, []Option{WithLastName("")}, "last_name"},
		{"phone nine digits", validContactID, []Option{WithPhoneNumber("123456789")}, "phone_number"},
		{"phone eleven digits", validContactID, []Option{WithPhoneNumber("12345678901")}, "phone_number"},
		{"phone letters", validContactID, []Option{WithPhoneNumber("ABCDEFGHIJ")}, "phone_number"},
		{"address too long", validContactID, []Option{WithAddress(strings.Repeat("a", MaxAddressLength+1))}, "address"},
		{"first invalid field wins", validContactID, []Option{WithLastName(""), WithPhoneNumber("x")}, "last_name"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, err := NewContact(tt.id, tt.opts...)
			s.Require().Error(err)
			s.Nil(c)
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
			s.Equal(tt.wantField, dErrors.FieldOf(err))
		})
	}
}

func (s *ContactSuite) TestBoundaries() {
	s.Run("fields at limit are accepted", func() {
		_, err := NewContact(strings.Repeat("i", 10),
			WithFirstName(strings.Repeat("f", MaxFirstNameLength)),
			WithLastName(strings.Repeat("l", MaxLastNameLength)),
			WithAddress(strings.Repeat("a", MaxAddressLength)),
		)
		s.Require().NoError(err)
	})

	s.Run("names one past limit are rejected", func() {
		_, err := NewContact("C1", WithFirstName(strings.Repeat("f", MaxFirstNameLength+1)))
		s.Require().Error(err)
		_, err = NewContact("C1", WithLastName(strings.Repeat("l", MaxLastNameLength+1)))
		s.Require().Error(err)
	})
}

func (s *ContactSuite) TestUpdates() {
	s.Run("UpdateFirstName changes only first name", func() {
		s.Require().NoError(s.contact.UpdateFirstName("Jane"))
		s.Equal(Fields{
			FirstName:   "Jane",
			LastName:    validLastName,
			PhoneNumber: validPhone,
			Address:     validAddress,
		}, s.contact.Fields())
		s.Equal(validContactID, s.contact.ID().String())
	})

	s.Run("UpdatePhoneNumber keeps previous value on invalid input", func() {
		s.Require().Error(s.contact.UpdatePhoneNumber("555-1234"))
		s.Equal(validPhone, s.contact.PhoneNumber())
	})

	s.Run("UpdateLastName keeps previous value on invalid input", func() {
		s.Require().Error(s.contact.UpdateLastName(""))
		s.Equal(validLastName, s.contact.LastName())
	})

	s.Run("UpdateAddress replaces address", func() {
		s.Require().NoError(s.contact.UpdateAddress("9 Elm Rd"))
		s.Equal("9 Elm Rd", s.contact.Address())
	})
}
