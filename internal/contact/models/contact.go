package models

import (
	"registrar/pkg/domain"
)

const (
	MaxFirstNameLength = 10
	MaxLastNameLength  = 10
	PhoneNumberLength  = 10
	MaxAddressLength   = 30
)

// Defaults applied to fields the caller does not set.
const (
	DefaultText        = "INITIAL"
	DefaultPhoneNumber = "1235559999"
)

// Contact is a person's contact card.
//
// Invariants:
//   - ID is present, at most 10 characters, and immutable
//   - FirstName and LastName are present and at most 10 characters
//   - PhoneNumber is exactly 10 ASCII digits
//   - Address is present and at most 30 characters
type Contact struct {
	id          domain.ContactID
	firstName   string
	lastName    string
	phoneNumber string
	address     string
}

// Fields holds the mutable contact fields. Options edit it before
// validation.
type Fields struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Address     string
}

func DefaultFields() Fields {
	return Fields{
		FirstName:   DefaultText,
		LastName:    DefaultText,
		PhoneNumber: DefaultPhoneNumber,
		Address:     DefaultText,
	}
}

type Option func(f *Fields)

func WithFirstName(firstName string) Option {
	return func(f *Fields) {
		f.FirstName = firstName
	}
}

func WithLastName(lastName string) Option {
	return func(f *Fields) {
		f.LastName = lastName
	}
}

func WithPhoneNumber(phoneNumber string) Option {
	return func(f *Fields) {
		f.PhoneNumber = phoneNumber
	}
}

func WithAddress(address string) Option {
	return func(f *Fields) {
		f.Address = address
	}
}

// NewContact builds a contact from DefaultFields with opts applied, then
// validates id, first name, last name, phone number, and address in that
// order.
func NewContact(contactID string, opts ...Option) (*Contact, error) {
	id, err := domain.ParseContactID(contactID)
	if err != nil {
		return nil, err
	}

	f := DefaultFields()
	for _, opt := range opts {
		opt(&f)
	}

	c := &Contact{id: id}
	if err := c.UpdateFirstName(f.FirstName); err != nil {
		return nil, err
	}
	if err := c.UpdateLastName(f.LastName); err != nil {
		return nil, err
	}
	if err := c.UpdatePhoneNumber(f.PhoneNumber); err != nil {
		return nil, err
	}
	if err := c.UpdateAddress(f.Address); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Contact) ID() domain.ContactID { return c.id }
func (c *Contact) FirstName() string    { return c.firstName }
func (c *Contact) LastName() string     { return c.lastName }
func (c *Contact) PhoneNumber() string  { return c.phoneNumber }
func (c *Contact) Address() string      { return c.address }

// Fields returns a copy of the mutable fields.
func (c *Contact) Fields() Fields {
	return Fields{
		FirstName:   c.firstName,
		LastName:    c.lastName,
		PhoneNumber: c.phoneNumber,
		Address:     c.address,
	}
}

// The updaters validate before assigning; on error the previous value is
// kept.

func (c *Contact) UpdateFirstName(firstName string) error {
	if err := domain.CheckMaxLength("first_name", firstName, MaxFirstNameLength); err != nil {
		return err
	}
	c.firstName = firstName
	return nil
}

func (c *Contact) UpdateLastName(lastName string) error {
	if err := domain.CheckMaxLength("last_name", lastName, MaxLastNameLength); err != nil {
		return err
	}
	c.lastName = lastName
	return nil
}

func (c *Contact) UpdatePhoneNumber(phoneNumber string) error {
	if err := domain.CheckDigits("phone_number", phoneNumber, PhoneNumberLength); err != nil {
		return err
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *Contact) UpdateAddress(address string) error {
	if err := domain.CheckMaxLength("address", address, MaxAddressLength); err != nil {
		return err
	}
	c.address = address
	return nil
}
