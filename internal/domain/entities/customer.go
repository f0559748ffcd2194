package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CustomerStatus string

const (
	CustomerStatusActive CustomerStatus = "Active"
	CustomerStatusVIP    CustomerStatus = "VIP"
)

// vipSpendThreshold is the minimum lifetime spend before a customer can be
// promoted to VIP.
var vipSpendThreshold = decimal.NewFromInt(1000)

type PersonalInfo struct {
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
}

func NewPersonalInfo(firstName, lastName string, dateOfBirth *time.Time) (PersonalInfo, error) {
	if strings.TrimSpace(firstName) == "" {
		return PersonalInfo{}, fmt.Errorf("%w: first name required", ErrInvalidArgument)
	}
	if strings.TrimSpace(lastName) == "" {
		return PersonalInfo{}, fmt.Errorf("%w: last name required", ErrInvalidArgument)
	}
	return PersonalInfo{
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		DateOfBirth: dateOfBirth,
	}, nil
}

type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewContactInfo(email, phone, address string) (ContactInfo, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ContactInfo{}, fmt.Errorf("%w: invalid email", ErrInvalidArgument)
	}
	return ContactInfo{
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}, nil
}

type CustomerPreferences struct {
	Style string `json:"style,omitempty"`
	Fit   string `json:"fit,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func NewCustomerPreferences(style, fit, notes string) CustomerPreferences {
	return CustomerPreferences{
		Style: strings.TrimSpace(style),
		Fit:   strings.TrimSpace(fit),
		Notes: strings.TrimSpace(notes),
	}
}

// MeasurementRecord is one dated entry in a customer's measurement history.
type MeasurementRecord struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Chest  decimal.Decimal `json:"chest"`
	Waist  decimal.Decimal `json:"waist"`
	Hips   decimal.Decimal `json:"hips"`
	Sleeve decimal.Decimal `json:"sleeve"`
}

func NewMeasurementRecord(date time.Time, chest, waist, hips, sleeve decimal.Decimal) (MeasurementRecord, error) {
	for _, d := range []decimal.Decimal{chest, waist, hips, sleeve} {
		if d.IsNegative() {
			return MeasurementRecord{}, fmt.Errorf("%w: measurements must not be negative", ErrInvalidArgument)
		}
	}
	return MeasurementRecord{
		ID:     uuid.New(),
		Date:   date.UTC(),
		Chest:  chest,
		Waist:  waist,
		Hips:   hips,
		Sleeve: sleeve,
	}, nil
}

type CustomerNote struct {
	ID     uuid.UUID `json:"id"`
	Date   time.Time `json:"date"`
	Text   string    `json:"text"`
	Author string    `json:"author,omitempty"`
}

func NewCustomerNote(text, author string) (CustomerNote, error) {
	if strings.TrimSpace(text) == "" {
		return CustomerNote{}, fmt.Errorf("%w: note text required", ErrInvalidArgument)
	}
	return CustomerNote{
		ID:     uuid.New(),
		Date:   time.Now().UTC(),
		Text:   strings.TrimSpace(text),
		Author: strings.TrimSpace(author),
	}, nil
}

// Customer aggregates identity, contact data, measurement history and notes.
type Customer struct {
	ID               uuid.UUID           `json:"id"`
	CustomerNumber   string              `json:"customerNumber"`
	PersonalInfo     PersonalInfo        `json:"personalInfo"`
	ContactInfo      ContactInfo         `json:"contactInfo"`
	Preferences      CustomerPreferences `json:"preferences"`
	Status           CustomerStatus      `json:"status"`
	TotalSpent       decimal.Decimal     `json:"totalSpent"`
	RegistrationDate time.Time           `json:"registrationDate"`
	Measurements     []MeasurementRecord `json:"measurements,omitempty"`
	Notes            []CustomerNote      `json:"notes,omitempty"`
	Enabled          bool                `json:"enabled"`
}

func NewCustomer(customerNumber string, personal PersonalInfo, contact ContactInfo, prefs CustomerPreferences) (*Customer, error) {
	if strings.TrimSpace(customerNumber) == "" {
		return nil, fmt.Errorf("%w: customer number required", ErrInvalidArgument)
	}
	return &Customer{
		ID:               uuid.New(),
		CustomerNumber:   strings.TrimSpace(customerNumber),
		PersonalInfo:     personal,
		ContactInfo:      contact,
		Preferences:      prefs,
		Status:           CustomerStatusActive,
		TotalSpent:       decimal.Zero,
		RegistrationDate: time.Now().UTC(),
		Enabled:          true,
	}, nil
}

func (c *Customer) UpdatePersonalInfo(p PersonalInfo)       { c.PersonalInfo = p }
func (c *Customer) UpdateContactInfo(ci ContactInfo)        { c.ContactInfo = ci }
func (c *Customer) UpdatePreferences(p CustomerPreferences) { c.Preferences = p }

func (c *Customer) AddMeasurement(record MeasurementRecord) {
	c.Measurements = append(c.Measurements, record)
}

func (c *Customer) AddNote(text, author string) error {
	note, err := NewCustomerNote(text, author)
	if err != nil {
		return err
	}
	c.Notes = append(c.Notes, note)
	return nil
}

// RecordSpending accumulates lifetime spend when a work order completes.
func (c *Customer) RecordSpending(amount Money) {
	c.TotalSpent = c.TotalSpent.Add(amount.Amount)
}

func (c *Customer) PromoteToVIP() error {
	if c.Status == CustomerStatusVIP {
		return nil
	}
	if c.TotalSpent.LessThan(vipSpendThreshold) {
		return fmt.Errorf("%w: customer must spend at least %s to be VIP", ErrInvalidOperation, vipSpendThreshold.String())
	}
	c.Status = CustomerStatusVIP
	return nil
}

func (c *Customer) SoftDelete() { c.Enabled = false }
func (c *Customer) Restore()    { c.Enabled = true }
