package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

// RegisterCustomerInput is the boundary shape for registration and update.
// A blank CustomerNumber gets one generated.
type RegisterCustomerInput struct {
	CustomerNumber  string
	FirstName       string
	LastName        string
	DateOfBirth     *time.Time
	Email           string
	Phone           string
	Address         string
	Style           string
	Fit             string
	PreferenceNotes string
}

type MeasurementInput struct {
	Date   *time.Time
	Chest  float64
	Waist  float64
	Hips   float64
	Sleeve float64
}

type ICustomerUseCase interface {
	Register(ctx context.Context, in RegisterCustomerInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, in RegisterCustomerInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	AddMeasurement(ctx context.Context, id uuid.UUID, in MeasurementInput) error
	AddNote(ctx context.Context, id uuid.UUID, text, author string) error
	GetDetails(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	List(ctx context.Context, p interfaces.CustomerListParams) ([]entities.Customer, int, error)
}

type CustomerUseCase struct {
	customers interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(customers interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

func (u *CustomerUseCase) Register(ctx context.Context, in RegisterCustomerInput) (uuid.UUID, error) {
	personal, err := entities.NewPersonalInfo(in.FirstName, in.LastName, in.DateOfBirth)
	if err != nil {
		return uuid.Nil, err
	}
	contact, err := entities.NewContactInfo(in.Email, in.Phone, in.Address)
	if err != nil {
		return uuid.Nil, err
	}
	prefs := entities.NewCustomerPreferences(in.Style, in.Fit, in.PreferenceNotes)

	number := in.CustomerNumber
	if number == "" {
		number = generateCustomerNumber()
	}
	customer, err := entities.NewCustomer(number, personal, contact, prefs)
	if err != nil {
		return uuid.Nil, err
	}
	if err := u.customers.Create(ctx, customer); err != nil {
		return uuid.Nil, err
	}
	return customer.ID, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id uuid.UUID, in RegisterCustomerInput) error {
	customer, err := u.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	personal, err := entities.NewPersonalInfo(in.FirstName, in.LastName, in.DateOfBirth)
	if err != nil {
		return err
	}
	contact, err := entities.NewContactInfo(in.Email, in.Phone, in.Address)
	if err != nil {
		return err
	}
	customer.UpdatePersonalInfo(personal)
	customer.UpdateContactInfo(contact)
	customer.UpdatePreferences(entities.NewCustomerPreferences(in.Style, in.Fit, in.PreferenceNotes))
	return u.customers.Save(ctx, customer)
}

func (u *CustomerUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := u.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	customer.SoftDelete()
	return u.customers.Save(ctx, customer)
}

func (u *CustomerUseCase) Restore(ctx context.Context, id uuid.UUID) error {
	customer, err := u.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	customer.Restore()
	return u.customers.Save(ctx, customer)
}

func (u *CustomerUseCase) AddMeasurement(ctx context.Context, id uuid.UUID, in MeasurementInput) error {
	customer, err := u.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	date := time.Now().UTC()
	if in.Date != nil {
		date = *in.Date
	}
	record, err := entities.NewMeasurementRecord(date,
		decimal.NewFromFloat(in.Chest),
		decimal.NewFromFloat(in.Waist),
		decimal.NewFromFloat(in.Hips),
		decimal.NewFromFloat(in.Sleeve),
	)
	if err != nil {
		return err
	}
	customer.AddMeasurement(record)
	return u.customers.Save(ctx, customer)
}

func (u *CustomerUseCase) AddNote(ctx context.Context, id uuid.UUID, text, author string) error {
	customer, err := u.loadForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err := customer.AddNote(text, author); err != nil {
		return err
	}
	return u.customers.Save(ctx, customer)
}

func (u *CustomerUseCase) GetDetails(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	customer, err := u.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (u *CustomerUseCase) List(ctx context.Context, p interfaces.CustomerListParams) ([]entities.Customer, int, error) {
	return u.customers.List(ctx, p)
}

func (u *CustomerUseCase) loadForUpdate(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	customer, err := u.customers.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func generateCustomerNumber() string {
	return fmt.Sprintf("CUST-%d", time.Now().UnixNano())
}
