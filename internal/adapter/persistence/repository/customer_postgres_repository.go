package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/infrastructure/database"
	"tailoring_app/internal/usecase/interfaces"
)

// CustomerPostgresRepository persists the Customer aggregate across the
// customers, customer_measurements and customer_notes tables.
type CustomerPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.ICustomerRepository = (*CustomerPostgresRepository)(nil)

func NewCustomerPostgresRepository(db *sql.DB) *CustomerPostgresRepository {
	return &CustomerPostgresRepository{db: db}
}

func (r *CustomerPostgresRepository) Create(ctx context.Context, c *entities.Customer) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customers (id, customer_number, first_name, last_name, date_of_birth, email, phone, address,
			                        style, fit, preference_notes, status, total_spent, registration_date, enabled)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			c.ID, c.CustomerNumber, c.PersonalInfo.FirstName, c.PersonalInfo.LastName, c.PersonalInfo.DateOfBirth,
			c.ContactInfo.Email, nullString(c.ContactInfo.Phone), nullString(c.ContactInfo.Address),
			nullString(c.Preferences.Style), nullString(c.Preferences.Fit), nullString(c.Preferences.Notes),
			string(c.Status), c.TotalSpent, c.RegistrationDate, c.Enabled)
		if err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return saveCustomerHistory(ctx, tx, c)
	})
}

func (r *CustomerPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return r.getByID(ctx, id)
}

// GetByIDForUpdate reads with the same semantics as GetByID; it states
// mutation intent, Save is last writer wins.
func (r *CustomerPostgresRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return r.getByID(ctx, id)
}

func (r *CustomerPostgresRepository) getByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT id, customer_number, first_name, last_name, date_of_birth, email, phone, address,
		        style, fit, preference_notes, status, total_spent, registration_date, enabled
		 FROM customers WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if err := r.loadHistory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerPostgresRepository) loadHistory(ctx context.Context, c *entities.Customer) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, chest, waist, hips, sleeve
		 FROM customer_measurements WHERE customer_id = $1 ORDER BY date`,
		c.ID)
	if err != nil {
		return fmt.Errorf("load measurements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m entities.MeasurementRecord
		if err := rows.Scan(&m.ID, &m.Date, &m.Chest, &m.Waist, &m.Hips, &m.Sleeve); err != nil {
			return fmt.Errorf("scan measurement: %w", err)
		}
		c.Measurements = append(c.Measurements, m)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	noteRows, err := r.db.QueryContext(ctx,
		`SELECT id, date, text, author
		 FROM customer_notes WHERE customer_id = $1 ORDER BY date`,
		c.ID)
	if err != nil {
		return fmt.Errorf("load notes: %w", err)
	}
	defer noteRows.Close()
	for noteRows.Next() {
		var n entities.CustomerNote
		var author sql.NullString
		if err := noteRows.Scan(&n.ID, &n.Date, &n.Text, &author); err != nil {
			return fmt.Errorf("scan note: %w", err)
		}
		n.Author = stringOrEmpty(author)
		c.Notes = append(c.Notes, n)
	}
	return noteRows.Err()
}

func (r *CustomerPostgresRepository) Save(ctx context.Context, c *entities.Customer) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE customers
			 SET first_name = $2, last_name = $3, date_of_birth = $4, email = $5, phone = $6, address = $7,
			     style = $8, fit = $9, preference_notes = $10, status = $11, total_spent = $12, enabled = $13
			 WHERE id = $1`,
			c.ID, c.PersonalInfo.FirstName, c.PersonalInfo.LastName, c.PersonalInfo.DateOfBirth,
			c.ContactInfo.Email, nullString(c.ContactInfo.Phone), nullString(c.ContactInfo.Address),
			nullString(c.Preferences.Style), nullString(c.Preferences.Fit), nullString(c.Preferences.Notes),
			string(c.Status), c.TotalSpent, c.Enabled)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return sql.ErrNoRows
		}
		return saveCustomerHistory(ctx, tx, c)
	})
}

// saveCustomerHistory upserts measurement and note rows. Histories are
// append-only in the domain, so existing rows are never modified.
func saveCustomerHistory(ctx context.Context, tx *sql.Tx, c *entities.Customer) error {
	for _, m := range c.Measurements {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customer_measurements (id, customer_id, date, chest, waist, hips, sleeve)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			m.ID, c.ID, m.Date, m.Chest, m.Waist, m.Hips, m.Sleeve)
		if err != nil {
			return fmt.Errorf("insert measurement: %w", err)
		}
	}
	for _, n := range c.Notes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customer_notes (id, customer_id, date, text, author)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			n.ID, c.ID, n.Date, n.Text, nullString(n.Author))
		if err != nil {
			return fmt.Errorf("insert note: %w", err)
		}
	}
	return nil
}

func (r *CustomerPostgresRepository) List(ctx context.Context, p interfaces.CustomerListParams) ([]entities.Customer, int, error) {
	where := "WHERE TRUE"
	args := []interface{}{}
	switch p.Status {
	case "all":
	case "disabled":
		where += " AND NOT enabled"
	default:
		where += " AND enabled"
	}
	if p.Search != "" {
		args = append(args, "%"+p.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR customer_number ILIKE $%d OR email ILIKE $%d)", n, n, n, n)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	order := "registration_date"
	switch p.SortBy {
	case "name":
		order = "last_name, first_name"
	case "customerNumber":
		order = "customer_number"
	}
	if p.SortDir == "desc" {
		order += " DESC"
	}
	args = append(args, p.PageSize, (p.Page-1)*p.PageSize)
	query := fmt.Sprintf(
		`SELECT id, customer_number, first_name, last_name, date_of_birth, email, phone, address,
		        style, fit, preference_notes, status, total_spent, registration_date, enabled
		 FROM customers %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []entities.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, *c)
	}
	return customers, total, rows.Err()
}

func scanCustomer(row rowScanner) (*entities.Customer, error) {
	var c entities.Customer
	var dob sql.NullTime
	var phone, address, style, fit, prefNotes sql.NullString
	var status string
	var totalSpent decimal.Decimal
	err := row.Scan(&c.ID, &c.CustomerNumber, &c.PersonalInfo.FirstName, &c.PersonalInfo.LastName, &dob,
		&c.ContactInfo.Email, &phone, &address, &style, &fit, &prefNotes,
		&status, &totalSpent, &c.RegistrationDate, &c.Enabled)
	if err != nil {
		return nil, err
	}
	if dob.Valid {
		t := dob.Time
		c.PersonalInfo.DateOfBirth = &t
	}
	c.ContactInfo.Phone = stringOrEmpty(phone)
	c.ContactInfo.Address = stringOrEmpty(address)
	c.Preferences.Style = stringOrEmpty(style)
	c.Preferences.Fit = stringOrEmpty(fit)
	c.Preferences.Notes = stringOrEmpty(prefNotes)
	c.Status = entities.CustomerStatus(status)
	c.TotalSpent = totalSpent
	return &c, nil
}
