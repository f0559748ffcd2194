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

// WorkOrderPostgresRepository persists the WorkOrder aggregate across the
// work_orders and work_order_items tables. Save rewrites the item rows,
// which keeps the aggregate the single source of truth for item identity.
type WorkOrderPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderPostgresRepository)(nil)

func NewWorkOrderPostgresRepository(db *sql.DB) *WorkOrderPostgresRepository {
	return &WorkOrderPostgresRepository{db: db}
}

func (r *WorkOrderPostgresRepository) Create(ctx context.Context, wo *entities.WorkOrder) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		return insertWorkOrder(ctx, tx, wo)
	})
}

func insertWorkOrder(ctx context.Context, tx *sql.Tx, wo *entities.WorkOrder) error {
	discount, discountCurrency := discountColumns(wo)
	_, err := tx.ExecContext(ctx,
		`INSERT INTO work_orders (id, customer_id, appointment_id, currency, status, discount_amount, discount_currency, created_date, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		wo.ID, wo.CustomerID, uuid.NullUUID{UUID: deref(wo.AppointmentID), Valid: wo.AppointmentID != nil},
		wo.Currency, string(wo.Status), discount, discountCurrency, wo.CreatedDate, wo.Enabled)
	if err != nil {
		return fmt.Errorf("insert work order: %w", err)
	}
	return insertWorkOrderItems(ctx, tx, wo)
}

func insertWorkOrderItems(ctx context.Context, tx *sql.Tx, wo *entities.WorkOrder) error {
	for pos, item := range wo.Items {
		var chest, waist, hips, sleeve decimal.NullDecimal
		var notes sql.NullString
		if item.Measurements != nil {
			chest = decimal.NullDecimal{Decimal: item.Measurements.Chest, Valid: true}
			waist = decimal.NullDecimal{Decimal: item.Measurements.Waist, Valid: true}
			hips = decimal.NullDecimal{Decimal: item.Measurements.Hips, Valid: true}
			sleeve = decimal.NullDecimal{Decimal: item.Measurements.Sleeve, Valid: true}
			notes = nullString(item.Measurements.Notes)
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO work_order_items (work_order_id, position, description, quantity, unit_price, currency, garment_type, chest, waist, hips, sleeve, measurement_notes)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			wo.ID, pos, item.Description, item.Quantity, item.UnitPrice.Amount, item.UnitPrice.Currency,
			string(item.GarmentType), chest, waist, hips, sleeve, notes)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return entities.ErrDuplicateItem
			}
			return fmt.Errorf("insert work order item: %w", err)
		}
	}
	return nil
}

func (r *WorkOrderPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkOrder, error) {
	return r.getByID(ctx, id)
}

// GetByIDForUpdate reads with the same semantics as GetByID. It exists so
// callers state mutation intent; mutations are written back by Save, last
// writer wins.
func (r *WorkOrderPostgresRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.WorkOrder, error) {
	return r.getByID(ctx, id)
}

func (r *WorkOrderPostgresRepository) getByID(ctx context.Context, id uuid.UUID) (*entities.WorkOrder, error) {
	query := `SELECT id, customer_id, appointment_id, currency, status, discount_amount, discount_currency, created_date, enabled
		 FROM work_orders WHERE id = $1`
	wo, err := scanWorkOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get work order: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}
	wo.Items = items
	return wo, nil
}

func (r *WorkOrderPostgresRepository) loadItems(ctx context.Context, workOrderID uuid.UUID) ([]entities.WorkOrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT description, quantity, unit_price, currency, garment_type, chest, waist, hips, sleeve, measurement_notes
		 FROM work_order_items WHERE work_order_id = $1 ORDER BY position`,
		workOrderID)
	if err != nil {
		return nil, fmt.Errorf("load work order items: %w", err)
	}
	defer rows.Close()

	var items []entities.WorkOrderItem
	for rows.Next() {
		var item entities.WorkOrderItem
		var price decimal.Decimal
		var currency, garmentType string
		var chest, waist, hips, sleeve decimal.NullDecimal
		var notes sql.NullString
		if err := rows.Scan(&item.Description, &item.Quantity, &price, &currency, &garmentType,
			&chest, &waist, &hips, &sleeve, &notes); err != nil {
			return nil, fmt.Errorf("scan work order item: %w", err)
		}
		item.UnitPrice = entities.Money{Amount: price, Currency: currency}
		item.GarmentType = entities.GarmentType(garmentType)
		if chest.Valid || waist.Valid || hips.Valid || sleeve.Valid || notes.Valid {
			item.Measurements = &entities.GarmentMeasurements{
				Chest:  chest.Decimal,
				Waist:  waist.Decimal,
				Hips:   hips.Decimal,
				Sleeve: sleeve.Decimal,
				Notes:  stringOrEmpty(notes),
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *WorkOrderPostgresRepository) Save(ctx context.Context, wo *entities.WorkOrder) error {
	return database.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		discount, discountCurrency := discountColumns(wo)
		result, err := tx.ExecContext(ctx,
			`UPDATE work_orders
			 SET appointment_id = $2, status = $3, discount_amount = $4, discount_currency = $5, enabled = $6
			 WHERE id = $1`,
			wo.ID, uuid.NullUUID{UUID: deref(wo.AppointmentID), Valid: wo.AppointmentID != nil},
			string(wo.Status), discount, discountCurrency, wo.Enabled)
		if err != nil {
			return fmt.Errorf("update work order: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if affected == 0 {
			return sql.ErrNoRows
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM work_order_items WHERE work_order_id = $1`, wo.ID); err != nil {
			return fmt.Errorf("clear work order items: %w", err)
		}
		return insertWorkOrderItems(ctx, tx, wo)
	})
}

func (r *WorkOrderPostgresRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error) {
	return r.List(ctx, interfaces.WorkOrderFilter{CustomerID: &customerID}, p)
}

func (r *WorkOrderPostgresRepository) List(ctx context.Context, f interfaces.WorkOrderFilter, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error) {
	where := "WHERE enabled"
	args := []interface{}{}
	if f.CustomerID != nil {
		args = append(args, *f.CustomerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM work_orders "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count work orders: %w", err)
	}

	order := "created_date"
	if p.SortBy == "status" {
		order = "status"
	}
	if p.Desc {
		order += " DESC"
	}
	args = append(args, p.PageSize, (p.Page-1)*p.PageSize)
	query := fmt.Sprintf(
		`SELECT id, customer_id, appointment_id, currency, status, discount_amount, discount_currency, created_date, enabled
		 FROM work_orders %s ORDER BY %s LIMIT $%d OFFSET $%d`,
		where, order, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list work orders: %w", err)
	}
	defer rows.Close()

	var orders []entities.WorkOrder
	for rows.Next() {
		wo, err := scanWorkOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan work order: %w", err)
		}
		orders = append(orders, *wo)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		items, err := r.loadItems(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].Items = items
	}
	return orders, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkOrder(row rowScanner) (*entities.WorkOrder, error) {
	var wo entities.WorkOrder
	var appointmentID uuid.NullUUID
	var status string
	var discount decimal.NullDecimal
	var discountCurrency sql.NullString
	err := row.Scan(&wo.ID, &wo.CustomerID, &appointmentID, &wo.Currency, &status,
		&discount, &discountCurrency, &wo.CreatedDate, &wo.Enabled)
	if err != nil {
		return nil, err
	}
	wo.Status = entities.WorkOrderStatus(status)
	if appointmentID.Valid {
		id := appointmentID.UUID
		wo.AppointmentID = &id
	}
	if discount.Valid {
		wo.Discount = &entities.Money{Amount: discount.Decimal, Currency: stringOrEmpty(discountCurrency)}
	}
	return &wo, nil
}

func discountColumns(wo *entities.WorkOrder) (decimal.NullDecimal, sql.NullString) {
	if wo.Discount == nil {
		return decimal.NullDecimal{}, sql.NullString{}
	}
	return nullDecimal(&wo.Discount.Amount), nullString(wo.Discount.Currency)
}

func deref(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
