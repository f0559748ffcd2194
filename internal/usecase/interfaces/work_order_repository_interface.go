package interfaces

import (
	"context"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
)

// WorkOrderListParams controls paging and ordering of work order listings.
type WorkOrderListParams struct {
	Page     int
	PageSize int
	SortBy   string
	Desc     bool
}

// WorkOrderFilter narrows the cross-customer listing.
type WorkOrderFilter struct {
	CustomerID *uuid.UUID
	Status     string
}

// IWorkOrderRepository abstracts relational persistence for the WorkOrder
// aggregate. GetByID returns (nil, nil) when absent. GetByIDForUpdate has
// the same read semantics but signals mutation intent to the storage layer;
// mutating flows are load -> mutate in memory -> Save.
type IWorkOrderRepository interface {
	Create(ctx context.Context, wo *entities.WorkOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WorkOrder, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.WorkOrder, error)
	Save(ctx context.Context, wo *entities.WorkOrder) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, p WorkOrderListParams) ([]entities.WorkOrder, int, error)
	List(ctx context.Context, f WorkOrderFilter, p WorkOrderListParams) ([]entities.WorkOrder, int, error)
}
