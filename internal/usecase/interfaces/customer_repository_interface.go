package interfaces

import (
	"context"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
)

// CustomerListParams controls the customer listing: free-text search over
// name/number/email, sort column, direction, and the enabled filter
// ("enabled", "disabled" or "all").
type CustomerListParams struct {
	Page     int
	PageSize int
	Search   string
	SortBy   string
	SortDir  string
	Status   string
}

// ICustomerRepository abstracts relational persistence for the Customer
// aggregate, hydrated with measurement history and notes.
type ICustomerRepository interface {
	Create(ctx context.Context, c *entities.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	Save(ctx context.Context, c *entities.Customer) error
	List(ctx context.Context, p CustomerListParams) ([]entities.Customer, int, error)
}
