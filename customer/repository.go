package customer

import (
	"context"

	"github.com/MichaelLJp/customer-orders/entity"
)

// CustomerRepository specifies customer related database operations.
type CustomerRepository interface {
	GetAllCustomers(ctx context.Context) ([]entity.Customer, error)
	// GetCustomerByID returns (nil, nil) when no customer has the given id.
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)
	StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error)
	// DeleteCustomer reports whether a row was actually removed.
	DeleteCustomer(ctx context.Context, id uint) (bool, error)
}
