package order

import (
	"context"

	"github.com/MichaelLJp/customer-orders/entity"
)

// OrderRepository specifies order related database operations.
//
// StoreOrder and UpdateOrder are the final integrity gate for the
// customer reference: both verify in the store that a customer with the
// order's CustomerID exists and fail with entity.ErrInvalidReference
// otherwise, regardless of any check the caller already performed.
type OrderRepository interface {
	GetAllOrders(ctx context.Context) ([]entity.Order, error)
	// GetOrderByID returns (nil, nil) when no order has the given id.
	GetOrderByID(ctx context.Context, id uint) (*entity.Order, error)
	StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error)
	// DeleteOrder reports whether a row was actually removed.
	DeleteOrder(ctx context.Context, id uint) (bool, error)
}
