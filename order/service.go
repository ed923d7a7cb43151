package order

import (
	"context"
	"time"
)

// OrderRequest carries the writable order fields.
type OrderRequest struct {
	CustomerID uint
	OrderDate  time.Time
}

// OrderResponse is the external representation of an order.
type OrderResponse struct {
	ID         uint      `json:"id"`
	CustomerID uint      `json:"customerId"`
	OrderDate  time.Time `json:"orderDate"`
}

// OrderService exposes order-related business operations.
type OrderService interface {
	ListOrders(ctx context.Context) ([]OrderResponse, error)
	GetOrderByID(ctx context.Context, id uint) (*OrderResponse, error)
	CreateOrder(ctx context.Context, req OrderRequest) (*OrderResponse, error)
	UpdateOrder(ctx context.Context, id uint, req OrderRequest) (*OrderResponse, error)
	DeleteOrder(ctx context.Context, id uint) error
}
