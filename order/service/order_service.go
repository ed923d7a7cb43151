package service

import (
	"context"
	"fmt"

	customerpkg "github.com/MichaelLJp/customer-orders/customer"
	"github.com/MichaelLJp/customer-orders/entity"
	orderpkg "github.com/MichaelLJp/customer-orders/order"
)

// orderService implements OrderService. It pre-checks the customer
// reference before every write; the repository re-checks it in the
// store, so a reference that slips past this layer is still rejected.
type orderService struct {
	repo         orderpkg.OrderRepository
	customerRepo customerpkg.CustomerRepository
}

// NewOrderService constructs an OrderService backed by the provided repositories.
func NewOrderService(repo orderpkg.OrderRepository, customerRepo customerpkg.CustomerRepository) orderpkg.OrderService {
	return &orderService{repo: repo, customerRepo: customerRepo}
}

func (s *orderService) ListOrders(ctx context.Context) ([]orderpkg.OrderResponse, error) {
	orders, err := s.repo.GetAllOrders(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]orderpkg.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}
	return responses, nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id uint) (*orderpkg.OrderResponse, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order with id %d: %w", id, entity.ErrNotFound)
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req orderpkg.OrderRequest) (*orderpkg.OrderResponse, error) {
	if err := s.checkCustomerExists(ctx, req.CustomerID); err != nil {
		return nil, err
	}
	o := &entity.Order{
		CustomerID: req.CustomerID,
		OrderDate:  req.OrderDate,
	}
	created, err := s.repo.StoreOrder(ctx, o)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(created)
	return &resp, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id uint, req orderpkg.OrderRequest) (*orderpkg.OrderResponse, error) {
	existing, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("order with id %d: %w", id, entity.ErrNotFound)
	}
	if err := s.checkCustomerExists(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	// Only the writable fields are overlaid; the id never changes.
	existing.CustomerID = req.CustomerID
	existing.OrderDate = req.OrderDate
	updated, err := s.repo.UpdateOrder(ctx, existing)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(updated)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	existing, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("order with id %d: %w", id, entity.ErrNotFound)
	}
	_, err = s.repo.DeleteOrder(ctx, id)
	return err
}

func (s *orderService) checkCustomerExists(ctx context.Context, customerID uint) error {
	c, err := s.customerRepo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("the specified customer with id %d does not exist: %w", customerID, entity.ErrInvalidReference)
	}
	return nil
}

func toOrderResponse(o *entity.Order) orderpkg.OrderResponse {
	return orderpkg.OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		OrderDate:  o.OrderDate,
	}
}
