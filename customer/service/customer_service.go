package service

import (
	"context"
	"fmt"

	customerpkg "github.com/MichaelLJp/customer-orders/customer"
	"github.com/MichaelLJp/customer-orders/entity"
)

// customerService implements CustomerService.
type customerService struct {
	repo customerpkg.CustomerRepository
}

// NewCustomerService constructs a CustomerService backed by the provided repository.
func NewCustomerService(repo customerpkg.CustomerRepository) customerpkg.CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]customerpkg.CustomerResponse, error) {
	customers, err := s.repo.GetAllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]customerpkg.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toCustomerResponse(&customers[i]))
	}
	return responses, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id uint) (*customerpkg.CustomerResponse, error) {
	c, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("customer with id %d: %w", id, entity.ErrNotFound)
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, req customerpkg.CustomerRequest) (*customerpkg.CustomerResponse, error) {
	c := &entity.Customer{
		Name:  req.Name,
		Email: req.Email,
	}
	created, err := s.repo.StoreCustomer(ctx, c)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(created)
	return &resp, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, req customerpkg.CustomerRequest) (*customerpkg.CustomerResponse, error) {
	existing, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("customer with id %d: %w", id, entity.ErrNotFound)
	}

	// Only the writable fields are overlaid; the id never changes.
	existing.Name = req.Name
	existing.Email = req.Email
	updated, err := s.repo.UpdateCustomer(ctx, existing)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(updated)
	return &resp, nil
}

// DeleteCustomer removes the customer without touching its orders.
// Orders referencing the deleted id are left in place (allow-orphan).
func (s *customerService) DeleteCustomer(ctx context.Context, id uint) error {
	existing, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("customer with id %d: %w", id, entity.ErrNotFound)
	}
	_, err = s.repo.DeleteCustomer(ctx, id)
	return err
}

func toCustomerResponse(c *entity.Customer) customerpkg.CustomerResponse {
	return customerpkg.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
	}
}
