package customer

import "context"

// CustomerRequest carries the writable customer fields. The id is
// store-assigned and never taken from a request.
type CustomerRequest struct {
	Name  string
	Email string
}

// CustomerResponse is the external representation of a customer.
type CustomerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerService exposes customer-related business operations.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]CustomerResponse, error)
	GetCustomerByID(ctx context.Context, id uint) (*CustomerResponse, error)
	CreateCustomer(ctx context.Context, req CustomerRequest) (*CustomerResponse, error)
	UpdateCustomer(ctx context.Context, id uint, req CustomerRequest) (*CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id uint) error
}
