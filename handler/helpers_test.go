package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	customersvc "github.com/MichaelLJp/customer-orders/customer/service"
	"github.com/MichaelLJp/customer-orders/entity"
	api "github.com/MichaelLJp/customer-orders/handler"
	ordersvc "github.com/MichaelLJp/customer-orders/order/service"
)

// fakeCustomerRepo is an in-memory CustomerRepository.
type fakeCustomerRepo struct {
	customers map[uint]entity.Customer
	nextID    uint
}

func (f *fakeCustomerRepo) GetAllCustomers(ctx context.Context) ([]entity.Customer, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCustomerRepo) StoreCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.nextID++
	c.ID = f.nextID
	f.customers[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(ctx context.Context, c *entity.Customer) (*entity.Customer, error) {
	f.customers[c.ID] = *c
	return c, nil
}

func (f *fakeCustomerRepo) DeleteCustomer(ctx context.Context, id uint) (bool, error) {
	_, ok := f.customers[id]
	delete(f.customers, id)
	return ok, nil
}

// fakeOrderRepo is an in-memory OrderRepository enforcing the
// customer-existence gate against the linked fakeCustomerRepo.
type fakeOrderRepo struct {
	orders    map[uint]entity.Order
	customers *fakeCustomerRepo
	nextID    uint
}

func (f *fakeOrderRepo) GetAllOrders(ctx context.Context) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, id uint) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (f *fakeOrderRepo) StoreOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := f.checkCustomer(o.CustomerID); err != nil {
		return nil, err
	}
	f.nextID++
	o.ID = f.nextID
	f.orders[o.ID] = *o
	return o, nil
}

func (f *fakeOrderRepo) UpdateOrder(ctx context.Context, o *entity.Order) (*entity.Order, error) {
	if err := f.checkCustomer(o.CustomerID); err != nil {
		return nil, err
	}
	f.orders[o.ID] = *o
	return o, nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id uint) (bool, error) {
	_, ok := f.orders[id]
	delete(f.orders, id)
	return ok, nil
}

func (f *fakeOrderRepo) checkCustomer(customerID uint) error {
	if _, ok := f.customers.customers[customerID]; !ok {
		return fmt.Errorf("customer with id %d: %w", customerID, entity.ErrInvalidReference)
	}
	return nil
}

// newTestRouter wires handlers over in-memory repositories with the
// same routes main registers.
func newTestRouter() (*gin.Engine, *fakeCustomerRepo, *fakeOrderRepo) {
	gin.SetMode(gin.TestMode)

	customerRepo := &fakeCustomerRepo{customers: map[uint]entity.Customer{}}
	orderRepo := &fakeOrderRepo{orders: map[uint]entity.Order{}, customers: customerRepo}

	customerHandler := api.NewCustomerHandler(customersvc.NewCustomerService(customerRepo))
	orderHandler := api.NewOrderHandler(ordersvc.NewOrderService(orderRepo, customerRepo))

	r := gin.New()
	customers := r.Group("/Customer")
	{
		customers.GET("/getCustomers", customerHandler.GetCustomers())
		customers.GET("/getCustomerById/:id", customerHandler.GetCustomerByID())
		customers.POST("/createCustomer", customerHandler.CreateCustomer())
		customers.PUT("/updateCustomer/:id", customerHandler.UpdateCustomer())
		customers.DELETE("/deleteCustomer/:id", customerHandler.DeleteCustomer())
	}
	orders := r.Group("/Order")
	{
		orders.GET("/getOrders", orderHandler.GetOrders())
		orders.GET("/getOrderById/:id", orderHandler.GetOrderByID())
		orders.POST("/createOrder", orderHandler.CreateOrder())
		orders.PUT("/updateOrder/:id", orderHandler.UpdateOrder())
		orders.DELETE("/deleteOrder/:id", orderHandler.DeleteOrder())
	}
	return r, customerRepo, orderRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func seedCustomer(t *testing.T, repo *fakeCustomerRepo, name, email string) uint {
	t.Helper()
	c, err := repo.StoreCustomer(context.Background(), &entity.Customer{Name: name, Email: email})
	require.NoError(t, err)
	return c.ID
}
