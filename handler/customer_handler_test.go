package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerpkg "github.com/MichaelLJp/customer-orders/customer"
)

func TestGetCustomers_EmptyStore(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/Customer/getCustomers", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody[[]customerpkg.CustomerResponse](t, w))
}

func TestCreateCustomer_Returns201WithAssignedID(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/Customer/createCustomer", map[string]string{
		"name":  "Alice",
		"email": "a@x.com",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody[customerpkg.CustomerResponse](t, w)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "a@x.com", created.Email)
}

func TestCreateCustomer_MissingName(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/Customer/createCustomer", map[string]string{
		"email": "a@x.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomerByID_Found(t *testing.T) {
	r, customerRepo, _ := newTestRouter()
	seedCustomer(t, customerRepo, "Alice", "a@x.com")

	w := doJSON(t, r, http.MethodGet, "/Customer/getCustomerById/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeBody[customerpkg.CustomerResponse](t, w)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestGetCustomerByID_Absent(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/Customer/getCustomerById/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCustomer_OverlaysAndReturns200(t *testing.T) {
	r, customerRepo, _ := newTestRouter()
	id := seedCustomer(t, customerRepo, "Alice", "a@x.com")

	w := doJSON(t, r, http.MethodPut, "/Customer/updateCustomer/1", map[string]string{
		"name":  "Alice Smith",
		"email": "alice@x.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeBody[customerpkg.CustomerResponse](t, w)
	assert.Equal(t, id, updated.ID)
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Equal(t, "alice@x.com", updated.Email)
}

func TestUpdateCustomer_Absent(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/Customer/updateCustomer/42", map[string]string{
		"name": "Nobody",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomer_ThenSecondDeleteIs404(t *testing.T) {
	r, customerRepo, _ := newTestRouter()
	seedCustomer(t, customerRepo, "Alice", "a@x.com")

	first := doJSON(t, r, http.MethodDelete, "/Customer/deleteCustomer/1", nil)
	require.Equal(t, http.StatusOK, first.Code)
	body := decodeBody[map[string]string](t, first)
	assert.Equal(t, "Customer successfully deleted", body["message"])

	second := doJSON(t, r, http.MethodDelete, "/Customer/deleteCustomer/1", nil)
	assert.Equal(t, http.StatusNotFound, second.Code)
}
