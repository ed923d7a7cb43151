package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	customerpkg "github.com/MichaelLJp/customer-orders/customer"
	"github.com/MichaelLJp/customer-orders/entity"
)

// CustomerHandler bundles dependencies for customer-related HTTP handlers.
type CustomerHandler struct {
	service customerpkg.CustomerService
}

// NewCustomerHandler constructs a CustomerHandler.
func NewCustomerHandler(svc customerpkg.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

type customerPayload struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email"`
}

// GetCustomers lists every stored customer.
func (h *CustomerHandler) GetCustomers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customers, err := h.service.ListCustomers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}

// GetCustomerByID fetches a single customer; 404 when the id is unknown.
func (h *CustomerHandler) GetCustomerByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		customer, err := h.service.GetCustomerByID(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

// CreateCustomer persists a new customer and returns it with its assigned id.
func (h *CustomerHandler) CreateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateCustomer(ctx, customerpkg.CustomerRequest{
			Name:  p.Name,
			Email: p.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrInvalidReference):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateCustomer overlays name and email onto an existing customer.
func (h *CustomerHandler) UpdateCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var p customerPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateCustomer(ctx, id, customerpkg.CustomerRequest{
			Name:  p.Name,
			Email: p.Email,
		})
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteCustomer removes a customer; dependent orders are left untouched.
func (h *CustomerHandler) DeleteCustomer() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteCustomer(ctx, id); err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete customer", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Customer successfully deleted"})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id64), true
}
