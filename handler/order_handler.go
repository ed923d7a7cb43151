package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MichaelLJp/customer-orders/entity"
	orderpkg "github.com/MichaelLJp/customer-orders/order"
)

// OrderHandler bundles dependencies for order-related HTTP handlers.
type OrderHandler struct {
	service orderpkg.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(svc orderpkg.OrderService) *OrderHandler {
	return &OrderHandler{service: svc}
}

type orderPayload struct {
	CustomerID uint      `json:"customerId" binding:"required"`
	OrderDate  time.Time `json:"orderDate" binding:"required"`
}

// GetOrders lists every stored order.
func (h *OrderHandler) GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		orders, err := h.service.ListOrders(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID fetches a single order; 404 when the id is unknown.
func (h *OrderHandler) GetOrderByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		order, err := h.service.GetOrderByID(ctx, id)
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// CreateOrder persists a new order; 400 when the referenced customer
// does not exist.
func (h *OrderHandler) CreateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateOrder(ctx, orderpkg.OrderRequest{
			CustomerID: p.CustomerID,
			OrderDate:  p.OrderDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrInvalidReference):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create order", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateOrder overlays customerId and orderDate onto an existing order.
// The customer-missing case maps to 400 exactly like CreateOrder.
func (h *OrderHandler) UpdateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var p orderPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdateOrder(ctx, id, orderpkg.OrderRequest{
			CustomerID: p.CustomerID,
			OrderDate:  p.OrderDate,
		})
		if err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, entity.ErrInvalidReference):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteOrder removes an order; 404 when the id is unknown.
func (h *OrderHandler) DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		if err := h.service.DeleteOrder(ctx, id); err != nil {
			switch {
			case errors.Is(err, entity.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order successfully deleted"})
	}
}
