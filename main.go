package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	customerrepo "github.com/MichaelLJp/customer-orders/customer/repository"
	customersvc "github.com/MichaelLJp/customer-orders/customer/service"
	api "github.com/MichaelLJp/customer-orders/handler"
	"github.com/MichaelLJp/customer-orders/middleware"
	orderrepo "github.com/MichaelLJp/customer-orders/order/repository"
	ordersvc "github.com/MichaelLJp/customer-orders/order/service"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg := loadConfig()
	db := setupDatabase(cfg)

	// setup customer repository + service
	customerRepo := customerrepo.NewGormCustomerRepo(db)
	customerService := customersvc.NewCustomerService(customerRepo)
	customerHandler := api.NewCustomerHandler(customerService)

	// setup order repository + service
	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo, customerRepo)
	orderHandler := api.NewOrderHandler(orderService)

	httpMetrics := middleware.NewHTTPMetrics()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), httpMetrics.Handler())
	r.Use(cors.Default())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerRoutes(r, customerHandler, orderHandler)

	log.WithField("addr", cfg.ListenAddr).Info("starting server")
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func registerRoutes(r *gin.Engine, customerHandler *api.CustomerHandler, orderHandler *api.OrderHandler) {
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
}
