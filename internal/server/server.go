package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/massafina/massafina-api/internal/config"
	"github.com/massafina/massafina-api/internal/handlers"
	"github.com/massafina/massafina-api/internal/metrics"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	http   *http.Server
	h      *handlers.Handlers
}

func New(h *handlers.Handlers, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(metrics.Middleware())

	s := &Server{
		config: cfg,
		router: router,
		h:      h,
	}

	s.setupRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return s
}

func (s *Server) setupRoutes() {
	h := s.h

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.router.POST("/customer", h.CreateCustomer)
	s.router.GET("/customers", h.ListCustomers)
	s.router.GET("/customer/:cpf", h.FindCustomer)
	s.router.PUT("/customer", h.EditCustomer)
	s.router.DELETE("/customer", h.DeleteCustomer)

	s.router.POST("/pizza", h.CreateProduct(h.Pizzas()))
	s.router.GET("/pizzas", h.ListProducts(h.Pizzas()))
	s.router.GET("/pizza/:name", h.FindProduct(h.Pizzas()))
	s.router.PUT("/pizza", h.EditProduct(h.Pizzas()))
	s.router.DELETE("/pizza", h.DeleteProduct(h.Pizzas()))

	s.router.POST("/sobremesa", h.CreateProduct(h.Desserts()))
	s.router.GET("/sobremesas", h.ListProducts(h.Desserts()))
	s.router.GET("/sobremesa/:name", h.FindProduct(h.Desserts()))
	s.router.PUT("/sobremesa", h.EditProduct(h.Desserts()))
	s.router.DELETE("/sobremesa", h.DeleteProduct(h.Desserts()))

	s.router.POST("/bebida", h.CreateProduct(h.Drinks()))
	s.router.GET("/bebidas", h.ListProducts(h.Drinks()))
	s.router.GET("/bebida/:name", h.FindProduct(h.Drinks()))
	s.router.PUT("/bebida", h.EditProduct(h.Drinks()))
	s.router.DELETE("/bebida", h.DeleteProduct(h.Drinks()))

	s.router.POST("/orders", h.CreateOrder)
	s.router.DELETE("/order", h.DeleteOrder)

	s.router.GET("/reports/daily", h.DailyReport)
	s.router.GET("/reports/monthly", h.MonthlyReport)
}

// corsMiddleware opens the API to any origin for the two browser front
// ends, matching the methods the route table serves.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
