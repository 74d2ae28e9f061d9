package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
)

// CatalogService is implemented by the three product catalog services.
type CatalogService interface {
	Create(ctx context.Context, name, ingredients string, price float64) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Edit(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CustomerService interface {
	Create(ctx context.Context, name, email, cpf, telefone string) (*models.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Edit(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, in *models.CreateOrderInput) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

type ReportService interface {
	DailyReport(ctx context.Context, startDate, endDate string) ([]models.DailyReportRow, error)
	MonthlyReport(ctx context.Context, year *int) ([]models.MonthlyReportRow, error)
}

// Handlers holds all HTTP handlers for the API.
type Handlers struct {
	pizzas    CatalogService
	desserts  CatalogService
	drinks    CatalogService
	customers CustomerService
	orders    OrderService
	reports   ReportService
	logger    *slog.Logger
}

func NewHandlers(
	pizzas CatalogService,
	desserts CatalogService,
	drinks CatalogService,
	customers CustomerService,
	orders OrderService,
	reports ReportService,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		pizzas:    pizzas,
		desserts:  desserts,
		drinks:    drinks,
		customers: customers,
		orders:    orders,
		reports:   reports,
		logger:    logger.With("component", "handlers"),
	}
}

// Pizzas returns the pizza catalog service for route registration.
func (h *Handlers) Pizzas() CatalogService { return h.pizzas }

// Desserts returns the dessert catalog service for route registration.
func (h *Handlers) Desserts() CatalogService { return h.desserts }

// Drinks returns the drink catalog service for route registration.
func (h *Handlers) Drinks() CatalogService { return h.drinks }

// handleError is the catch-all error mapping: every service error becomes a
// 400 with the error message, mirroring the global error handler contract.
// Endpoints that distinguish 404/500 do their own mapping before falling
// back to this.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// handleReportError maps validation failures to 400 and everything else,
// store failures included, to 500.
func handleReportError(c *gin.Context, err error) {
	if apperrors.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
