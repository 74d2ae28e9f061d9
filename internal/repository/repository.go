package repository

import (
	"context"

	"github.com/massafina/massafina-api/internal/models"
	"github.com/massafina/massafina-api/internal/reports"
)

// ProductRepository is implemented once per catalog (pizzas, desserts,
// drinks); the three instances differ only in their backing table.
type ProductRepository interface {
	Create(ctx context.Context, p *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer) error
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	// Create persists the order and all its items in one transaction.
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

// ReportRepository executes a validated report spec against the store.
type ReportRepository interface {
	Run(ctx context.Context, spec reports.Spec) ([]reports.Row, error)
}

// MenuCache caches whole catalog listings keyed by catalog name.
type MenuCache interface {
	GetList(ctx context.Context, catalog string) ([]models.Product, error)
	SetList(ctx context.Context, catalog string, products []models.Product) error
	Invalidate(ctx context.Context, catalog string) error
}
