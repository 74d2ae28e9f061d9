package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/massafina/massafina-api/internal/models"
)

// PostgresProductRepository implements ProductRepository over one catalog
// table. All three catalog tables share the same column layout; drinks
// simply store an empty ingredients value.
type PostgresProductRepository struct {
	db     *sql.DB
	table  string
	logger *slog.Logger
}

func NewPizzaRepository(db *sql.DB, logger *slog.Logger) *PostgresProductRepository {
	return newProductRepository(db, "pizzas", logger)
}

func NewDessertRepository(db *sql.DB, logger *slog.Logger) *PostgresProductRepository {
	return newProductRepository(db, "desserts", logger)
}

func NewDrinkRepository(db *sql.DB, logger *slog.Logger) *PostgresProductRepository {
	return newProductRepository(db, "drinks", logger)
}

func newProductRepository(db *sql.DB, table string, logger *slog.Logger) *PostgresProductRepository {
	return &PostgresProductRepository{
		db:     db,
		table:  table,
		logger: logger.With("repository", table),
	}
}

func (r *PostgresProductRepository) Create(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, name, ingredients, price) VALUES ($1, $2, $3, $4)`,
		r.table,
	)

	if _, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Ingredients, p.Price); err != nil {
		r.logger.Error("failed to insert product", "name", p.Name, "error", err)
		return err
	}

	r.logger.Info("product created", "id", p.ID, "name", p.Name)
	return nil
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, name, ingredients, price FROM %s WHERE id = $1`,
		r.table,
	)

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProductRepository) FindByName(ctx context.Context, name string) (*models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, name, ingredients, price FROM %s WHERE name = $1 LIMIT 1`,
		r.table,
	)

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresProductRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(
		`SELECT id, name, ingredients, price FROM %s WHERE id = ANY($1)`,
		r.table,
	)

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) List(ctx context.Context) ([]models.Product, error) {
	query := fmt.Sprintf(
		`SELECT id, name, ingredients, price FROM %s ORDER BY name ASC`,
		r.table,
	)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Ingredients, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := fmt.Sprintf(
		`UPDATE %s SET name = $2, ingredients = $3, price = $4 WHERE id = $1`,
		r.table,
	)

	result, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.Ingredients, p.Price)
	if err != nil {
		r.logger.Error("failed to update product", "id", p.ID, "error", err)
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.logger.Error("failed to delete product", "id", id, "error", err)
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	r.logger.Info("product deleted", "id", id)
	return nil
}
