package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/massafina/massafina-api/internal/models"
)

type PostgresCustomerRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewCustomerRepository(db *sql.DB, logger *slog.Logger) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{
		db:     db,
		logger: logger.With("repository", "customers"),
	}
}

func (r *PostgresCustomerRepository) Create(ctx context.Context, c *models.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO customers (id, name, cpf, email, telefone)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.CPF, c.Email, c.Telefone); err != nil {
		r.logger.Error("failed to insert customer", "cpf", c.CPF, "error", err)
		return err
	}

	r.logger.Info("customer created", "id", c.ID)
	return nil
}

func (r *PostgresCustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	query := `SELECT id, name, cpf, email, telefone FROM customers WHERE id = $1`

	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.Telefone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCustomerRepository) FindByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	query := `SELECT id, name, cpf, email, telefone FROM customers WHERE cpf = $1 LIMIT 1`

	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, cpf).
		Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.Telefone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresCustomerRepository) List(ctx context.Context) ([]models.Customer, error) {
	query := `SELECT id, name, cpf, email, telefone FROM customers ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF, &c.Email, &c.Telefone); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *PostgresCustomerRepository) Update(ctx context.Context, c *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, cpf = $3, email = $4, telefone = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.CPF, c.Email, c.Telefone)
	if err != nil {
		r.logger.Error("failed to update customer", "id", c.ID, "error", err)
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *PostgresCustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("failed to delete customer", "id", id, "error", err)
		return err
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}

	r.logger.Info("customer deleted", "id", id)
	return nil
}
