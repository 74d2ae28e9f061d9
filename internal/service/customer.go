package service

import (
	"context"
	"log/slog"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
	"github.com/massafina/massafina-api/internal/repository"
)

// CustomerService handles customer registration and lookups. Unlike the
// catalog finds, a failed CPF lookup is an error here.
type CustomerService struct {
	repo   repository.CustomerRepository
	logger *slog.Logger
}

func NewCustomerService(repo repository.CustomerRepository, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:   repo,
		logger: logger.With("component", "customer-service"),
	}
}

func (s *CustomerService) Create(ctx context.Context, name, email, cpf, telefone string) (*models.Customer, error) {
	if name == "" || email == "" || cpf == "" || telefone == "" {
		return nil, apperrors.NewValidation("Preencha todos os campos")
	}

	customer := &models.Customer{
		Name:     name,
		CPF:      cpf,
		Email:    email,
		Telefone: telefone,
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) FindByCPF(ctx context.Context, cpf string) (*models.Customer, error) {
	if cpf == "" {
		return nil, apperrors.NewValidation("CPF não enviado")
	}

	customer, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NewNotFound("Cliente não encontrado")
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.repo.List(ctx)
}

func (s *CustomerService) Edit(ctx context.Context, id string, update models.CustomerUpdate) (*models.Customer, error) {
	if id == "" {
		return nil, apperrors.NewValidation("Solicitação invalida.")
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NewNotFound("Cliente não existe!")
	}

	update.Apply(customer)

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidation("Solicitação invalida.")
	}

	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperrors.NewNotFound("Cliente não existe!")
	}

	return s.repo.Delete(ctx, customer.ID)
}
