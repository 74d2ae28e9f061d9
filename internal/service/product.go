package service

import (
	"context"
	"log/slog"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
	"github.com/massafina/massafina-api/internal/repository"
)

// catalogMessages carries the per-catalog error strings. They are part of
// the API contract, so each catalog keeps its historical wording.
type catalogMessages struct {
	notExists    string
	findNoInput  string
	missingField string
	invalidID    string
}

// ProductService implements the CRUD rules for one catalog. The three
// catalogs behave identically except for their messages and whether
// ingredients are a required field (drinks have none).
type ProductService struct {
	repo             repository.ProductRepository
	cache            repository.MenuCache
	cacheKey         string
	cachingEnabled   bool
	needsIngredients bool
	messages         catalogMessages
	logger           *slog.Logger
}

func NewPizzaService(repo repository.ProductRepository, cache repository.MenuCache, cachingEnabled bool, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:             repo,
		cache:            cache,
		cacheKey:         "pizzas",
		cachingEnabled:   cachingEnabled,
		needsIngredients: true,
		messages: catalogMessages{
			notExists:    "Pizza não existe!",
			findNoInput:  "Pizza não encontrada",
			missingField: "Preencha todos os campos",
			invalidID:    "Solicitação invalida.",
		},
		logger: logger.With("catalog", "pizzas"),
	}
}

func NewDessertService(repo repository.ProductRepository, cache repository.MenuCache, cachingEnabled bool, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:             repo,
		cache:            cache,
		cacheKey:         "desserts",
		cachingEnabled:   cachingEnabled,
		needsIngredients: true,
		messages: catalogMessages{
			notExists:    "Sobremesa não existe!",
			findNoInput:  "Nome não enviado",
			missingField: "Preencha todos os campos",
			invalidID:    "Solicitação invalida.",
		},
		logger: logger.With("catalog", "desserts"),
	}
}

func NewDrinkService(repo repository.ProductRepository, cache repository.MenuCache, cachingEnabled bool, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:             repo,
		cache:            cache,
		cacheKey:         "drinks",
		cachingEnabled:   cachingEnabled,
		needsIngredients: false,
		messages: catalogMessages{
			notExists:    "Bebida não existe!",
			findNoInput:  "Bebida não encontrada",
			missingField: "Preencha todos os campos",
			invalidID:    "Solicitação invalida.",
		},
		logger: logger.With("catalog", "drinks"),
	}
}

// Create validates that every required field is present and persists the
// product. A zero price counts as missing, matching the historical
// behavior.
func (s *ProductService) Create(ctx context.Context, name, ingredients string, price float64) (*models.Product, error) {
	if name == "" || price == 0 {
		return nil, apperrors.NewValidation(s.messages.missingField)
	}
	if s.needsIngredients && ingredients == "" {
		return nil, apperrors.NewValidation(s.messages.missingField)
	}

	product := &models.Product{
		Name:        name,
		Ingredients: ingredients,
		Price:       price,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

// FindByName returns the first product matching the name, or nil when
// nothing matches. A miss is not an error here; callers depend on getting
// the null result straight through.
func (s *ProductService) FindByName(ctx context.Context, name string) (*models.Product, error) {
	if name == "" {
		return nil, apperrors.NewNotFound(s.messages.findNoInput)
	}

	return s.repo.FindByName(ctx, name)
}

// List returns every product in the catalog, read through the menu cache
// when it is enabled.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	if s.cachingEnabled {
		if products, err := s.cache.GetList(ctx, s.cacheKey); err == nil && products != nil {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cachingEnabled {
		if err := s.cache.SetList(ctx, s.cacheKey, products); err != nil {
			s.logger.Warn("failed to cache catalog listing", "error", err)
		}
	}
	return products, nil
}

// Edit loads the current record, merges the provided fields over it and
// persists the result. Fields left out of the update keep their stored
// values.
func (s *ProductService) Edit(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	if id == "" {
		return nil, apperrors.NewValidation(s.messages.invalidID)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFound(s.messages.notExists)
	}

	update.Apply(product)

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return product, nil
}

// Delete removes the product after checking it exists.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidation(s.messages.invalidID)
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperrors.NewNotFound(s.messages.notExists)
	}

	if err := s.repo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *ProductService) invalidateCache(ctx context.Context) {
	if !s.cachingEnabled {
		return
	}
	if err := s.cache.Invalidate(ctx, s.cacheKey); err != nil {
		s.logger.Warn("failed to invalidate catalog cache", "error", err)
	}
}
