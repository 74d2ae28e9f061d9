package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
	"github.com/massafina/massafina-api/internal/repository"
)

// OrderEventPublisher publishes order lifecycle events.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *models.Order) error
	PublishOrderDeleted(ctx context.Context, orderID string) error
}

// OrderService handles order creation and deletion.
type OrderService struct {
	orders        repository.OrderRepository
	pizzas        repository.ProductRepository
	desserts      repository.ProductRepository
	drinks        repository.ProductRepository
	publisher     OrderEventPublisher
	eventsEnabled bool
	logger        *slog.Logger
}

func NewOrderService(
	orders repository.OrderRepository,
	pizzas repository.ProductRepository,
	desserts repository.ProductRepository,
	drinks repository.ProductRepository,
	publisher OrderEventPublisher,
	eventsEnabled bool,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		orders:        orders,
		pizzas:        pizzas,
		desserts:      desserts,
		drinks:        drinks,
		publisher:     publisher,
		eventsEnabled: eventsEnabled,
		logger:        logger.With("component", "order-service"),
	}
}

// CreateOrder resolves every requested product, snapshots names and prices,
// totals the order including the delivery fee and persists it with its
// items in one transaction.
func (s *OrderService) CreateOrder(ctx context.Context, in *models.CreateOrderInput) (*models.Order, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, apperrors.NewInvalidRequest("Dados inválidos para o pedido.")
	}

	deliveryFee := DeliveryFeeFor(in.DeliveryMethod)
	totalPrice := deliveryFee

	catalog, err := s.resolveProducts(ctx, in.Items)
	if err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, requested := range in.Items {
		key := models.ProductKey{Type: requested.ProductType, ID: requested.ProductID}
		ref, ok := catalog[key]
		if !ok {
			return nil, apperrors.NewNotFound("Produto não encontrado.")
		}

		itemPrice := ref.Price * float64(requested.Quantity)
		totalPrice += itemPrice

		item := models.OrderItem{
			Quantity:            requested.Quantity,
			ProductType:         requested.ProductType,
			ProductName:         ref.Name,
			ProductPriceAtOrder: ref.Price,
			ItemPrice:           RoundMoney(itemPrice),
		}

		productID := requested.ProductID
		switch requested.ProductType {
		case models.ProductTypePizza:
			item.PizzaID = &productID
		case models.ProductTypeDessert:
			item.SobremesaID = &productID
		case models.ProductTypeDrink:
			item.BebidaID = &productID
		}

		items = append(items, item)
	}

	order := &models.Order{
		CustomerID:     in.CustomerID,
		TotalPrice:     RoundMoney(totalPrice),
		DeliveryFee:    deliveryFee,
		PaymentMethod:  in.PaymentMethod,
		DeliveryMethod: in.DeliveryMethod,
		Items:          items,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("failed to persist order", "customer_id", in.CustomerID, "error", err)
		return nil, err
	}

	if s.eventsEnabled {
		if err := s.publisher.PublishOrderCreated(ctx, order); err != nil {
			// The order is already committed; a publish failure must not
			// fail the request.
			s.logger.Error("failed to publish order created event", "order_id", order.ID, "error", err)
		}
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"customer_id", order.CustomerID,
		"total", order.TotalPrice,
	)
	return order, nil
}

// resolveProducts partitions the requested ids by catalog, fetches the
// three catalogs concurrently and merges the results into one table keyed
// by (type, id). Categories with no requested items never hit the store;
// any lookup failure aborts the whole resolution.
func (s *OrderService) resolveProducts(ctx context.Context, items []models.OrderItemInput) (map[models.ProductKey]models.ProductRef, error) {
	var pizzaIDs, dessertIDs, drinkIDs []string
	for _, item := range items {
		switch item.ProductType {
		case models.ProductTypePizza:
			pizzaIDs = append(pizzaIDs, item.ProductID)
		case models.ProductTypeDessert:
			dessertIDs = append(dessertIDs, item.ProductID)
		case models.ProductTypeDrink:
			drinkIDs = append(drinkIDs, item.ProductID)
		}
	}

	var pizzas, desserts, drinks []models.Product

	g, gctx := errgroup.WithContext(ctx)
	if len(pizzaIDs) > 0 {
		g.Go(func() error {
			var err error
			pizzas, err = s.pizzas.FindByIDs(gctx, pizzaIDs)
			return err
		})
	}
	if len(dessertIDs) > 0 {
		g.Go(func() error {
			var err error
			desserts, err = s.desserts.FindByIDs(gctx, dessertIDs)
			return err
		})
	}
	if len(drinkIDs) > 0 {
		g.Go(func() error {
			var err error
			drinks, err = s.drinks.FindByIDs(gctx, drinkIDs)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := make(map[models.ProductKey]models.ProductRef)
	for _, p := range pizzas {
		catalog[models.ProductKey{Type: models.ProductTypePizza, ID: p.ID}] =
			models.ProductRef{Name: p.Name, Price: p.Price, Type: models.ProductTypePizza}
	}
	for _, p := range desserts {
		catalog[models.ProductKey{Type: models.ProductTypeDessert, ID: p.ID}] =
			models.ProductRef{Name: p.Name, Price: p.Price, Type: models.ProductTypeDessert}
	}
	for _, p := range drinks {
		catalog[models.ProductKey{Type: models.ProductTypeDrink, ID: p.ID}] =
			models.ProductRef{Name: p.Name, Price: p.Price, Type: models.ProductTypeDrink}
	}
	return catalog, nil
}

// DeleteOrder removes an order after checking it exists.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperrors.NewNotFound("Pedido não encontrado")
	}

	if err := s.orders.Delete(ctx, order.ID); err != nil {
		return err
	}

	if s.eventsEnabled {
		if err := s.publisher.PublishOrderDeleted(ctx, order.ID); err != nil {
			s.logger.Error("failed to publish order deleted event", "order_id", order.ID, "error", err)
		}
	}
	return nil
}
