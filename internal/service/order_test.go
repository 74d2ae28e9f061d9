package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/events"
	"github.com/massafina/massafina-api/internal/models"
)

type mockOrderRepo struct {
	orders  map[string]*models.Order
	nextID  int
	creates int
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*models.Order)}
}

func (m *mockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	m.creates++
	m.nextID++
	o.ID = fmt.Sprintf("order-%d", m.nextID)
	copied := *o
	m.orders[o.ID] = &copied
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.orders[id]; !ok {
		return fmt.Errorf("no rows deleted")
	}
	delete(m.orders, id)
	return nil
}

func orderServiceFixture(eventsEnabled bool) (*OrderService, *mockOrderRepo, *mockProductRepo, *mockProductRepo, *mockProductRepo, *events.MockEventPublisher) {
	orders := newMockOrderRepo()
	pizzas := newMockProductRepo()
	desserts := newMockProductRepo()
	drinks := newMockProductRepo()
	publisher := events.NewMockEventPublisher()

	pizzas.add(models.Product{ID: "pz-1", Name: "Calabresa", Ingredients: "calabresa, cebola", Price: 42.00})
	desserts.add(models.Product{ID: "ds-1", Name: "Pudim", Ingredients: "leite condensado, ovos", Price: 15.00})
	drinks.add(models.Product{ID: "dr-1", Name: "Guaraná 2L", Price: 12.00})

	svc := NewOrderService(orders, pizzas, desserts, drinks, publisher, eventsEnabled, testLogger())
	return svc, orders, pizzas, desserts, drinks, publisher
}

func TestCreateOrderTotals(t *testing.T) {
	tests := []struct {
		name      string
		delivery  models.DeliveryMethod
		items     []models.OrderItemInput
		wantFee   float64
		wantTotal float64
	}{
		{
			name:     "delivery adds the flat fee",
			delivery: models.DeliveryEntrega,
			items: []models.OrderItemInput{
				{ProductID: "pz-1", ProductType: models.ProductTypePizza, Quantity: 2},
				{ProductID: "dr-1", ProductType: models.ProductTypeDrink, Quantity: 1},
			},
			wantFee:   10.00,
			wantTotal: 106.00, // 2*42 + 12 + 10
		},
		{
			name:     "pickup pays no fee",
			delivery: models.DeliveryRetirada,
			items: []models.OrderItemInput{
				{ProductID: "ds-1", ProductType: models.ProductTypeDessert, Quantity: 3},
			},
			wantFee:   0.00,
			wantTotal: 45.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, orders, _, _, _, _ := orderServiceFixture(false)

			order, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
				CustomerID:     "cust-1",
				Items:          tt.items,
				PaymentMethod:  models.PaymentPix,
				DeliveryMethod: tt.delivery,
			})
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if order.DeliveryFee != tt.wantFee {
				t.Errorf("Expected delivery fee %.2f, got %.2f", tt.wantFee, order.DeliveryFee)
			}
			if order.TotalPrice != tt.wantTotal {
				t.Errorf("Expected total %.2f, got %.2f", tt.wantTotal, order.TotalPrice)
			}
			if orders.creates != 1 {
				t.Errorf("Expected 1 persisted order, got %d", orders.creates)
			}
		})
	}
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	svc, _, pizzas, _, _, _ := orderServiceFixture(false)

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID:     "cust-1",
		Items:          []models.OrderItemInput{{ProductID: "pz-1", ProductType: models.ProductTypePizza, Quantity: 2}},
		PaymentMethod:  models.PaymentCartao,
		DeliveryMethod: models.DeliveryRetirada,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	item := order.Items[0]
	if item.ProductName != "Calabresa" {
		t.Errorf("Expected snapshot name 'Calabresa', got %q", item.ProductName)
	}
	if item.ProductPriceAtOrder != 42.00 {
		t.Errorf("Expected snapshot price 42.00, got %.2f", item.ProductPriceAtOrder)
	}
	if item.ItemPrice != 84.00 {
		t.Errorf("Expected item price 84.00, got %.2f", item.ItemPrice)
	}
	if item.PizzaID == nil || *item.PizzaID != "pz-1" {
		t.Errorf("Expected pizzaId pz-1, got %v", item.PizzaID)
	}
	if item.SobremesaID != nil || item.BebidaID != nil {
		t.Error("Expected only the pizza foreign key to be set")
	}

	// a later catalog edit must not touch the snapshot
	pizzas.products["pz-1"].Price = 60.00
	if item.ProductPriceAtOrder != 42.00 {
		t.Errorf("Expected snapshot unchanged, got %.2f", item.ProductPriceAtOrder)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, orders, _, _, _, _ := orderServiceFixture(false)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID: "cust-1",
		Items: []models.OrderItemInput{
			{ProductID: "pz-1", ProductType: models.ProductTypePizza, Quantity: 1},
			{ProductID: "pz-404", ProductType: models.ProductTypePizza, Quantity: 1},
		},
		PaymentMethod:  models.PaymentDinheiro,
		DeliveryMethod: models.DeliveryEntrega,
	})

	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
	if err.Error() != "Produto não encontrado." {
		t.Errorf("Expected 'Produto não encontrado.', got %q", err.Error())
	}
	if orders.creates != 0 {
		t.Errorf("Expected no order persisted, got %d", orders.creates)
	}
}

func TestCreateOrderInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *models.CreateOrderInput
	}{
		{
			name: "missing customer",
			input: &models.CreateOrderInput{
				Items:          []models.OrderItemInput{{ProductID: "pz-1", ProductType: models.ProductTypePizza, Quantity: 1}},
				PaymentMethod:  models.PaymentPix,
				DeliveryMethod: models.DeliveryEntrega,
			},
		},
		{
			name: "no items",
			input: &models.CreateOrderInput{
				CustomerID:     "cust-1",
				PaymentMethod:  models.PaymentPix,
				DeliveryMethod: models.DeliveryEntrega,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, pizzas, desserts, drinks, _ := orderServiceFixture(false)

			_, err := svc.CreateOrder(context.Background(), tt.input)
			if !apperrors.IsInvalidRequest(err) {
				t.Fatalf("Expected invalid request error, got %v", err)
			}
			if err.Error() != "Dados inválidos para o pedido." {
				t.Errorf("Expected 'Dados inválidos para o pedido.', got %q", err.Error())
			}

			if pizzas.findByIDsCalls+desserts.findByIDsCalls+drinks.findByIDsCalls != 0 {
				t.Error("Expected validation to fail before any catalog lookup")
			}
		})
	}
}

func TestCreateOrderSkipsEmptyCatalogs(t *testing.T) {
	svc, _, pizzas, desserts, drinks, _ := orderServiceFixture(false)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID:     "cust-1",
		Items:          []models.OrderItemInput{{ProductID: "pz-1", ProductType: models.ProductTypePizza, Quantity: 1}},
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryRetirada,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if pizzas.findByIDsCalls != 1 {
		t.Errorf("Expected 1 pizza lookup, got %d", pizzas.findByIDsCalls)
	}
	if desserts.findByIDsCalls != 0 || drinks.findByIDsCalls != 0 {
		t.Errorf("Expected untouched catalogs to skip the store, got desserts=%d drinks=%d",
			desserts.findByIDsCalls, drinks.findByIDsCalls)
	}
}

func TestCreateOrderSameIDAcrossCatalogs(t *testing.T) {
	svc, _, pizzas, desserts, _, _ := orderServiceFixture(false)

	// both catalogs hand out the same id; the (type, id) key keeps them apart
	pizzas.add(models.Product{ID: "shared-1", Name: "Marguerita", Ingredients: "molho, mussarela", Price: 40.00})
	desserts.add(models.Product{ID: "shared-1", Name: "Mousse", Ingredients: "chocolate", Price: 14.00})

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID: "cust-1",
		Items: []models.OrderItemInput{
			{ProductID: "shared-1", ProductType: models.ProductTypePizza, Quantity: 1},
			{ProductID: "shared-1", ProductType: models.ProductTypeDessert, Quantity: 1},
		},
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryRetirada,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if order.Items[0].ProductName != "Marguerita" || order.Items[1].ProductName != "Mousse" {
		t.Errorf("Expected each item resolved against its own catalog, got %q and %q",
			order.Items[0].ProductName, order.Items[1].ProductName)
	}
	if order.TotalPrice != 54.00 {
		t.Errorf("Expected total 54.00, got %.2f", order.TotalPrice)
	}
}

func TestCreateOrderPublishesEvent(t *testing.T) {
	svc, _, _, _, _, publisher := orderServiceFixture(true)

	order, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID:     "cust-1",
		Items:          []models.OrderItemInput{{ProductID: "dr-1", ProductType: models.ProductTypeDrink, Quantity: 1}},
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryEntrega,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(publisher.Events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(publisher.Events))
	}
	if publisher.Events[0].Type != events.EventTypeOrderCreated {
		t.Errorf("Expected %s event, got %s", events.EventTypeOrderCreated, publisher.Events[0].Type)
	}
	if publisher.Events[0].OrderID != order.ID {
		t.Errorf("Expected event for order %s, got %s", order.ID, publisher.Events[0].OrderID)
	}
}

func TestCreateOrderEventsDisabled(t *testing.T) {
	svc, _, _, _, _, publisher := orderServiceFixture(false)

	_, err := svc.CreateOrder(context.Background(), &models.CreateOrderInput{
		CustomerID:     "cust-1",
		Items:          []models.OrderItemInput{{ProductID: "dr-1", ProductType: models.ProductTypeDrink, Quantity: 1}},
		PaymentMethod:  models.PaymentPix,
		DeliveryMethod: models.DeliveryEntrega,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(publisher.Events) != 0 {
		t.Errorf("Expected no events, got %d", len(publisher.Events))
	}
}

func TestDeleteOrder(t *testing.T) {
	svc, orders, _, _, _, publisher := orderServiceFixture(true)
	orders.orders["order-1"] = &models.Order{ID: "order-1", CustomerID: "cust-1"}

	if err := svc.DeleteOrder(context.Background(), "order-1"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(orders.orders) != 0 {
		t.Error("Expected order removed")
	}
	if len(publisher.Events) != 1 || publisher.Events[0].Type != events.EventTypeOrderDeleted {
		t.Errorf("Expected one order deleted event, got %v", publisher.Events)
	}
}

func TestDeleteOrderMissing(t *testing.T) {
	svc, _, _, _, _, _ := orderServiceFixture(false)

	err := svc.DeleteOrder(context.Background(), "order-404")
	if !apperrors.IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
	if err.Error() != "Pedido não encontrado" {
		t.Errorf("Expected 'Pedido não encontrado', got %q", err.Error())
	}
}
