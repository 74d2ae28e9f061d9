package models

import (
	"fmt"
	"strings"
	"time"
)

type PaymentMethod string

const (
	PaymentPix      PaymentMethod = "PIX"
	PaymentCartao   PaymentMethod = "CARTAO"
	PaymentDinheiro PaymentMethod = "DINHEIRO"
)

// ParsePaymentMethod accepts the lowercase values the front ends send and
// normalizes them to the stored form.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case PaymentPix:
		return PaymentPix, nil
	case PaymentCartao:
		return PaymentCartao, nil
	case PaymentDinheiro:
		return PaymentDinheiro, nil
	default:
		return "", fmt.Errorf("invalid payment method: %q", s)
	}
}

type DeliveryMethod string

const (
	DeliveryEntrega  DeliveryMethod = "ENTREGA"
	DeliveryRetirada DeliveryMethod = "RETIRADA"
)

func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch DeliveryMethod(strings.ToUpper(strings.TrimSpace(s))) {
	case DeliveryEntrega:
		return DeliveryEntrega, nil
	case DeliveryRetirada:
		return DeliveryRetirada, nil
	default:
		return "", fmt.Errorf("invalid delivery method: %q", s)
	}
}

type Order struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customerId"`
	TotalPrice     float64        `json:"totalPrice"`
	DeliveryFee    float64        `json:"deliveryFee"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod"`
	CreatedAt      time.Time      `json:"createdAt"`
	Items          []OrderItem    `json:"orderItems"`
}

// OrderItem is owned by its order and stores a snapshot of the product's
// name and price at order time. Catalog edits after the fact must not
// change historical orders. Exactly one of the three foreign keys is set,
// matching ProductType.
type OrderItem struct {
	ID                  string      `json:"id"`
	Quantity            int         `json:"quantity"`
	ProductType         ProductType `json:"productType"`
	ProductName         string      `json:"productName"`
	ProductPriceAtOrder float64     `json:"productPriceAtOrder"`
	ItemPrice           float64     `json:"itemPrice"`
	PizzaID             *string     `json:"pizzaId,omitempty"`
	SobremesaID         *string     `json:"sobremesaId,omitempty"`
	BebidaID            *string     `json:"bebidaId,omitempty"`
}

// ProductID returns whichever catalog foreign key is set.
func (i OrderItem) ProductID() string {
	switch {
	case i.PizzaID != nil:
		return *i.PizzaID
	case i.SobremesaID != nil:
		return *i.SobremesaID
	case i.BebidaID != nil:
		return *i.BebidaID
	}
	return ""
}

// OrderItemInput is one requested line in an order creation request.
type OrderItemInput struct {
	ProductID   string      `json:"productId"`
	ProductType ProductType `json:"productType"`
	Quantity    int         `json:"quantity"`
}

// CreateOrderInput is the validated order creation request handed to the
// service layer.
type CreateOrderInput struct {
	CustomerID     string           `json:"customerId"`
	Items          []OrderItemInput `json:"items"`
	PaymentMethod  PaymentMethod    `json:"paymentMethod"`
	DeliveryMethod DeliveryMethod   `json:"deliveryMethod"`
}

// DailyReportRow is one day of aggregated sales.
type DailyReportRow struct {
	Date         string  `json:"date"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// MonthlyReportRow is one month of aggregated sales.
type MonthlyReportRow struct {
	Month        string  `json:"month"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
