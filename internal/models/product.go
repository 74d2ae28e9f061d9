package models

import (
	"fmt"
	"strings"
)

// ProductType identifies which catalog a product belongs to. The wire
// values are the ones the clients already send.
type ProductType string

const (
	ProductTypePizza   ProductType = "PIZZA"
	ProductTypeDessert ProductType = "SOBREMESA"
	ProductTypeDrink   ProductType = "BEBIDA"
)

// ParseProductType normalizes a client-supplied product type.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(strings.ToUpper(strings.TrimSpace(s))) {
	case ProductTypePizza:
		return ProductTypePizza, nil
	case ProductTypeDessert:
		return ProductTypeDessert, nil
	case ProductTypeDrink:
		return ProductTypeDrink, nil
	default:
		return "", fmt.Errorf("invalid product type: %q", s)
	}
}

// Product is a catalog entry. Drinks carry no ingredients, so the field is
// omitted from their JSON representation when empty.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients,omitempty"`
	Price       float64 `json:"price"`
}

// ProductUpdate is a partial update. Nil means "field not provided, keep
// the stored value"; a non-nil pointer always wins, even when it points at
// the zero value.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Ingredients *string  `json:"ingredients"`
	Price       *float64 `json:"price"`
}

// Apply merges the update over an existing product.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Ingredients != nil {
		p.Ingredients = *u.Ingredients
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
}

// ProductKey is the composite lookup key used during order creation. Two
// catalogs may hand out the same id, so the id alone is not a key.
type ProductKey struct {
	Type ProductType
	ID   string
}

// ProductRef is the point-in-time snapshot taken from a catalog lookup.
type ProductRef struct {
	Name  string
	Price float64
	Type  ProductType
}
