package service

import (
	"math"

	"github.com/massafina/massafina-api/internal/models"
)

// StandardDeliveryFee is the flat surcharge charged on delivery orders.
// Pickup orders pay nothing.
const StandardDeliveryFee = 10.00

// DeliveryFeeFor returns the fee implied by the delivery method.
func DeliveryFeeFor(method models.DeliveryMethod) float64 {
	if method == models.DeliveryEntrega {
		return StandardDeliveryFee
	}
	return 0.00
}

// RoundMoney rounds a monetary value to two decimal places.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
