package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/massafina/massafina-api/internal/apperrors"
	"github.com/massafina/massafina-api/internal/models"
)

type orderItemRequest struct {
	ProductID   string `json:"productId"`
	ProductType string `json:"productType"`
	Quantity    int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID     string             `json:"customerId"`
	Items          []orderItemRequest `json:"items"`
	PaymentMethod  string             `json:"paymentMethod"`
	DeliveryMethod string             `json:"deliveryMethod"`
}

// CreateOrder handles POST /orders. The front ends send payment and
// delivery methods in lowercase; they are normalized before validation.
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.PaymentMethod == "" || req.DeliveryMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Método de pagamento e entrega são obrigatórios."})
		return
	}

	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deliveryMethod, err := models.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := &models.CreateOrderInput{
		CustomerID:     req.CustomerID,
		Items:          make([]models.OrderItemInput, 0, len(req.Items)),
		PaymentMethod:  paymentMethod,
		DeliveryMethod: deliveryMethod,
	}
	for _, item := range req.Items {
		productType, err := models.ParseProductType(item.ProductType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		input.Items = append(input.Items, models.OrderItemInput{
			ProductID:   item.ProductID,
			ProductType: productType,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("failed to create order", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// DeleteOrder handles DELETE /order?id=.
func (h *Handlers) DeleteOrder(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID do pedido é obrigatório"})
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed to delete order", "order_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pedido deletado com sucesso!"})
}
