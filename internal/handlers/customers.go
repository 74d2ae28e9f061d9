package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/massafina/massafina-api/internal/models"
)

type createCustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
}

type editCustomerRequest struct {
	ID string `json:"id"`
	models.CustomerUpdate
}

// CreateCustomer handles POST /customer.
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), req.Name, req.Email, req.CPF, req.Telefone)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /customers.
func (h *Handlers) ListCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

// FindCustomer handles GET /customer/:cpf.
func (h *Handlers) FindCustomer(c *gin.Context) {
	customer, err := h.customers.FindByCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// EditCustomer handles PUT /customer.
func (h *Handlers) EditCustomer(c *gin.Context) {
	var req editCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	customer, err := h.customers.Edit(c.Request.Context(), req.ID, req.CustomerUpdate)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customer?id=.
func (h *Handlers) DeleteCustomer(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Query("id")); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deletado com sucesso!"})
}
