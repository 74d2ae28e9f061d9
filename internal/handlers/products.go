package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/massafina/massafina-api/internal/models"
)

type createProductRequest struct {
	Name        string  `json:"name"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
}

type editProductRequest struct {
	ID string `json:"id"`
	models.ProductUpdate
}

// CreateProduct handles POST /pizza, /sobremesa and /bebida.
func (h *Handlers) CreateProduct(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		product, err := svc.Create(c.Request.Context(), req.Name, req.Ingredients, req.Price)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// ListProducts handles GET /pizzas, /sobremesas and /bebidas.
func (h *Handlers) ListProducts(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

// FindProduct handles GET /pizza/:name, /sobremesa/:name and /bebida/:name.
// A miss is served as 200 with a null body; only a missing name parameter
// is an error.
func (h *Handlers) FindProduct(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.FindByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// EditProduct handles PUT /pizza, /sobremesa and /bebida. Fields absent
// from the body keep their stored values.
func (h *Handlers) EditProduct(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req editProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		product, err := svc.Edit(c.Request.Context(), req.ID, req.ProductUpdate)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// DeleteProduct handles DELETE /pizza?id=, /sobremesa?id= and /bebida?id=.
func (h *Handlers) DeleteProduct(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Query("id")); err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Deletado com sucesso!"})
	}
}
