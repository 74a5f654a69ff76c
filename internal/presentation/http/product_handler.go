package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appCatalog "github.com/peemtanapat/retail-backoffice/internal/application/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
)

type productRequest struct {
	Name     string  `json:"name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
	SKU      string  `json:"sku" binding:"required"`
}

func (h *Handler) handleAddProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	product, err := h.products.AddProduct(c.Request.Context(), appCatalog.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		SKU:      req.SKU,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

func (h *Handler) handleGetProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *Handler) handleUpdateProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), id, appCatalog.ProductInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		SKU:      req.SKU,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"product": product,
	})
}

func (h *Handler) handleDeleteProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *Handler) handleListProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// handleFilterProducts narrows the listing by name substring and category.
// The literal "null" in either path segment means that filter is absent.
func (h *Handler) handleFilterProducts(c *gin.Context) {
	name := c.Param("name")
	category := c.Param("category")

	ctx := c.Request.Context()
	var (
		products []catalog.Product
		err      error
	)
	switch {
	case name == "null" && category == "null":
		products, err = h.products.ListProducts(ctx)
	case name == "null":
		products, err = h.products.FilterByCategory(ctx, category)
	case category == "null":
		products, err = h.products.SearchByName(ctx, name)
	default:
		products, err = h.products.SearchByNameAndCategory(ctx, name, category)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) handleProductsByCategoryAndStore(c *gin.Context) {
	storeID, ok := paramUint(c, "storeid")
	if !ok {
		return
	}
	category := c.Param("category")

	products, err := h.products.ProductsByCategoryAndStore(c.Request.Context(), category, storeID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) handleSearchProducts(c *gin.Context) {
	products, err := h.products.SearchByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
