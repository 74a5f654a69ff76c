package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
)

type stockRequest struct {
	StoreID   uint `json:"store_id" binding:"required"`
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

func (h *Handler) handleSaveStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	record, err := h.inventory.CreateStockRecord(c.Request.Context(), req.StoreID, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Inventory saved successfully",
		"inventory": record,
	})
}

func (h *Handler) handleUpdateStock(c *gin.Context) {
	var req stockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	record, err := h.inventory.UpdateQuantity(c.Request.Context(), req.StoreID, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Inventory updated successfully",
		"inventory": record,
	})
}

func (h *Handler) handleProductsAtStore(c *gin.Context) {
	storeID, ok := paramUint(c, "storeId")
	if !ok {
		return
	}

	products, err := h.inventory.ProductsAtStore(c.Request.Context(), storeID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// handleFilterStockedProducts mirrors the catalog filter but lives under the
// inventory prefix. "null" path segments disable the corresponding filter.
func (h *Handler) handleFilterStockedProducts(c *gin.Context) {
	category := c.Param("category")
	name := c.Param("name")

	ctx := c.Request.Context()
	var (
		products []catalog.Product
		err      error
	)
	switch {
	case category == "null" && name == "null":
		products, err = h.products.ListProducts(ctx)
	case category == "null":
		products, err = h.products.SearchByName(ctx, name)
	case name == "null":
		products, err = h.products.FilterByCategory(ctx, category)
	default:
		products, err = h.products.SearchByNameAndCategory(ctx, name, category)
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) handleSearchAtStore(c *gin.Context) {
	storeID, ok := queryUint(c, "storeId")
	if !ok {
		return
	}
	name := c.Query("name")

	products, err := h.inventory.SearchAtStore(c.Request.Context(), name, storeID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) handleValidateQuantity(c *gin.Context) {
	productID, ok := queryUint(c, "productId")
	if !ok {
		return
	}
	storeID, ok := queryUint(c, "storeId")
	if !ok {
		return
	}
	quantity, ok := queryInt(c, "quantity")
	if !ok {
		return
	}

	availability, err := h.inventory.CheckAvailability(c.Request.Context(), storeID, productID, quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *Handler) handleRemoveProduct(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	if err := h.products.DeleteProduct(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product and related inventory deleted successfully"})
}
