package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appReview "github.com/peemtanapat/retail-backoffice/internal/application/review"
)

type reviewRequest struct {
	CustomerID uint   `json:"customer_id"`
	ProductID  uint   `json:"product_id"`
	StoreID    uint   `json:"store_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

func (r reviewRequest) toInput() appReview.ReviewInput {
	return appReview.ReviewInput{
		CustomerID: r.CustomerID,
		ProductID:  r.ProductID,
		StoreID:    r.StoreID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

func (h *Handler) handleCreateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	rev, err := h.reviews.CreateReview(c.Request.Context(), req.toInput())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review created successfully",
		"review":  rev,
	})
}

func (h *Handler) handleReviewsByStoreAndProduct(c *gin.Context) {
	storeID, ok := paramUint(c, "storeId")
	if !ok {
		return
	}
	productID, ok := paramUint(c, "productId")
	if !ok {
		return
	}

	reviews, err := h.reviews.ReviewsByStoreAndProduct(c.Request.Context(), storeID, productID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) handleUpdateReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	rev, err := h.reviews.UpdateReview(c.Request.Context(), c.Param("id"), req.toInput())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review updated successfully",
		"review":  rev,
	})
}

func (h *Handler) handleDeleteReview(c *gin.Context) {
	if err := h.reviews.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

func (h *Handler) handleReviewsByCustomer(c *gin.Context) {
	customerID, ok := paramUint(c, "customerId")
	if !ok {
		return
	}

	reviews, err := h.reviews.ReviewsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) handleReviewsByProduct(c *gin.Context) {
	productID, ok := paramUint(c, "productId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	reviews, err := h.reviews.ReviewsByProduct(ctx, productID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	avg, err := h.reviews.AverageRating(ctx, productID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": avg,
	})
}
