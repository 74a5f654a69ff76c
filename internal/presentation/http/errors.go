package httppresentation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appOrder "github.com/peemtanapat/retail-backoffice/internal/application/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/catalog"
	"github.com/peemtanapat/retail-backoffice/internal/domain/customer"
	"github.com/peemtanapat/retail-backoffice/internal/domain/inventory"
	"github.com/peemtanapat/retail-backoffice/internal/domain/order"
	"github.com/peemtanapat/retail-backoffice/internal/domain/review"
	"github.com/peemtanapat/retail-backoffice/internal/domain/store"
)

// writeDomainError translates domain failures to HTTP statuses. Missing
// entities map to 404, conflicts (stock exhaustion, duplicates) to 409,
// rejected input to 400, everything else to 500.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, customer.ErrNotFound),
		errors.Is(err, inventory.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, review.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrAlreadyExists),
		errors.Is(err, catalog.ErrDuplicateSKU),
		errors.Is(err, catalog.ErrDuplicateName),
		errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, appOrder.ErrValidation),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, inventory.ErrNegativeQuantity),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, order.ErrNoLines),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, review.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func writeBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
