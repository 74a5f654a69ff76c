package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appOrder "github.com/peemtanapat/retail-backoffice/internal/application/order"
)

type placeOrderLine struct {
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type placeOrderRequest struct {
	StoreID       uint             `json:"store_id" binding:"required"`
	CustomerName  string           `json:"customer_name" binding:"required"`
	CustomerEmail string           `json:"customer_email" binding:"required"`
	CustomerPhone string           `json:"customer_phone"`
	Lines         []placeOrderLine `json:"items"`
	TotalPrice    float64          `json:"total_price"`
}

func (h *Handler) handlePlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	lines := make([]appOrder.PlaceOrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, appOrder.PlaceOrderLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}

	ord, err := h.orders.PlaceOrder(c.Request.Context(), appOrder.PlaceOrderRequest{
		StoreID:       req.StoreID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Lines:         lines,
		TotalPrice:    req.TotalPrice,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Place order successfully",
		"data":    ord,
	})
}

func (h *Handler) handleGetOrder(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	ord, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": ord})
}
