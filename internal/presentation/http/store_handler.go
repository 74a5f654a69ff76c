package httppresentation

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type storeRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
}

func (h *Handler) handleAddStore(c *gin.Context) {
	var req storeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request")
		return
	}

	st, err := h.stores.Register(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "add a new store successfully",
		"data":    st,
	})
}

func (h *Handler) handleValidateStore(c *gin.Context) {
	storeID, ok := paramUint(c, "storeId")
	if !ok {
		return
	}

	exists, err := h.stores.Exists(c.Request.Context(), storeID)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "validate store successfully",
		"data":    exists,
	})
}
