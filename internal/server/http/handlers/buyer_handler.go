package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/server/http/dto"
	"github.com/avoandes/avomarket/internal/usecase"
)

// BuyerHandler manages buyer-side order endpoints.
type BuyerHandler struct {
	facade BuyerFacade
}

// NewBuyerHandler constructs BuyerHandler.
func NewBuyerHandler(facade BuyerFacade) *BuyerHandler {
	return &BuyerHandler{facade: facade}
}

// PlaceOrder handles POST /api/buyer/orders.
func (h *BuyerHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	orderDate, ok := parseDate(req.OrderDate)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid orderDate"})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c), req.ItemID, req.QuantityBoxes, orderDate)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// AutoMatch handles POST /api/buyer/orders/auto.
func (h *BuyerHandler) AutoMatch(c *gin.Context) {
	var req dto.AutoMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AutoMatchOrder(c.Request.Context(), CurrentUserID(c), usecase.AutoMatchInput{
		Type:     model.AvocadoType(req.Type),
		Caliber:  model.Caliber(req.Caliber),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Quantity: req.QuantityBoxes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Orders handles GET /api/buyer/orders.
func (h *BuyerHandler) Orders(c *gin.Context) {
	buckets, err := h.facade.BuyerOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDashboardResponse(buckets))
}
