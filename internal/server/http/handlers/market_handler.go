package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/usecase"
)

// MarketHandler serves the public listing catalogue.
type MarketHandler struct {
	facade MarketplaceFacade
}

// NewMarketHandler constructs MarketHandler.
func NewMarketHandler(facade MarketplaceFacade) *MarketHandler {
	return &MarketHandler{facade: facade}
}

// Inventory handles GET /api/market/inventory.
func (h *MarketHandler) Inventory(c *gin.Context) {
	filter := usecase.Filter{
		Type:    model.AvocadoType(c.Query("type")),
		Caliber: model.Caliber(c.Query("caliber")),
	}

	if raw := c.Query("min_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid min_price"})
			return
		}
		filter.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid max_price"})
			return
		}
		filter.MaxPrice = &price
	}

	items, err := h.facade.BrowseInventory(c.Request.Context(), filter)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(items))
}
