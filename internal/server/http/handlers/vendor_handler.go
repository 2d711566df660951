package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/server/http/dto"
	"github.com/avoandes/avomarket/internal/usecase"
)

// VendorHandler manages vendor-side order and listing endpoints.
type VendorHandler struct {
	facade VendorFacade
}

// NewVendorHandler constructs VendorHandler.
func NewVendorHandler(facade VendorFacade) *VendorHandler {
	return &VendorHandler{facade: facade}
}

// Dashboard handles GET /api/vendor/dashboard.
func (h *VendorHandler) Dashboard(c *gin.Context) {
	buckets, err := h.facade.VendorOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDashboardResponse(buckets))
}

// Inventory handles GET /api/vendor/inventory.
func (h *VendorHandler) Inventory(c *gin.Context) {
	items, err := h.facade.VendorInventory(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(items))
}

// AddItem handles POST /api/vendor/inventory.
func (h *VendorHandler) AddItem(c *gin.Context) {
	var req dto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	harvestDate, ok := parseDate(req.HarvestDate)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid harvestDate"})
		return
	}

	item, err := h.facade.AddInventoryItem(c.Request.Context(), CurrentUserID(c), usecase.AddItemInput{
		Type:          model.AvocadoType(req.Type),
		Caliber:       model.Caliber(req.Caliber),
		QuantityBoxes: req.QuantityBoxes,
		PricePerBox:   req.PricePerBox,
		HarvestDate:   harvestDate,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(*item))
}

// RemoveItem handles DELETE /api/vendor/inventory/:id.
func (h *VendorHandler) RemoveItem(c *gin.Context) {
	if err := h.facade.RemoveInventoryItem(c.Request.Context(), CurrentUserID(c), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Accept handles POST /api/vendor/orders/:id/accept.
func (h *VendorHandler) Accept(c *gin.Context) {
	order, err := h.facade.AcceptOrder(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Advance handles POST /api/vendor/orders/:id/advance.
func (h *VendorHandler) Advance(c *gin.Context) {
	var req dto.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	expected := model.OrderStatus(req.CurrentStatus)
	if !expected.Valid() {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid currentStatus"})
		return
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), CurrentUserID(c), c.Param("id"), expected)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
