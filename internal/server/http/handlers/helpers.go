package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/avoandes/avomarket/internal/domain/errors"
	"github.com/avoandes/avomarket/internal/domain/model"
	"github.com/avoandes/avomarket/internal/server/http/dto"
	"github.com/avoandes/avomarket/internal/server/http/middleware"
	"github.com/avoandes/avomarket/internal/usecase"
)

const dateLayout = "2006-01-02"

// CurrentUserID extracts the authenticated account identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// CurrentRole extracts the authenticated account role from context.
func CurrentRole(c *gin.Context) model.Role {
	val, ok := c.Get(middleware.RoleContextKey)
	if !ok {
		return ""
	}
	role, _ := val.(model.Role)
	return role
}

// writeDomainError translates a domain error into an HTTP status with a
// JSON error body.
func writeDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Role:        string(user.Role),
		Email:       user.Email,
		Name:        user.Name,
		Location:    user.Location,
		ContactInfo: user.ContactInfo,
		CompanyName: user.CompanyName,
		ContactName: user.ContactName,
		Phone:       user.Phone,
		Address:     user.Address,
	}
}

func toItemResponse(item model.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:            item.ID,
		VendorID:      item.VendorID,
		VendorName:    item.VendorName,
		Type:          string(item.Type),
		Caliber:       string(item.Caliber),
		QuantityBoxes: item.QuantityBoxes,
		PricePerBox:   item.PricePerBox,
		Location:      item.Location,
		HarvestDate:   item.HarvestDate.Format(dateLayout),
	}
}

func toItemResponses(items []model.InventoryItem) []dto.InventoryItemResponse {
	response := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	response := dto.OrderResponse{
		ID:               order.ID,
		BuyerID:          order.BuyerID,
		BuyerName:        order.BuyerName,
		Type:             string(order.Type),
		Caliber:          string(order.Caliber),
		QuantityBoxes:    order.QuantityBoxes,
		OrderDate:        order.OrderDate.Format(dateLayout),
		TotalAmount:      order.TotalAmount,
		Status:           string(order.Status),
		AcceptedVendorID: order.AcceptedVendorID,
	}
	if order.Item != nil {
		item := toItemResponse(*order.Item)
		response.Item = &item
	}
	return response
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, toOrderResponse(order))
	}
	return response
}

func toDashboardResponse(buckets usecase.StatusBuckets) dto.DashboardResponse {
	return dto.DashboardResponse{
		Pending:        toOrderResponses(buckets.Pending),
		Accepted:       toOrderResponses(buckets.Accepted),
		OutForDelivery: toOrderResponses(buckets.OutForDelivery),
		Delivered:      toOrderResponses(buckets.Delivered),
		InProgress:     buckets.InProgress(),
	}
}
