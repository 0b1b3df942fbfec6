package payment

import (
	"net/http"

	"equiptrack/internal/domain"
	"equiptrack/internal/middleware"
	"equiptrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscription/payment", middleware.RequireRole("student"), h.Pay)
}

func (h *Handler) Pay(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	email := c.GetString("email")
	role := domain.UserRole(c.GetString("role"))

	rec, err := h.service.Subscribe(c.Request.Context(), email, role, req)
	if err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only students can buy a subscription")
		case ErrAlreadyEntitled:
			response.Error(c, http.StatusConflict, "ALREADY_ENTITLED", "Subscription is already active")
		case ErrInvalidCard:
			response.Error(c, http.StatusBadRequest, "INVALID_CARD", "Card number is invalid")
		case ErrInvalidFormat:
			response.Error(c, http.StatusBadRequest, "INVALID_EXPIRY_FORMAT", "Expiry must be MM/YY")
		case ErrExpiredCard:
			response.Error(c, http.StatusBadRequest, "CARD_EXPIRED", "Card is expired")
		case ErrInvalidCvv:
			response.Error(c, http.StatusBadRequest, "INVALID_CVV", "CVV must be 3 digits")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to process payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"payment": gin.H{
			"reference": rec.Reference,
			"amount":    rec.Amount,
			"paid_at":   rec.PaidAt,
		},
	})
}
