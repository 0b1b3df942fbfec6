package reservation

import (
	"net/http"
	"strconv"

	"equiptrack/internal/domain"
	"equiptrack/internal/middleware"
	"equiptrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	users   UserReader
}

func NewHandler(service *Service, users UserReader) *Handler {
	return &Handler{service: service, users: users}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", middleware.RequireRole("student", "teacher"), h.Create)
	rg.GET("/reservations", h.List)
	rg.DELETE("/reservations/:id", h.Cancel)
	rg.POST("/reservations/process/:equipmentID", middleware.AdminOnly(), h.ProcessQueue)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	email := c.GetString("email")
	role := domain.UserRole(c.GetString("role"))

	// entitlement is read from the store now, not from the token: a
	// subscription bought after login must count immediately
	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to load requester")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req.EquipmentID, email, role, user.SubscriptionActive)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation request")
		case ErrEquipmentNotFound:
			response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create reservation")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) List(c *gin.Context) {
	email := c.GetString("email")
	role := domain.UserRole(c.GetString("role"))

	rows, err := h.service.List(c.Request.Context(), email, role)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list reservations")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": rows})
}

func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation id")
		return
	}

	email := c.GetString("email")
	role := domain.UserRole(c.GetString("role"))

	if err := h.service.Cancel(c.Request.Context(), id, email, role); err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "RESERVATION_NOT_FOUND", "Reservation does not exist")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only cancel your own reservations")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to cancel reservation")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": id})
}

func (h *Handler) ProcessQueue(c *gin.Context) {
	equipmentID, err := strconv.ParseInt(c.Param("equipmentID"), 10, 64)
	if err != nil || equipmentID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment id")
		return
	}

	result, err := h.service.ProcessQueue(c.Request.Context(), equipmentID)
	if err != nil {
		switch err {
		case ErrEquipmentNotFound:
			response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to process queue")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}
