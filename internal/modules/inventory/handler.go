package inventory

import (
	"net/http"

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
	rg.GET("/equipment", h.List)
	rg.POST("/equipment", middleware.RequireRole("teacher", "admin"), h.Create)
	rg.DELETE("/equipment/:serial", middleware.AdminOnly(), h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid equipment fields")
		case ErrSerialExists:
			response.Error(c, http.StatusConflict, "SERIAL_EXISTS", "Serial number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to create equipment")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"equipment": e})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list equipment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"equipment": items})
}

func (h *Handler) Delete(c *gin.Context) {
	serial := c.Param("serial")

	if err := h.service.DeleteBySerial(c.Request.Context(), serial); err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid serial number")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "EQUIPMENT_NOT_FOUND", "Equipment does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete equipment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": serial})
}
