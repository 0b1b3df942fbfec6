package admin

import (
	"net/http"

	"equiptrack/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by the admin role middleware
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	{
		adminGroup.GET("/users", h.ListUsers)
		adminGroup.DELETE("/users/:email", h.DeleteUser)
		adminGroup.GET("/login-logs", h.ListLoginLogs)
		adminGroup.GET("/payments", h.ListPayments)
	}
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	email := c.Param("email")
	actor := c.GetString("email")

	if err := h.service.DeleteUser(c.Request.Context(), email, actor); err != nil {
		switch err {
		case ErrSelfDelete:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot delete your own account")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to delete user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": email})
}

func (h *Handler) ListLoginLogs(c *gin.Context) {
	logs, err := h.service.ListLoginLogs(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list login logs")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"login_logs": logs})
}

func (h *Handler) ListPayments(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STORE_ERROR", "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}
