package handlers

import (
	"net/http"
	"sync/atomic"

	config "vita-path-api/configs"

	"github.com/gin-gonic/gin"
)

// isMaintenanceMode flags whether the server is in maintenance mode.
var isMaintenanceMode atomic.Bool

// AdminHandler serves the operator endpoints.
type AdminHandler struct {
	adminUsername string
	adminPassword string
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		adminUsername: cfg.AdminUsername,
		adminPassword: cfg.AdminPassword,
	}
}

// AdminCredentials is the request body for maintenance operations.
type AdminCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) authorize(c *gin.Context) bool {
	var input AdminCredentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return false
	}
	if input.Username != h.adminUsername || input.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return false
	}
	return true
}

// StartMaintenance puts the server into maintenance mode.
func (h *AdminHandler) StartMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	isMaintenanceMode.Store(true)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode started"})
}

// StopMaintenance takes the server out of maintenance mode.
func (h *AdminHandler) StopMaintenance(c *gin.Context) {
	if !h.authorize(c) {
		return
	}
	isMaintenanceMode.Store(false)
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance mode stopped"})
}

// GetHealthStatus reports the current maintenance state.
func (h *AdminHandler) GetHealthStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isMaintenanceMode": isMaintenanceMode.Load()})
}

// HealthCheck answers external health probes, honoring maintenance mode.
func HealthCheck(c *gin.Context) {
	if isMaintenanceMode.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "message": "Server is in maintenance mode"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "Vita Path API"})
}
