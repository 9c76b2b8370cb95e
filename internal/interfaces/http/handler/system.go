package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/dto"
)

// SystemHandler handles health and system information endpoints.
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	pingDB    func() error
}

// NewSystemHandler creates a new SystemHandler. pingDB may be nil when
// no database health check is wanted.
func NewSystemHandler(pingDB func() error) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		pingDB:    pingDB,
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/info", h.GetSystemInfo)
		system.GET("/health", h.Health)
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "VAT Audit API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// Health reports service liveness, including database reachability when
// a ping function is wired.
func (h *SystemHandler) Health(c *gin.Context) {
	if h.pingDB != nil {
		if err := h.pingDB(); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrCodeInternal, "database unreachable"))
			return
		}
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
}
