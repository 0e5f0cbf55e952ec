package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/arganshop/backend/internal/infrastructure/persistence"
	"github.com/arganshop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and system API endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	name      string
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, name, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		name:      name,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health reports liveness and database reachability. A failing database
// check returns 503 so load balancers stop routing here.
func (h *SystemHandler) Health(c *gin.Context) {
	response := HealthResponse{Status: "ok", Database: "ok"}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		response.Status = "degraded"
		response.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, dto.NewSuccessResponse(response))
		return
	}

	h.Success(c, response)
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks that the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// InfoResponse represents the system information response
type InfoResponse struct {
	Name      string                      `json:"name"`
	Version   string                      `json:"version"`
	GoVersion string                      `json:"go_version"`
	Uptime    string                      `json:"uptime"`
	Database  persistence.ConnectionStats `json:"database"`
}

// Info returns service identity, uptime and connection pool stats
func (h *SystemHandler) Info(c *gin.Context) {
	stats, err := h.db.Stats()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, InfoResponse{
		Name:      h.name,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Database:  stats,
	})
}
