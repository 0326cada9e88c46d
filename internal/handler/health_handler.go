package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthDBTimeout = 2 * time.Second

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	response := HealthResponse{Status: "ok", Database: "ok"}

	if !h.pingDatabase(c.Request.Context()) {
		status = http.StatusInternalServerError
		response.Status = "down"
		response.Database = "down"
	}

	c.JSON(status, response)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) bool {
	if h.db == nil {
		return false
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return false
	}

	// Avoid hanging health checks if the database stalls.
	timeoutCtx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()
	return sqlDB.PingContext(timeoutCtx) == nil
}
