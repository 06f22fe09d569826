package handler

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/pkg/database"
)

// Pinger 可探活的外部依赖（*redis.Client 实现）
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler 健康检查：数据库不可用时 503，Redis 不可用仅降级
type HealthHandler struct {
	pingDB           func(ctx context.Context) error
	migrationVersion func(ctx context.Context) (uint, bool, error)
	redis            Pinger
}

// NewHealthHandler 创建 HealthHandler；rdb 为 nil 表示未启用 Redis
func NewHealthHandler(db *sql.DB, rdb Pinger) *HealthHandler {
	return &HealthHandler{
		pingDB:           db.PingContext,
		migrationVersion: func(ctx context.Context) (uint, bool, error) { return database.MigrationVersion(ctx, db) },
		redis:            rdb,
	}
}

// Check GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Redis: "disabled"}
	status := http.StatusOK

	if err := h.pingDB(ctx); err != nil {
		resp.Status, resp.Database = "down", "down"
		status = http.StatusServiceUnavailable
	} else if v, dirty, err := h.migrationVersion(ctx); err == nil {
		resp.MigrationVersion, resp.MigrationDirty = v, dirty
	}

	if h.redis != nil {
		resp.Redis = "ok"
		if err := h.redis.Ping(ctx); err != nil {
			resp.Redis = "down"
			if status == http.StatusOK {
				resp.Status = "degraded"
			}
		}
	}

	c.JSON(status, resp)
}
