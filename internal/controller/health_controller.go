package controller

import (
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Engine *engine.Engine
}

func NewHealthController(db *gorm.DB, rdb *redis.Client, eng *engine.Engine) *HealthController {
	return &HealthController{DB: db, Redis: rdb, Engine: eng}
}

// @Summary 健康检查
// @Description 检查数据库、缓存和批改后端状态；ML 后端不可用时服务降级为规则批改，不算故障
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response "数据库不可用"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 检查数据库连接
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	// 缓存和 ML 后端都可降级，状态只做展示
	redisStatus := "up"
	if c.Redis == nil {
		redisStatus = "off"
	} else if err := c.Redis.Ping(ctx.Request.Context()).Err(); err != nil {
		redisStatus = "down"
	}

	mlStatus := "off"
	if c.Engine != nil && c.Engine.MLAvailable() {
		mlStatus = "up"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
			"redis":    redisStatus,
			"ml":       mlStatus,
		},
	})
}
