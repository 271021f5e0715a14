package main

import (
	"log"
	"time"

	"social_hub/internal/pkg/config"
	"social_hub/internal/pkg/middleware"
	"social_hub/internal/pkg/registry"
	"social_hub/pkg/database"
	"social_hub/pkg/logger"
	"social_hub/pkg/metrics"

	// 模块通过 init 注册自身
	_ "social_hub/internal/domain/comment"
	_ "social_hub/internal/domain/common"
	_ "social_hub/internal/domain/follow"
	_ "social_hub/internal/domain/like"
	_ "social_hub/internal/domain/post"
	_ "social_hub/internal/domain/savedpost"
	_ "social_hub/internal/domain/tag"
	_ "social_hub/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Social Hub API
// @version 1.0
// @description 社交内容后端：帖子、评论、点赞、关注、收藏、标签
// @BasePath /
func main() {
	// 1. 配置与日志
	config.LoadConfig()
	logger.InitLogger(config.GlobalConfig.App.Debug)
	defer logger.Sync()

	// 2. 数据库
	db := database.InitDatabase()
	if sqlDB, err := db.DB(); err == nil {
		metrics.GetGlobalCollector().WatchDBPool(sqlDB, 15*time.Second)
	}

	// 3. HTTP 引擎与中间件
	gin.SetMode(config.GlobalConfig.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware(
		config.GlobalConfig.RateLimit.QPS,
		config.GlobalConfig.RateLimit.Burst,
	))
	r.Use(cors.Default())

	// 4. 初始化所有模块（依赖注入 + 路由注册）
	ctx := &registry.ModuleContext{
		DB:     db,
		Router: r,
	}
	if err := registry.InitModules(ctx); err != nil {
		log.Fatalf("Failed to initialize modules: %v", err)
	}

	// 5. 启动
	addr := ":" + config.GlobalConfig.Server.Port
	log.Printf("Server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
