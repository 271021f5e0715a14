package user

import (
	"social_hub/internal/domain/user/handler"
	"social_hub/internal/domain/user/repository"
	"social_hub/internal/domain/user/service"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// UserModule 用户模块
type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	return 1
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	// 1. 依赖注入
	uRepo := repository.NewUserRepository(ctx.DB)
	uService := service.NewUserService(uRepo)
	uHandler := handler.NewUserHandler(uService)

	// 2. 路由注册
	setupRoutes(ctx.Router, uHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	g := r.Group("/users")

	g.POST("", h.CreateUser)
	g.GET("", h.GetUsers)
	g.GET("/:id", h.GetUser)
	g.PUT("/:id", h.UpdateUser)
	g.DELETE("/:id", h.DeleteUser)
}
