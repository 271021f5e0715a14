package follow

import (
	"social_hub/internal/domain/follow/handler"
	"social_hub/internal/domain/follow/repository"
	"social_hub/internal/domain/follow/service"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// FollowModule 关注模块
type FollowModule struct{}

func init() {
	registry.Register(&FollowModule{})
}

func (m *FollowModule) Name() string {
	return "follow"
}

func (m *FollowModule) Priority() int {
	return 11
}

func (m *FollowModule) Init(ctx *registry.ModuleContext) error {
	fRepo := repository.NewFollowRepository(ctx.DB)
	uRepo := userrepo.NewUserRepository(ctx.DB)
	fService := service.NewFollowService(fRepo, uRepo)
	fHandler := handler.NewFollowHandler(fService)

	setupRoutes(ctx.Router, fHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.FollowHandler) {
	r.POST("/users/:id/following/:followeeId", h.FollowUser)
	r.DELETE("/users/:id/following/:followeeId", h.UnfollowUser)
	r.GET("/users/:id/followers", h.GetFollowers)
	r.GET("/users/:id/following", h.GetFollowing)
}
