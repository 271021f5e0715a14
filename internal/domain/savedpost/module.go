package savedpost

import (
	postrepo "social_hub/internal/domain/post/repository"
	"social_hub/internal/domain/savedpost/handler"
	"social_hub/internal/domain/savedpost/repository"
	"social_hub/internal/domain/savedpost/service"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// SavedPostModule 收藏模块
type SavedPostModule struct{}

func init() {
	registry.Register(&SavedPostModule{})
}

func (m *SavedPostModule) Name() string {
	return "savedpost"
}

func (m *SavedPostModule) Priority() int {
	return 12
}

func (m *SavedPostModule) Init(ctx *registry.ModuleContext) error {
	sRepo := repository.NewSavedPostRepository(ctx.DB)
	uRepo := userrepo.NewUserRepository(ctx.DB)
	pRepo := postrepo.NewPostRepository(ctx.DB)
	sService := service.NewSavedPostService(sRepo, uRepo, pRepo)
	sHandler := handler.NewSavedPostHandler(sService)

	setupRoutes(ctx.Router, sHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.SavedPostHandler) {
	r.GET("/users/:id/saved-posts", h.GetSavedPosts)
	r.POST("/users/:id/saved-posts", h.SavePost)
	r.DELETE("/users/:id/saved-posts/:postId", h.UnsavePost)
}
