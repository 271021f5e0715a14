package post

import (
	"social_hub/internal/domain/post/handler"
	"social_hub/internal/domain/post/repository"
	"social_hub/internal/domain/post/service"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// PostModule 帖子模块
type PostModule struct{}

func init() {
	registry.Register(&PostModule{})
}

func (m *PostModule) Name() string {
	return "post"
}

func (m *PostModule) Priority() int {
	return 2
}

func (m *PostModule) Init(ctx *registry.ModuleContext) error {
	pRepo := repository.NewPostRepository(ctx.DB)
	uRepo := userrepo.NewUserRepository(ctx.DB)
	pService := service.NewPostService(pRepo, uRepo)
	pHandler := handler.NewPostHandler(pService)

	setupRoutes(ctx.Router, pHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.PostHandler) {
	g := r.Group("/posts")

	g.POST("", h.CreatePost)
	g.GET("", h.GetPosts)
	g.GET("/:id", h.GetPost)
	g.PUT("/:id", h.UpdatePost)
	g.DELETE("/:id", h.DeletePost)

	r.GET("/users/:id/posts", h.GetPostsByUser)
}
