package tag

import (
	postrepo "social_hub/internal/domain/post/repository"
	"social_hub/internal/domain/tag/handler"
	"social_hub/internal/domain/tag/repository"
	"social_hub/internal/domain/tag/service"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// TagModule 标签模块
type TagModule struct{}

func init() {
	registry.Register(&TagModule{})
}

func (m *TagModule) Name() string {
	return "tag"
}

func (m *TagModule) Priority() int {
	return 13
}

func (m *TagModule) Init(ctx *registry.ModuleContext) error {
	tRepo := repository.NewTagRepository(ctx.DB)
	pRepo := postrepo.NewPostRepository(ctx.DB)
	tService := service.NewTagService(tRepo, pRepo)
	tHandler := handler.NewTagHandler(tService)

	setupRoutes(ctx.Router, tHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.TagHandler) {
	g := r.Group("/tags")

	g.GET("", h.GetTags)
	g.GET("/:name/posts", h.GetPostsByTagName)

	r.POST("/posts/:id/tags", h.AddTagToPost)
}
