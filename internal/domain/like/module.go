package like

import (
	commentrepo "social_hub/internal/domain/comment/repository"
	"social_hub/internal/domain/like/handler"
	"social_hub/internal/domain/like/repository"
	"social_hub/internal/domain/like/service"
	postrepo "social_hub/internal/domain/post/repository"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// LikeModule 点赞模块
type LikeModule struct{}

func init() {
	registry.Register(&LikeModule{})
}

func (m *LikeModule) Name() string {
	return "like"
}

func (m *LikeModule) Priority() int {
	return 10
}

func (m *LikeModule) Init(ctx *registry.ModuleContext) error {
	lRepo := repository.NewLikeRepository(ctx.DB)
	uRepo := userrepo.NewUserRepository(ctx.DB)
	pRepo := postrepo.NewPostRepository(ctx.DB)
	cRepo := commentrepo.NewCommentRepository(ctx.DB)
	lService := service.NewLikeService(lRepo, uRepo, pRepo, cRepo)
	lHandler := handler.NewLikeHandler(lService)

	setupRoutes(ctx.Router, lHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.LikeHandler) {
	g := r.Group("/likes")

	g.POST("/posts", h.TogglePostLike)
	g.POST("/comments", h.ToggleCommentLike)

	r.GET("/users/:id/likes/posts", h.GetLikedPosts)
	r.GET("/users/:id/likes/comments", h.GetLikedComments)
	r.GET("/posts/:id/likes/users", h.GetUsersWhoLikedPost)
	r.GET("/comments/:id/likes/users", h.GetUsersWhoLikedComment)
}
