package comment

import (
	"social_hub/internal/domain/comment/handler"
	"social_hub/internal/domain/comment/repository"
	"social_hub/internal/domain/comment/service"
	postrepo "social_hub/internal/domain/post/repository"
	userrepo "social_hub/internal/domain/user/repository"
	"social_hub/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// CommentModule 评论模块
type CommentModule struct{}

func init() {
	registry.Register(&CommentModule{})
}

func (m *CommentModule) Name() string {
	return "comment"
}

func (m *CommentModule) Priority() int {
	return 3
}

func (m *CommentModule) Init(ctx *registry.ModuleContext) error {
	cRepo := repository.NewCommentRepository(ctx.DB)
	pRepo := postrepo.NewPostRepository(ctx.DB)
	uRepo := userrepo.NewUserRepository(ctx.DB)
	cService := service.NewCommentService(cRepo, pRepo, uRepo)
	cHandler := handler.NewCommentHandler(cService)

	setupRoutes(ctx.Router, cHandler)

	return nil
}

func setupRoutes(r *gin.Engine, h *handler.CommentHandler) {
	g := r.Group("/comments")

	g.POST("", h.CreateRootComment)
	g.POST("/:id/replies", h.CreateReply)
	g.GET("/:id", h.GetComment)
	g.GET("/:id/replies", h.GetReplies)
	g.PUT("/:id", h.UpdateComment)
	g.DELETE("/:id", h.DeleteComment)

	r.GET("/posts/:id/comments", h.GetRootComments)
	r.GET("/users/:id/comments", h.GetCommentsByUser)
}
