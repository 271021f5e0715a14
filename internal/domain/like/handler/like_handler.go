package handler

import (
	"net/http"

	"social_hub/internal/domain/like/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// LikeHandler 点赞处理器
type LikeHandler struct {
	service service.LikeService
}

func NewLikeHandler(s service.LikeService) *LikeHandler {
	return &LikeHandler{service: s}
}

// PostLikeInput 帖子点赞输入
type PostLikeInput struct {
	UserID int32 `json:"userId" binding:"required"`
	PostID int32 `json:"postId" binding:"required"`
}

// CommentLikeInput 评论点赞输入
type CommentLikeInput struct {
	UserID    int32 `json:"userId" binding:"required"`
	CommentID int32 `json:"commentId" binding:"required"`
}

// TogglePostLike 点赞/取消点赞帖子
// @Summary 翻转帖子点赞
// @Tags Like
// @Accept json
// @Produce json
// @Param input body PostLikeInput true "点赞目标"
// @Success 200 {string} string "liked / unliked"
// @Failure 404 {object} response.Response
// @Router /likes/posts [post]
func (h *LikeHandler) TogglePostLike(c *gin.Context) {
	var input PostLikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	liked, err := h.service.TogglePostLike(input.UserID, input.PostID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	msg := "unliked"
	if liked {
		msg = "liked"
	}
	response.Success(c, msg)
}

// ToggleCommentLike 点赞/取消点赞评论
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	var input CommentLikeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	liked, err := h.service.ToggleCommentLike(input.UserID, input.CommentID)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	msg := "unliked"
	if liked {
		msg = "liked"
	}
	response.Success(c, msg)
}

// GetLikedPosts 获取用户点赞过的帖子
func (h *LikeHandler) GetLikedPosts(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.service.GetLikedPosts(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}

// GetLikedComments 获取用户点赞过的评论
func (h *LikeHandler) GetLikedComments(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetLikedComments(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// GetUsersWhoLikedPost 获取给帖子点赞的用户
func (h *LikeHandler) GetUsersWhoLikedPost(c *gin.Context) {
	postID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.service.GetUsersWhoLikedPost(postID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}

// GetUsersWhoLikedComment 获取给评论点赞的用户
func (h *LikeHandler) GetUsersWhoLikedComment(c *gin.Context) {
	commentID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.service.GetUsersWhoLikedComment(commentID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}
