package handler

import (
	"net/http"

	"social_hub/internal/domain/savedpost/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// SavedPostHandler 收藏处理器
type SavedPostHandler struct {
	service service.SavedPostService
}

func NewSavedPostHandler(s service.SavedPostService) *SavedPostHandler {
	return &SavedPostHandler{service: s}
}

// SavePostInput 收藏输入
type SavePostInput struct {
	PostID int32 `json:"postId" binding:"required"`
}

// SavePost 收藏帖子
// @Summary 收藏帖子
// @Tags SavedPost
// @Param id path int true "用户ID"
// @Param input body SavePostInput true "帖子"
// @Success 200 {string} string "success"
// @Failure 404 {object} response.Response
// @Router /users/{id}/saved-posts [post]
func (h *SavedPostHandler) SavePost(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input SavePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.SavePost(userID, input.PostID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "success")
}

// UnsavePost 取消收藏
func (h *SavedPostHandler) UnsavePost(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}
	postID, ok := common.ParseIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.service.UnsavePost(userID, postID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}

// GetSavedPosts 获取用户收藏的帖子
func (h *SavedPostHandler) GetSavedPosts(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.service.GetSavedPosts(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}
