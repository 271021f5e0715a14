package handler

import (
	"fmt"
	"net/http"

	"social_hub/internal/domain/post/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// PostHandler 帖子处理器
type PostHandler struct {
	service service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{service: s}
}

// PostInput 创建/更新帖子输入
type PostInput struct {
	ID        int32  `json:"id"` // 更新时可选，与路径 ID 不一致则拒绝
	CreatorID int32  `json:"creatorId" binding:"required"`
	Title     string `json:"title" binding:"required,max=200"`
	Content   string `json:"content" binding:"required"`
}

// CreatePost 创建帖子
// @Summary 创建帖子
// @Tags Post
// @Accept json
// @Produce json
// @Param input body PostInput true "帖子内容"
// @Success 201 {object} model.Post
// @Failure 404 {object} response.Response "作者不存在"
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	post, err := h.service.CreatePost(service.PostInput{
		CreatorID: input.CreatorID,
		Title:     input.Title,
		Content:   input.Content,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/posts/%d", post.ID), post)
}

// GetPosts 获取帖子列表
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.service.GetPosts()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost 获取单个帖子
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.service.GetPost(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

// GetPostsByUser 获取某用户的帖子
// @Summary 获取某用户的帖子
// @Tags Post
// @Param id path int true "用户ID"
// @Success 200 {array} model.Post
// @Failure 404 {object} response.Response
// @Router /users/{id}/posts [get]
func (h *PostHandler) GetPostsByUser(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	posts, err := h.service.GetPostsByUser(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}

// UpdatePost 更新帖子
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	if input.ID != 0 && input.ID != id {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "id in path and body do not match")
		return
	}

	post, err := h.service.UpdatePost(id, service.PostInput{
		CreatorID: input.CreatorID,
		Title:     input.Title,
		Content:   input.Content,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost 删除帖子
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePost(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}
