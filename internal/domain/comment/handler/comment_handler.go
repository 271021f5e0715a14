package handler

import (
	"fmt"
	"net/http"

	"social_hub/internal/domain/comment/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(s service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// CommentInput 创建评论输入
type CommentInput struct {
	CreatorID int32  `json:"creatorId" binding:"required"`
	PostID    int32  `json:"postId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// UpdateCommentInput 更新评论输入
type UpdateCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// CreateRootComment 创建根评论
// @Summary 创建根评论
// @Tags Comment
// @Accept json
// @Produce json
// @Param input body CommentInput true "评论内容"
// @Success 201 {object} model.Comment
// @Failure 404 {object} response.Response "帖子或作者不存在"
// @Router /comments [post]
func (h *CommentHandler) CreateRootComment(c *gin.Context) {
	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.CreateRootComment(service.CommentInput{
		CreatorID: input.CreatorID,
		PostID:    input.PostID,
		Content:   input.Content,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/comments/%d", comment.ID), comment)
}

// CreateReply 回复某条评论
// @Summary 回复评论
// @Tags Comment
// @Param id path int true "父评论ID"
// @Param input body CommentInput true "回复内容"
// @Success 201 {object} model.Comment
// @Router /comments/{id}/replies [post]
func (h *CommentHandler) CreateReply(c *gin.Context) {
	parentID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	reply, err := h.service.CreateReply(parentID, service.CommentInput{
		CreatorID: input.CreatorID,
		PostID:    input.PostID,
		Content:   input.Content,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/comments/%d", reply.ID), reply)
}

// GetComment 获取单条评论
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	comment, err := h.service.GetComment(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comment)
}

// GetRootComments 获取帖子下的根评论
func (h *CommentHandler) GetRootComments(c *gin.Context) {
	postID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetRootComments(postID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// GetReplies 获取某条评论的直接回复
func (h *CommentHandler) GetReplies(c *gin.Context) {
	parentID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	replies, err := h.service.GetReplies(parentID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, replies)
}

// GetCommentsByUser 获取某用户发表的评论
func (h *CommentHandler) GetCommentsByUser(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetCommentsByUser(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comments)
}

// UpdateComment 更新评论内容
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	comment, err := h.service.UpdateComment(id, input.Content)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论（软删除）
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}
