package handler

import (
	"net/http"

	"social_hub/internal/domain/tag/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// TagHandler 标签处理器
type TagHandler struct {
	service service.TagService
}

func NewTagHandler(s service.TagService) *TagHandler {
	return &TagHandler{service: s}
}

// TagInput 打标签输入
type TagInput struct {
	TagName string `json:"tagName" binding:"required,min=1,max=50"`
}

// AddTagToPost 给帖子打标签
// @Summary 给帖子打标签
// @Tags Tag
// @Param id path int true "帖子ID"
// @Param input body TagInput true "标签"
// @Success 200 {string} string "success"
// @Failure 404 {object} response.Response
// @Router /posts/{id}/tags [post]
func (h *TagHandler) AddTagToPost(c *gin.Context) {
	postID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input TagInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	if err := h.service.AddTagToPost(input.TagName, postID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "success")
}

// GetTags 获取标签列表
func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.service.GetTags()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, tags)
}

// GetPostsByTagName 按标签名获取帖子
func (h *TagHandler) GetPostsByTagName(c *gin.Context) {
	tagName := c.Param("name")

	posts, err := h.service.GetPostsByTagName(tagName)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, posts)
}
