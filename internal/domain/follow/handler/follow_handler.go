package handler

import (
	"social_hub/internal/domain/follow/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// FollowHandler 关注处理器
type FollowHandler struct {
	service service.FollowService
}

func NewFollowHandler(s service.FollowService) *FollowHandler {
	return &FollowHandler{service: s}
}

// FollowUser 关注用户
// @Summary 关注用户
// @Tags Follow
// @Param id path int true "关注者ID"
// @Param followeeId path int true "被关注者ID"
// @Success 200 {string} string "success"
// @Failure 404 {object} response.Response
// @Router /users/{id}/following/{followeeId} [post]
func (h *FollowHandler) FollowUser(c *gin.Context) {
	followerID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}
	followeeID, ok := common.ParseIDParam(c, "followeeId")
	if !ok {
		return
	}

	if err := h.service.FollowUser(followerID, followeeID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, "success")
}

// UnfollowUser 取消关注
func (h *FollowHandler) UnfollowUser(c *gin.Context) {
	followerID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}
	followeeID, ok := common.ParseIDParam(c, "followeeId")
	if !ok {
		return
	}

	if err := h.service.UnfollowUser(followerID, followeeID); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}

// GetFollowers 获取粉丝列表
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.service.GetFollowers(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}

// GetFollowing 获取关注列表
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	userID, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	users, err := h.service.GetFollowing(userID)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}
