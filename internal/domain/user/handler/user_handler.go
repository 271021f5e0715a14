package handler

import (
	"fmt"
	"net/http"

	"social_hub/internal/domain/user/service"
	"social_hub/internal/pkg/common"
	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// UserInput 创建/更新用户输入
type UserInput struct {
	ID       int32  `json:"id"` // 更新时可选，与路径 ID 不一致则拒绝
	Name     string `json:"name" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=50"`
	Password string `json:"password" binding:"required,min=8,max=50"`
}

// CreateUser 创建用户
// @Summary 创建用户
// @Tags User
// @Accept json
// @Produce json
// @Param input body UserInput true "用户信息"
// @Success 201 {object} model.User
// @Failure 409 {object} response.Response "邮箱已存在"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.CreateUser(service.UserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, fmt.Sprintf("/users/%d", user.ID), user)
}

// GetUsers 获取所有用户
// @Summary 获取用户列表
// @Tags User
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.GetUsers()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}

// GetUser 获取单个用户
// @Summary 获取用户
// @Tags User
// @Param id path int true "用户ID"
// @Success 200 {object} model.User
// @Failure 404 {object} response.Response
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateUser 更新用户
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	// 路径和请求体里的 ID 不一致视为无效请求
	if input.ID != 0 && input.ID != id {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "id in path and body do not match")
		return
	}

	user, err := h.service.UpdateUser(id, service.UserInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

// DeleteUser 删除用户
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := common.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		response.HandleError(c, err)
		return
	}
	response.NoContent(c)
}

