package response

import (
	"errors"
	"net/http"

	"social_hub/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`    // 业务码
	Message string      `json:"message"` // 提示信息
	Data    interface{} `json:"data"`    // 数据
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应，带 Location 头
func Created(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, Response{
		Code:    CodeSuccess,
		Message: "created",
		Data:    data,
	})
}

// NoContent 删除成功响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, msg string) {
	c.JSON(httpCode, Response{
		Code:    errCode,
		Message: msg,
		Data:    nil,
	})
}

// HandleError 把领域错误映射为 HTTP 响应
//
//	NotFound            -> 404
//	DuplicateEmail      -> 409
//	其余（RepositoryError 及未分类）-> 500
func HandleError(c *gin.Context, err error) {
	var nf *apperrors.NotFoundError
	if errors.As(err, &nf) {
		Error(c, http.StatusNotFound, notFoundCode(nf.Entity), nf.Error())
		return
	}
	if errors.Is(err, apperrors.ErrDuplicateEmail) {
		Error(c, http.StatusConflict, ErrDuplicateEmail, err.Error())
		return
	}
	Error(c, http.StatusInternalServerError, ErrServerInternal, err.Error())
}

func notFoundCode(entity string) int {
	switch entity {
	case apperrors.EntityPost:
		return ErrPostNotFound
	case apperrors.EntityComment:
		return ErrCommentNotFound
	default:
		return ErrUserNotFound
	}
}
