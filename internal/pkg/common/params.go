package common

import (
	"net/http"
	"strconv"

	"social_hub/pkg/response"

	"github.com/gin-gonic/gin"
)

// ParseIDParam 解析路径中的 32 位整数 ID，失败时直接写出 400
func ParseIDParam(c *gin.Context, name string) (int32, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "invalid id: "+raw)
		return 0, false
	}
	return int32(id), true
}
