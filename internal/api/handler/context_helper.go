package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	uid := c.GetString("user_id")
	if uid == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return uid, true
}

// respondBindError 查询参数绑定失败：能定位到字段时附带字段级详情
func respondBindError(c *gin.Context, err error) {
	var invalid *service.ValidationError
	if errors.As(service.BindingError(err), &invalid) {
		response.BadRequestWithData(c, 10001, "参数校验失败", invalid.Details)
		return
	}
	response.BadRequest(c, 10001, "参数校验失败")
}
