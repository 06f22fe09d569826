package handler

import (
	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// TypeDefHandler 课程类型 / 修读类型配置 HTTP 处理器
type TypeDefHandler struct {
	typeDefSvc service.TypeDefService
}

// NewTypeDefHandler 创建 TypeDefHandler
func NewTypeDefHandler(typeDefSvc service.TypeDefService) *TypeDefHandler {
	return &TypeDefHandler{typeDefSvc: typeDefSvc}
}

// ListCourseTypes GET /api/v1/course-types
func (h *TypeDefHandler) ListCourseTypes(c *gin.Context) {
	list, err := h.typeDefSvc.ListCourseTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKList(c, list, len(list))
}

// ListEnrollmentTypes GET /api/v1/enrollment-types
func (h *TypeDefHandler) ListEnrollmentTypes(c *gin.Context) {
	list, err := h.typeDefSvc.ListEnrollmentTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKList(c, list, len(list))
}

// InvalidateCache 类型配置变更后清除缓存
// DELETE /api/v1/type-defs/cache
func (h *TypeDefHandler) InvalidateCache(c *gin.Context) {
	if err := h.typeDefSvc.Invalidate(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
