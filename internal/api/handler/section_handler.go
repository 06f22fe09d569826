package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// SectionHandler 班级信息 HTTP 处理器
type SectionHandler struct {
	sectionSvc service.SectionService
}

// NewSectionHandler 创建 SectionHandler
func NewSectionHandler(sectionSvc service.SectionService) *SectionHandler {
	return &SectionHandler{sectionSvc: sectionSvc}
}

// GetDetails 按班级名返回院系、专业、学年与批次
// GET /api/v1/sections/:name/details
func (h *SectionHandler) GetDetails(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		response.BadRequest(c, 10001, "班级名不能为空")
		return
	}

	details, err := h.sectionSvc.GetDetails(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			response.NotFound(c, 15104, "班级不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, details)
}
