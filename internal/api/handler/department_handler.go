package handler

import (
	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// DepartmentHandler 院系查询 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments 获取启用的院系列表（编辑范围下拉框）
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	depts, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, depts, len(depts))
}
