package handler

import (
	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// CourseHandler 课程主数据 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 搜索课程（默认仅启用课程）
// GET /api/v1/courses?status=&department=&name=
func (h *CourseHandler) ListCourses(c *gin.Context) {
	var req dto.CourseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	courses, err := h.courseSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKList(c, courses, len(courses))
}
