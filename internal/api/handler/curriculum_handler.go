package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/curriculum"
	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

// CurriculumHandler 课程体系模块 HTTP 处理器
type CurriculumHandler struct {
	curriculumSvc service.CurriculumService
}

// NewCurriculumHandler 创建 CurriculumHandler
func NewCurriculumHandler(curriculumSvc service.CurriculumService) *CurriculumHandler {
	return &CurriculumHandler{curriculumSvc: curriculumSvc}
}

// GetCurriculum 获取课程体系（未建档时返回默认学期的空课程体系）
// GET /api/v1/curricula?program=&academic_year=&batch=&section=&academic_system=
func (h *CurriculumHandler) GetCurriculum(c *gin.Context) {
	var q dto.CurriculumQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	result, err := h.curriculumSvc.Get(c.Request.Context(), &q)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// SaveCurriculum 整体保存（全量覆盖）
// PUT /api/v1/curricula
func (h *CurriculumHandler) SaveCurriculum(c *gin.Context) {
	var req dto.SaveCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.Save(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// AddCourses 向指定学期分组批量添加课程，重复项跳过
// POST /api/v1/curricula/courses
func (h *CurriculumHandler) AddCourses(c *gin.Context) {
	var req dto.AddCoursesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.AddCourses(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// AddCluster 添加课组
// POST /api/v1/curricula/clusters
func (h *CurriculumHandler) AddCluster(c *gin.Context) {
	var req dto.AddClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.AddCluster(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateEntry 编辑课程学分或课组上下限
// PATCH /api/v1/curricula/entries
func (h *CurriculumHandler) UpdateEntry(c *gin.Context) {
	var req dto.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.UpdateEntry(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// RemoveEntry 删除分组内的单个条目
// DELETE /api/v1/curricula/entries
func (h *CurriculumHandler) RemoveEntry(c *gin.Context) {
	var req dto.RemoveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.RemoveEntry(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// AddTerm 追加一个学期
// POST /api/v1/curricula/terms
func (h *CurriculumHandler) AddTerm(c *gin.Context) {
	var req dto.AddTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.AddTerm(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.Created(c, result)
}

// RemoveTerms 批量删除追加的学期及其全部条目；含默认学期时整体拒绝
// DELETE /api/v1/curricula/terms
func (h *CurriculumHandler) RemoveTerms(c *gin.Context) {
	var req dto.RemoveTermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.RemoveTerms(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// MigrateCourseTypes 将旧数据推断出的课程类型写回存储
// POST /api/v1/curricula/migrate-course-types
func (h *CurriculumHandler) MigrateCourseTypes(c *gin.Context) {
	var req dto.MigrateCourseTypesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.curriculumSvc.MigrateCourseTypes(c.Request.Context(), &req, callerID)
	if err != nil {
		handleCurriculumError(c, err)
		return
	}

	response.OK(c, result)
}

// handleCurriculumError 将课程体系业务错误映射为 HTTP 响应（15xxx）
func handleCurriculumError(c *gin.Context, err error) {
	var restricted *curriculum.RestrictedTermsError
	var invalid *service.ValidationError

	switch {
	case errors.As(err, &restricted):
		response.BadRequestWithData(c, 15007, "默认学期不可删除", gin.H{"restricted_terms": restricted.Terms})
	case errors.Is(err, service.ErrClusterBoundsInvalid):
		if errors.As(err, &invalid) {
			response.BadRequestWithData(c, 15006, "课组选课数上下限无效", invalid.Details)
			return
		}
		response.BadRequest(c, 15006, "课组选课数上下限无效")
	case errors.As(err, &invalid):
		response.BadRequestWithData(c, 15001, "参数校验失败", invalid.Details)
	case errors.Is(err, service.ErrInvalidInput):
		response.BadRequestWithDetails(c, 15001, "参数校验失败", err.Error())
	case errors.Is(err, service.ErrCurriculumScopeInvalid):
		response.BadRequestWithDetails(c, 15002, "编辑范围不完整", err.Error())
	case errors.Is(err, service.ErrAcademicSystemInvalid):
		response.BadRequest(c, 15003, "学制无效")
	case errors.Is(err, service.ErrSemesterInvalid):
		response.BadRequestWithDetails(c, 15004, "学期与当前学制不符", err.Error())
	case errors.Is(err, service.ErrAxisValueInvalid):
		response.BadRequestWithDetails(c, 15005, "分组取值未配置或已停用", err.Error())
	case errors.Is(err, service.ErrCurriculumNotFound):
		response.NotFound(c, 15101, "课程体系不存在")
	case errors.Is(err, service.ErrEntryNotFound):
		response.NotFound(c, 15102, "条目不存在")
	case errors.Is(err, service.ErrCourseNotFound):
		response.ErrorWithDetails(c, http.StatusNotFound, 15103, "课程不存在", err.Error())
	case errors.Is(err, service.ErrEntryDuplicate):
		response.ConflictWithDetails(c, 15201, "同一分组内已存在同名条目", err.Error())
	default:
		response.InternalError(c)
	}
}
