package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportCurriculum 导出课程体系为 Excel
// GET /api/v1/export/curriculum?program=&academic_year=&batch=&section=
func (h *ExportHandler) ExportCurriculum(c *gin.Context) {
	var q dto.CurriculumQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		handleCurriculumError(c, service.BindingError(err))
		return
	}

	buf, filename, err := h.exportSvc.ExportCurriculum(c.Request.Context(), &q)
	if err != nil {
		if errors.Is(err, service.ErrExportGenerateFail) {
			response.InternalError(c)
			return
		}
		handleCurriculumError(c, err)
		return
	}

	// 设置下载响应头
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
