package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"slcm-curriculum/internal/dto"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response。
// Excel 格式：首个 Sheet 为概览，之后每个可见学期一个 Sheet，按分组逐行列出课程与课组。
type ExportService interface {
	ExportCurriculum(ctx context.Context, q *dto.CurriculumQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	curricula CurriculumService
	logger    *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(curricula CurriculumService, logger *zap.Logger) ExportService {
	return &exportService{curricula: curricula, logger: logger}
}

var exportHeaders = []string{"分组轴", "分组", "类型", "课程 / 课组", "课程名称", "院系", "学分", "最少选课", "最多选课", "修读类型"}

// ═══════════════════════════════════════════════════════════
// ExportCurriculum — 导出课程体系为 Excel
// ═══════════════════════════════════════════════════════════
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error

func (s *exportService) ExportCurriculum(ctx context.Context, q *dto.CurriculumQuery) (*bytes.Buffer, string, error) {
	cur, err := s.curricula.Get(ctx, q)
	if err != nil {
		return nil, "", err
	}
	if !cur.Exists {
		return nil, "", ErrCurriculumNotFound
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 1. 概览
	overview := "概览"
	f.SetSheetName("Sheet1", overview)
	f.SetColWidth(overview, "A", "A", 16)
	f.SetColWidth(overview, "B", "B", 36)
	summary := [][2]interface{}{
		{"院系", cur.Department},
		{"专业", cur.Program},
		{"学年", cur.AcademicYear},
		{"批次", cur.Batch},
		{"班级", cur.Section},
		{"学制", cur.AcademicSystem},
		{"条目数", len(cur.CurriculumCourses)},
	}
	for i, kv := range summary {
		f.SetCellValue(overview, cell("A", i+1), kv[0])
		f.SetCellValue(overview, cell("B", i+1), kv[1])
	}
	f.SetCellStyle(overview, "A1", cell("A", len(summary)), headerStyle)

	// 2. 每个学期一个 Sheet
	for _, term := range cur.Terms {
		sheet := term.Label
		if _, err := f.NewSheet(sheet); err != nil {
			s.logger.Error("创建 Sheet 失败", zap.String("sheet", sheet), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
		for i, h := range exportHeaders {
			f.SetCellValue(sheet, cell(colName(i), 1), h)
		}
		f.SetCellStyle(sheet, "A1", cell(colName(len(exportHeaders)-1), 1), headerStyle)
		f.SetColWidth(sheet, "A", "B", 18)
		f.SetColWidth(sheet, "D", "F", 24)

		row := 2
		for _, sections := range [][]dto.SectionView{term.CourseTypeSections, term.EnrollmentSections} {
			for _, sec := range sections {
				for _, e := range sec.Courses {
					writeEntryRow(f, sheet, row, sec, e)
					row++
				}
				for _, e := range sec.Clusters {
					writeEntryRow(f, sheet, row, sec, e)
					row++
				}
			}
		}
		f.SetCellValue(sheet, cell("F", row), "合计学分")
		f.SetCellValue(sheet, cell("G", row), term.Credits)
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("课程体系_%s.xlsx", strings.Join(nonEmpty(cur.Program, cur.AcademicYear, cur.Batch, cur.Section), "_"))
	return buf, filename, nil
}

// ── 辅助函数 ──

func writeEntryRow(f *excelize.File, sheet string, row int, sec dto.SectionView, e dto.EntryView) {
	axis := "课程类型"
	if sec.Axis == "enrollment_type" {
		axis = "修读类型"
	}
	f.SetCellValue(sheet, cell("A", row), axis)
	f.SetCellValue(sheet, cell("B", row), sec.DisplayName)
	if e.EntryKind == "Cluster" {
		f.SetCellValue(sheet, cell("C", row), "课组")
		f.SetCellValue(sheet, cell("D", row), e.ClusterName)
		f.SetCellValue(sheet, cell("H", row), e.MinCourses)
		f.SetCellValue(sheet, cell("I", row), e.MaxCourses)
	} else {
		f.SetCellValue(sheet, cell("C", row), "课程")
		f.SetCellValue(sheet, cell("D", row), e.Course)
		f.SetCellValue(sheet, cell("E", row), e.CourseName)
		f.SetCellValue(sheet, cell("F", row), e.Department)
		f.SetCellValue(sheet, cell("G", row), e.Credits)
	}
	if e.ShowBadge {
		f.SetCellValue(sheet, cell("J", row), e.EnrollmentType)
	}
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
