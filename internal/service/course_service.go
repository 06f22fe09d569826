package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/repository"
)

// CourseService 课程主数据查询（添加课程时的搜索来源）
type CourseService interface {
	List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	limit  int
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例；limit 为单次返回上限
func NewCourseService(repo *repository.Repository, limit int, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, limit: limit, logger: logger}
}

func (s *courseService) List(ctx context.Context, req *dto.CourseListRequest) ([]dto.CourseResponse, error) {
	status := req.Status
	if status == "" {
		status = "active"
	}

	courses, err := s.repo.Course.List(ctx, repository.CourseFilter{
		Status:     status,
		Department: strings.TrimSpace(req.Department),
		NameLike:   strings.TrimSpace(req.Name),
		Limit:      s.limit,
	})
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, dto.CourseResponse{
			Identity:    c.Code,
			Code:        c.Code,
			Name:        c.Name,
			Department:  c.Department,
			CreditValue: c.CreditValue,
			Status:      c.Status,
		})
	}
	return result, nil
}
