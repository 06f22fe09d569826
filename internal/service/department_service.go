package service

import (
	"context"

	"go.uber.org/zap"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/repository"
)

// DepartmentService 院系查询接口
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("列出院系失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, dto.DepartmentResponse{
			ID:          depts[i].DepartmentID,
			Name:        depts[i].Name,
			Description: depts[i].Description,
		})
	}
	return result, nil
}
