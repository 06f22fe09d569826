package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/repository"
)

// ErrSectionNotFound 班级不存在
var ErrSectionNotFound = errors.New("班级不存在")

// SectionService 班级信息查询
type SectionService interface {
	// GetDetails 返回班级所属的院系、专业、学年与批次，用于自动填充编辑范围
	GetDetails(ctx context.Context, name string) (*dto.SectionDetailsResponse, error)
}

type sectionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSectionService 创建 SectionService 实例
func NewSectionService(repo *repository.Repository, logger *zap.Logger) SectionService {
	return &sectionService{repo: repo, logger: logger}
}

func (s *sectionService) GetDetails(ctx context.Context, name string) (*dto.SectionDetailsResponse, error) {
	section, err := s.repo.Section.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		s.logger.Error("查询班级失败", zap.String("section", name), zap.Error(err))
		return nil, err
	}

	return &dto.SectionDetailsResponse{
		Section:      section.Name,
		Department:   section.Department,
		Program:      section.Program,
		AcademicYear: section.AcademicYear,
		Batch:        section.Batch,
	}, nil
}
