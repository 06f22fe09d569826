package service

import (
	"go.uber.org/zap"

	"slcm-curriculum/config"
	"slcm-curriculum/internal/repository"
	"slcm-curriculum/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Curriculum CurriculumService
	TypeDef    TypeDefService
	Course     CourseService
	Section    SectionService
	Department DepartmentService
	Export     ExportService
}

// NewService 创建 Service 聚合；rdb 为 nil 时类型配置不走缓存
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var cache TypeCache
	if rdb != nil {
		cache = rdb
	}

	typeDefs := NewTypeDefService(repo, cache, cfg.Curriculum.TypeCacheTTL, logger)
	curricula := NewCurriculumService(&cfg.Curriculum, repo, typeDefs, logger)

	return &Service{
		Curriculum: curricula,
		TypeDef:    typeDefs,
		Course:     NewCourseService(repo, cfg.Curriculum.CourseSearchLimit, logger),
		Section:    NewSectionService(repo, logger),
		Department: NewDepartmentService(repo, logger),
		Export:     NewExportService(curricula, logger),
	}
}
