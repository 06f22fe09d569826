package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"slcm-curriculum/internal/curriculum"
	"slcm-curriculum/internal/dto"
	"slcm-curriculum/internal/repository"
	"slcm-curriculum/pkg/metrics"
	"slcm-curriculum/pkg/redis"
)

const (
	cacheKeyCourseTypes     = "type_defs:course_types"
	cacheKeyEnrollmentTypes = "type_defs:enrollment_types"
)

// TypeCache 类型配置缓存（*redis.Client 实现）
type TypeCache interface {
	GetJSON(ctx context.Context, key string, dst interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// TypeDefService 课程类型 / 修读类型配置读取，带 Redis 缓存
type TypeDefService interface {
	ListCourseTypes(ctx context.Context) ([]dto.TypeDefResponse, error)
	ListEnrollmentTypes(ctx context.Context) ([]dto.TypeDefResponse, error)
	// Resolver 基于当前配置构建分类解析器
	Resolver(ctx context.Context) (*curriculum.Resolver, error)
	// Invalidate 清除缓存，类型配置变更后调用
	Invalidate(ctx context.Context) error
}

type typeDefService struct {
	repo   *repository.Repository
	cache  TypeCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewTypeDefService 创建 TypeDefService 实例；cache 为 nil 时直接查库
func NewTypeDefService(repo *repository.Repository, cache TypeCache, ttl time.Duration, logger *zap.Logger) TypeDefService {
	return &typeDefService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

func (s *typeDefService) ListCourseTypes(ctx context.Context) ([]dto.TypeDefResponse, error) {
	defs, err := s.courseTypes(ctx)
	if err != nil {
		return nil, err
	}
	return toTypeDefResponses(defs), nil
}

func (s *typeDefService) ListEnrollmentTypes(ctx context.Context) ([]dto.TypeDefResponse, error) {
	defs, err := s.enrollmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	return toTypeDefResponses(defs), nil
}

func (s *typeDefService) Resolver(ctx context.Context) (*curriculum.Resolver, error) {
	courseTypes, err := s.courseTypes(ctx)
	if err != nil {
		return nil, err
	}
	enrollmentTypes, err := s.enrollmentTypes(ctx)
	if err != nil {
		return nil, err
	}
	return curriculum.NewResolver(courseTypes, enrollmentTypes), nil
}

func (s *typeDefService) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, cacheKeyCourseTypes, cacheKeyEnrollmentTypes)
}

// ── 内部辅助方法 ──

func (s *typeDefService) courseTypes(ctx context.Context) ([]curriculum.TypeDef, error) {
	return s.cached(ctx, cacheKeyCourseTypes, func() ([]curriculum.TypeDef, error) {
		rows, err := s.repo.TypeDef.ListCourseTypes(ctx)
		if err != nil {
			return nil, err
		}
		defs := make([]curriculum.TypeDef, 0, len(rows))
		for _, r := range rows {
			defs = append(defs, curriculum.TypeDef{Code: r.Code, DisplayName: r.DisplayName, IsActive: r.IsActive})
		}
		return defs, nil
	})
}

func (s *typeDefService) enrollmentTypes(ctx context.Context) ([]curriculum.TypeDef, error) {
	return s.cached(ctx, cacheKeyEnrollmentTypes, func() ([]curriculum.TypeDef, error) {
		rows, err := s.repo.TypeDef.ListEnrollmentTypes(ctx)
		if err != nil {
			return nil, err
		}
		defs := make([]curriculum.TypeDef, 0, len(rows))
		for _, r := range rows {
			defs = append(defs, curriculum.TypeDef{Code: r.Code, DisplayName: r.DisplayName, IsActive: r.IsActive})
		}
		return defs, nil
	})
}

// cached 先读缓存，未命中时回源并回填；缓存故障降级为直接查库
func (s *typeDefService) cached(ctx context.Context, key string, load func() ([]curriculum.TypeDef, error)) ([]curriculum.TypeDef, error) {
	if s.cache != nil {
		var defs []curriculum.TypeDef
		err := s.cache.GetJSON(ctx, key, &defs)
		switch {
		case err == nil:
			metrics.TypeCacheLookup("hit")
			return defs, nil
		case errors.Is(err, redis.ErrCacheMiss):
			metrics.TypeCacheLookup("miss")
		default:
			metrics.TypeCacheLookup("error")
			s.logger.Warn("读取类型配置缓存失败，回源数据库", zap.String("key", key), zap.Error(err))
		}
	}

	defs, err := load()
	if err != nil {
		s.logger.Error("查询类型配置失败", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, defs, s.ttl); err != nil {
			s.logger.Warn("写入类型配置缓存失败", zap.String("key", key), zap.Error(err))
		}
	}
	return defs, nil
}

func toTypeDefResponses(defs []curriculum.TypeDef) []dto.TypeDefResponse {
	out := make([]dto.TypeDefResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, dto.TypeDefResponse{Code: d.Code, DisplayName: d.DisplayName, IsActive: d.IsActive})
	}
	return out
}
