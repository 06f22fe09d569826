package repository

import (
	"context"

	"gorm.io/gorm"

	"slcm-curriculum/internal/model"
)

// TypeDefRepository 课程类型 / 修读类型配置访问接口（只读）
type TypeDefRepository interface {
	ListCourseTypes(ctx context.Context) ([]model.CourseType, error)
	ListEnrollmentTypes(ctx context.Context) ([]model.EnrollmentType, error)
}

type typeDefRepo struct {
	db *gorm.DB
}

// NewTypeDefRepo 创建 TypeDefRepository 实例
func NewTypeDefRepo(db *gorm.DB) TypeDefRepository {
	return &typeDefRepo{db: db}
}

func (r *typeDefRepo) ListCourseTypes(ctx context.Context) ([]model.CourseType, error) {
	var types []model.CourseType
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, code ASC").
		Find(&types).Error
	return types, err
}

func (r *typeDefRepo) ListEnrollmentTypes(ctx context.Context) ([]model.EnrollmentType, error) {
	var types []model.EnrollmentType
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, code ASC").
		Find(&types).Error
	return types, err
}
