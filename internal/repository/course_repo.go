package repository

import (
	"context"

	"gorm.io/gorm"

	"slcm-curriculum/internal/model"
)

// CourseFilter 课程列表筛选条件
type CourseFilter struct {
	Status     string
	Department string
	NameLike   string
	Limit      int
}

// CourseRepository 课程主数据访问接口
type CourseRepository interface {
	List(ctx context.Context, filter CourseFilter) ([]model.Course, error)
	GetByCodes(ctx context.Context, codes []string) ([]model.Course, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) List(ctx context.Context, filter CourseFilter) ([]model.Course, error) {
	query := r.db.WithContext(ctx).Model(&model.Course{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.NameLike != "" {
		like := "%" + filter.NameLike + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var courses []model.Course
	err := query.Order("code ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByCodes(ctx context.Context, codes []string) ([]model.Course, error) {
	var courses []model.Course
	if len(codes) == 0 {
		return courses, nil
	}
	err := r.db.WithContext(ctx).
		Where("code IN ?", codes).
		Find(&courses).Error
	return courses, err
}
