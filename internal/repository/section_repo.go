package repository

import (
	"context"

	"gorm.io/gorm"

	"slcm-curriculum/internal/model"
)

// SectionRepository 班级数据访问接口
type SectionRepository interface {
	GetByName(ctx context.Context, name string) (*model.Section, error)
}

type sectionRepo struct {
	db *gorm.DB
}

// NewSectionRepo 创建 SectionRepository 实例
func NewSectionRepo(db *gorm.DB) SectionRepository {
	return &sectionRepo{db: db}
}

func (r *sectionRepo) GetByName(ctx context.Context, name string) (*model.Section, error) {
	var section model.Section
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}
