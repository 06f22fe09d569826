package model

// Course 课程主数据 — 对应 courses
// code 即课程体系中引用的课程标识
type Course struct {
	Code        string  `gorm:"type:varchar(140);primaryKey"                 json:"code"`
	Name        string  `gorm:"type:varchar(255);not null"                   json:"name"`
	Department  string  `gorm:"type:varchar(140);not null;default:''"        json:"department"`
	CreditValue float64 `gorm:"type:numeric(6,2);not null;default:0"         json:"credit_value"`
	Status      string  `gorm:"type:varchar(20);not null;default:'active'"   json:"status"` // active | inactive
	SoftDeleteModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// CourseType 课程类型定义 — 对应 course_types
type CourseType struct {
	Code        string `gorm:"type:varchar(140);primaryKey"  json:"code"`
	DisplayName string `gorm:"type:varchar(140);not null"    json:"display_name"`
	IsActive    bool   `gorm:"not null;default:true"         json:"is_active"`
	SortOrder   int    `gorm:"not null;default:0"            json:"sort_order"`
	BaseModel
}

// TableName 指定表名
func (CourseType) TableName() string { return "course_types" }

// EnrollmentType 修读类型定义 — 对应 enrollment_types
type EnrollmentType struct {
	Code        string `gorm:"type:varchar(140);primaryKey"  json:"code"`
	DisplayName string `gorm:"type:varchar(140);not null"    json:"display_name"`
	IsActive    bool   `gorm:"not null;default:true"         json:"is_active"`
	SortOrder   int    `gorm:"not null;default:0"            json:"sort_order"`
	BaseModel
}

// TableName 指定表名
func (EnrollmentType) TableName() string { return "enrollment_types" }
