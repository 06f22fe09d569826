package model

// Section 班级 — 对应 sections，仅用于自动填充编辑范围
type Section struct {
	Name         string `gorm:"type:varchar(140);primaryKey"          json:"name"`
	Department   string `gorm:"type:varchar(140);not null;default:''" json:"department"`
	Program      string `gorm:"type:varchar(140);not null;default:''" json:"program"`
	AcademicYear string `gorm:"type:varchar(20);not null;default:''"  json:"academic_year"`
	Batch        string `gorm:"type:varchar(140);not null;default:''" json:"batch"`
	BaseModel
}

// TableName 指定表名
func (Section) TableName() string { return "sections" }
