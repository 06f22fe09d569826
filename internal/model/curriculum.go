package model

// CurriculumScope 课程体系编辑范围：专业 + 学年 [+ 批次 + 班级]
type CurriculumScope struct {
	Program      string
	AcademicYear string
	Batch        string
	Section      string
}

// Curriculum 课程体系头表 — 对应 curricula（每个范围一行）
type Curriculum struct {
	CurriculumID   string   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curriculum_id"`
	Department     string   `gorm:"type:varchar(140);not null;default:''"          json:"department"`
	Program        string   `gorm:"type:varchar(140);not null"                     json:"program"`
	AcademicYear   string   `gorm:"type:varchar(20);not null"                      json:"academic_year"`
	Batch          string   `gorm:"type:varchar(140);not null;default:''"          json:"batch"`
	Section        string   `gorm:"type:varchar(140);not null;default:''"          json:"section"`
	AcademicSystem string   `gorm:"type:varchar(20);not null"                      json:"academic_system"` // Semester | Trimester | Quarter | Year
	ExtraTerms     IntArray `gorm:"type:int[]"                                     json:"extra_terms"`
	BaseModel

	Courses []CurriculumCourse `gorm:"foreignKey:CurriculumID" json:"-"`
}

// TableName 指定表名
func (Curriculum) TableName() string { return "curricula" }

// Scope 返回头表对应的范围
func (c *Curriculum) Scope() CurriculumScope {
	return CurriculumScope{
		Program:      c.Program,
		AcademicYear: c.AcademicYear,
		Batch:        c.Batch,
		Section:      c.Section,
	}
}

// CurriculumCourse 课程体系明细 — 对应 curriculum_courses
// 每次保存整体替换同一 curriculum_id 下的全部行，idx 保留提交顺序。
type CurriculumCourse struct {
	CurriculumCourseID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"curriculum_course_id"`
	CurriculumID       string  `gorm:"type:uuid;not null;index"                       json:"curriculum_id"`
	Idx                int     `gorm:"not null"                                       json:"idx"`
	Semester           string  `gorm:"type:varchar(40);not null"                      json:"semester"`
	EntryKind          string  `gorm:"type:varchar(10);not null;default:'Course'"     json:"entry_kind"` // Course | Cluster
	CourseType         string  `gorm:"type:varchar(140);not null;default:''"          json:"course_type"`
	EnrollmentType     string  `gorm:"type:varchar(140);not null;default:''"          json:"enrollment_type"`
	Course             string  `gorm:"type:varchar(140);not null;default:''"          json:"course"`
	Credits            float64 `gorm:"type:numeric(6,2);not null;default:0"           json:"credits"`
	CourseCode         string  `gorm:"type:varchar(140);not null;default:''"          json:"course_code"`
	CourseName         string  `gorm:"type:varchar(255);not null;default:''"          json:"course_name"`
	Department         string  `gorm:"type:varchar(140);not null;default:''"          json:"department"`
	ClusterName        string  `gorm:"type:varchar(140);not null;default:''"          json:"cluster_name"`
	MinCourses         int     `gorm:"not null;default:0"                             json:"min_courses"`
	MaxCourses         int     `gorm:"not null;default:0"                             json:"max_courses"`
}

// TableName 指定表名
func (CurriculumCourse) TableName() string { return "curriculum_courses" }

// [自证通过] internal/model/curriculum.go
