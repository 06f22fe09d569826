package dto

// ── 课程体系模块请求 ──

// CurriculumScope 编辑范围：专业 + 学年 [+ 批次 + 班级]
// program 与 academic_year 的必填校验在服务层（去除首尾空白后判断）
type CurriculumScope struct {
	Program      string `json:"program"       form:"program"       binding:"max=140"`
	AcademicYear string `json:"academic_year" form:"academic_year" binding:"max=20"`
	Batch        string `json:"batch"         form:"batch"         binding:"omitempty,max=140"`
	Section      string `json:"section"       form:"section"       binding:"omitempty,max=140"`
}

// CurriculumQuery GET /curricula 查询参数
// academic_system 仅在课程体系尚不存在时用于生成默认学期
type CurriculumQuery struct {
	CurriculumScope
	AcademicSystem string `json:"academic_system" form:"academic_system" binding:"omitempty,oneof=Semester Trimester Quarter Year"`
}

// WorkspaceScope 写操作的范围；首次写入尚无课程体系时以 department / academic_system 建档
type WorkspaceScope struct {
	CurriculumScope
	Department     string `json:"department"      binding:"omitempty,max=140"`
	AcademicSystem string `json:"academic_system" binding:"omitempty,oneof=Semester Trimester Quarter Year"`
}

// CurriculumEntry 课程体系条目（提交与返回共用）
type CurriculumEntry struct {
	Semester       string  `json:"semester"                  binding:"required,max=40"`
	EntryKind      string  `json:"entry_kind"                binding:"required,oneof=Course Cluster"`
	CourseType     string  `json:"course_type,omitempty"     binding:"omitempty,max=140"`
	EnrollmentType string  `json:"enrollment_type,omitempty" binding:"omitempty,max=140"`
	Course         string  `json:"course,omitempty"          binding:"required_if=EntryKind Course,max=140"`
	Credits        float64 `json:"credits"                   binding:"min=0"`
	CourseCode     string  `json:"course_code,omitempty"     binding:"omitempty,max=140"`
	CourseName     string  `json:"course_name,omitempty"     binding:"omitempty,max=255"`
	Department     string  `json:"department,omitempty"      binding:"omitempty,max=140"`
	ClusterName    string  `json:"cluster_name,omitempty"    binding:"required_if=EntryKind Cluster,max=140"`
	MinCourses     int     `json:"min_courses,omitempty"     binding:"min=0"`
	MaxCourses     int     `json:"max_courses,omitempty"     binding:"min=0"`
}

// SaveCurriculumRequest 整体保存（全量覆盖）
type SaveCurriculumRequest struct {
	CurriculumScope
	Department     string            `json:"department"         binding:"required,max=140"`
	AcademicSystem string            `json:"academic_system"    binding:"required,oneof=Semester Trimester Quarter Year"`
	Courses        []CurriculumEntry `json:"curriculum_courses" binding:"dive"`
	ExtraTerms     []int             `json:"extra_terms"        binding:"omitempty,dive,min=1"`
}

// GroupTarget 写入上下文：学期 + 分组轴 + 轴取值
type GroupTarget struct {
	Semester  string `json:"semester"   binding:"required,max=40"`
	Axis      string `json:"axis"       binding:"required,oneof=course_type enrollment_type"`
	AxisValue string `json:"axis_value" binding:"omitempty,max=140"`
}

// AddCoursesRequest 批量添加课程到同一分组
type AddCoursesRequest struct {
	WorkspaceScope
	GroupTarget
	Courses []string `json:"courses" binding:"required,min=1,max=200,dive,required,max=140"`
}

// AddClusterRequest 新建课组
type AddClusterRequest struct {
	WorkspaceScope
	GroupTarget
	ClusterName string `json:"cluster_name" binding:"required,max=140"`
	MinCourses  int    `json:"min_courses"  binding:"min=1"`
	MaxCourses  int    `json:"max_courses"  binding:"min=1"`
}

// UpdateEntryRequest 原地编辑学分或课组上下限（nil 字段不修改）
type UpdateEntryRequest struct {
	CurriculumScope
	GroupTarget
	EntryKind  string   `json:"entry_kind"  binding:"required,oneof=Course Cluster"`
	Identity   string   `json:"identity"    binding:"required,max=140"`
	Credits    *float64 `json:"credits"     binding:"omitempty,min=0"`
	MinCourses *int     `json:"min_courses" binding:"omitempty,min=1"`
	MaxCourses *int     `json:"max_courses" binding:"omitempty,min=1"`
}

// RemoveEntryRequest 删除单个条目（按完整上下文匹配）
type RemoveEntryRequest struct {
	CurriculumScope
	GroupTarget
	EntryKind string `json:"entry_kind" binding:"required,oneof=Course Cluster"`
	Identity  string `json:"identity"   binding:"required,max=140"`
}

// AddTermRequest 追加学期
type AddTermRequest struct {
	WorkspaceScope
}

// RemoveTermsRequest 批量删除学期
type RemoveTermsRequest struct {
	CurriculumScope
	Terms []int `json:"terms" binding:"required,min=1,dive,min=1"`
}

// MigrateCourseTypesRequest 将推断出的课程类型写回存储
type MigrateCourseTypesRequest struct {
	CurriculumScope
}

// ── 课程体系模块响应 ──

// EntryView 分组内的单个条目
type EntryView struct {
	CurriculumEntry
	ShowBadge bool `json:"show_badge"` // 是否显示修读类型徽标
}

// SectionView 学期内的一个分组
type SectionView struct {
	Axis        string      `json:"axis"`
	Code        string      `json:"code"`
	DisplayName string      `json:"display_name"`
	Courses     []EntryView `json:"courses"`
	Clusters    []EntryView `json:"clusters"`
	Credits     float64     `json:"credits"`
}

// TermView 单个学期
type TermView struct {
	Number             int           `json:"number"`
	Label              string        `json:"label"`
	Removable          bool          `json:"removable"`
	CourseTypeSections []SectionView `json:"course_type_sections"`
	EnrollmentSections []SectionView `json:"enrollment_sections"`
	Credits            float64       `json:"credits"`
}

// CurriculumResponse 课程体系（get_curriculum 返回）
type CurriculumResponse struct {
	ID                string            `json:"id,omitempty"`
	AcademicSystem    string            `json:"academic_system"`
	Department        string            `json:"department"`
	Program           string            `json:"program"`
	AcademicYear      string            `json:"academic_year"`
	Batch             string            `json:"batch,omitempty"`
	Section           string            `json:"section,omitempty"`
	Exists            bool              `json:"exists"`
	CurriculumCourses []CurriculumEntry `json:"curriculum_courses"`
	ExtraTerms        []int             `json:"extra_terms"`
	Terms             []TermView        `json:"terms"`
	UpdatedAt         string            `json:"updated_at,omitempty"`
}

// AddCoursesResponse 批量添加结果
type AddCoursesResponse struct {
	Added      int                 `json:"added"`
	Skipped    int                 `json:"skipped"`
	Curriculum *CurriculumResponse `json:"curriculum"`
}

// AddTermResponse 追加学期结果
type AddTermResponse struct {
	Term       int                 `json:"term"`
	Label      string              `json:"label"`
	Curriculum *CurriculumResponse `json:"curriculum"`
}

// RemoveTermsResponse 删除学期结果
type RemoveTermsResponse struct {
	RemovedTerms   []int               `json:"removed_terms"`
	RemovedEntries int                 `json:"removed_entries"`
	Curriculum     *CurriculumResponse `json:"curriculum"`
}

// MigrateCourseTypesResponse 迁移结果
type MigrateCourseTypesResponse struct {
	Migrated   int                 `json:"migrated"`
	Curriculum *CurriculumResponse `json:"curriculum"`
}
