// Package curriculum 课程体系核心领域模型：学期枚举、分类解析、条目存储与对账。
//
// 本包不做任何 I/O，所有操作同步执行；一个 Store 对应一个正在编辑的范围
// （专业 + 学年 [+ 批次 + 班级]），由调用方持有并在每次请求内使用。
package curriculum

import (
	"strconv"
	"strings"
)

// ── 学制 ──

// AcademicSystem 学制（决定学期标签前缀与默认学期数）
type AcademicSystem string

const (
	SystemSemester  AcademicSystem = "Semester"
	SystemTrimester AcademicSystem = "Trimester"
	SystemQuarter   AcademicSystem = "Quarter"
	SystemYear      AcademicSystem = "Year"
)

var defaultTermCounts = map[AcademicSystem]int{
	SystemSemester:  8,
	SystemTrimester: 3,
	SystemQuarter:   4,
	SystemYear:      5,
}

// Valid 是否为已知学制
func (s AcademicSystem) Valid() bool {
	_, ok := defaultTermCounts[s]
	return ok
}

// DefaultTermCount 默认学期数（下限而非上限）
func (s AcademicSystem) DefaultTermCount() int {
	return defaultTermCounts[s]
}

// Label 生成学期标签，如 "Semester 3"
func (s AcademicSystem) Label(n int) string {
	return string(s) + " " + strconv.Itoa(n)
}

// ParseLabel 解析本学制前缀的学期标签，其他学制的标签返回 ok=false
func (s AcademicSystem) ParseLabel(label string) (int, bool) {
	prefix := string(s) + " "
	if s == "" || !strings.HasPrefix(label, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(label, prefix)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ── 条目 ──

// EntryKind 条目类型
type EntryKind string

const (
	KindCourse  EntryKind = "Course"
	KindCluster EntryKind = "Cluster"
)

// Axis 分组轴
type Axis string

const (
	AxisCourseType     Axis = "course_type"
	AxisEnrollmentType Axis = "enrollment_type"
)

// Valid 是否为已知分组轴
func (a Axis) Valid() bool {
	return a == AxisCourseType || a == AxisEnrollmentType
}

// DefaultEnrollmentType 未指定修读类型时的缺省值
const DefaultEnrollmentType = "Full"

// Entry 课程体系中的一行：单门课程或一个选修课组
type Entry struct {
	Semester       string    `json:"semester"`
	EntryKind      EntryKind `json:"entry_kind"`
	CourseType     string    `json:"course_type,omitempty"`
	EnrollmentType string    `json:"enrollment_type,omitempty"`

	// Course
	Course     string  `json:"course,omitempty"`
	Credits    float64 `json:"credits,omitempty"`
	CourseCode string  `json:"course_code,omitempty"`
	CourseName string  `json:"course_name,omitempty"`
	Department string  `json:"department,omitempty"`

	// Cluster
	ClusterName string `json:"cluster_name,omitempty"`
	MinCourses  int    `json:"min_courses,omitempty"`
	MaxCourses  int    `json:"max_courses,omitempty"`
}

// Identity 条目在其分组内的身份：课程为课程标识，课组为课组名
func (e Entry) Identity() string {
	if e.EntryKind == KindCluster {
		return e.ClusterName
	}
	return e.Course
}

// TypeDef 课程类型 / 修读类型定义（外部配置，按顺序排列）
type TypeDef struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}

// CourseRef 添加课程时使用的课程主数据
type CourseRef struct {
	Identity    string
	Code        string
	Name        string
	Department  string
	CreditValue float64
}

// ClusterSpec 新建课组参数
type ClusterSpec struct {
	Name       string
	MinCourses int
	MaxCourses int
}

// Target 写入上下文：学期 + 分组轴 + 轴取值
type Target struct {
	Semester string
	Axis     Axis
	Value    string
}

// Patch 条目原地编辑（nil 字段不修改）
type Patch struct {
	Credits    *float64
	MinCourses *int
	MaxCourses *int
}
