package curriculum

// ── 分类解析 ──
//
// 数据模型由单轴（仅修读类型）演进为双轴（课程类型 + 修读类型）。
// 旧数据只填了 enrollment_type，这里在展示与查重时推断其课程类型，不改写存储字段。

// 不显示修读类型徽标的取值（与分组标题重复）
var implicitEnrollmentTypes = map[string]struct{}{
	DefaultEnrollmentType: {},
	"Core":                {},
	"Programme Elective":  {},
	"Open Elective":       {},
	"Seminar":             {},
}

// Classification 条目的有效分组
type Classification struct {
	Axis  Axis
	Value string
}

// Resolver 分类解析器，基于当前启用的类型配置
type Resolver struct {
	courseTypes     []TypeDef
	enrollmentTypes []TypeDef
	activeCourse    map[string]struct{}
}

// NewResolver 创建分类解析器；仅 IsActive 的类型参与分组
func NewResolver(courseTypes, enrollmentTypes []TypeDef) *Resolver {
	r := &Resolver{activeCourse: make(map[string]struct{})}
	for _, t := range courseTypes {
		if t.IsActive {
			r.courseTypes = append(r.courseTypes, t)
			r.activeCourse[t.Code] = struct{}{}
		}
	}
	for _, t := range enrollmentTypes {
		if t.IsActive {
			r.enrollmentTypes = append(r.enrollmentTypes, t)
		}
	}
	return r
}

// CourseTypes 启用的课程类型（按配置顺序）
func (r *Resolver) CourseTypes() []TypeDef { return r.courseTypes }

// EnrollmentTypes 启用的修读类型（按配置顺序）
func (r *Resolver) EnrollmentTypes() []TypeDef { return r.enrollmentTypes }

// HasCourseTypes 当前范围是否启用了课程类型轴
func (r *Resolver) HasCourseTypes() bool { return len(r.courseTypes) > 0 }

// IsActiveCourseType code 是否为启用的课程类型
func (r *Resolver) IsActiveCourseType(code string) bool {
	_, ok := r.activeCourse[code]
	return ok
}

// EffectiveCourseType 条目的有效课程类型。
// 已存 course_type 时直接采用；否则 enrollment_type 恰为启用的课程类型代码时视为课程类型。
func (r *Resolver) EffectiveCourseType(e Entry) (string, bool) {
	if e.CourseType != "" {
		return e.CourseType, true
	}
	if e.EnrollmentType != "" && r.IsActiveCourseType(e.EnrollmentType) {
		return e.EnrollmentType, true
	}
	return "", false
}

// Classify 返回唯一的有效分组
func (r *Resolver) Classify(e Entry) Classification {
	if ct, ok := r.EffectiveCourseType(e); ok {
		return Classification{Axis: AxisCourseType, Value: ct}
	}
	et := e.EnrollmentType
	if et == "" {
		et = DefaultEnrollmentType
	}
	return Classification{Axis: AxisEnrollmentType, Value: et}
}

// ShowEnrollmentBadge 是否在条目上显示修读类型徽标
func (r *Resolver) ShowEnrollmentBadge(e Entry) bool {
	if e.EnrollmentType == "" {
		return false
	}
	_, implicit := implicitEnrollmentTypes[e.EnrollmentType]
	return !implicit
}

// ── 分组视图 ──

// Section 一个学期内的一个分组
type Section struct {
	Axis        Axis
	Code        string
	DisplayName string
	Courses     []Entry
	Clusters    []Entry
}

// TermView 单个学期的分组视图
type TermView struct {
	Number             int
	Label              string
	CourseTypeSections []Section
	EnrollmentSections []Section
}

// Group 按学期生成分组视图。
// 每个条目只出现在一个分组；配置外的类型代码附加在已配置分组之后，数据不丢弃。
func (r *Resolver) Group(system AcademicSystem, terms []int, entries []Entry) []TermView {
	byTerm := make(map[int][]Entry)
	for _, e := range entries {
		if n, ok := system.ParseLabel(e.Semester); ok {
			byTerm[n] = append(byTerm[n], e)
		}
	}

	views := make([]TermView, 0, len(terms))
	for _, n := range terms {
		view := TermView{Number: n, Label: system.Label(n)}
		view.CourseTypeSections = r.sections(AxisCourseType, r.courseTypes, byTerm[n])
		view.EnrollmentSections = r.sections(AxisEnrollmentType, r.enrollmentTypes, byTerm[n])
		views = append(views, view)
	}
	return views
}

func (r *Resolver) sections(axis Axis, defs []TypeDef, entries []Entry) []Section {
	out := make([]Section, 0, len(defs))
	index := make(map[string]int, len(defs))
	for _, d := range defs {
		index[d.Code] = len(out)
		out = append(out, Section{Axis: axis, Code: d.Code, DisplayName: d.DisplayName})
	}

	for _, e := range entries {
		c := r.Classify(e)
		if c.Axis != axis {
			continue
		}
		i, ok := index[c.Value]
		if !ok {
			i = len(out)
			index[c.Value] = i
			out = append(out, Section{Axis: axis, Code: c.Value, DisplayName: c.Value})
		}
		if e.EntryKind == KindCluster {
			out[i].Clusters = append(out[i].Clusters, e)
		} else {
			out[i].Courses = append(out[i].Courses, e)
		}
	}
	return out
}

// MigrateLegacy 将推断出的课程类型写入 CourseType，返回改写条目数。
// 仅在显式迁移时调用；渲染路径不改写数据。
func (s *Store) MigrateLegacy() int {
	n := 0
	for i := range s.entries {
		e := &s.entries[i]
		if e.CourseType != "" {
			continue
		}
		if ct, ok := s.resolver.EffectiveCourseType(*e); ok {
			e.CourseType = ct
			n++
		}
	}
	return n
}
