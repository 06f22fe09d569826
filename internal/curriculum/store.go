package curriculum

import "fmt"

// Predicate 条目匹配条件
type Predicate func(Entry) bool

// Store 单个范围的课程体系内存存储。
// 非并发安全：每个请求 / 每个编辑页面持有独立实例。
type Store struct {
	system     AcademicSystem
	resolver   *Resolver
	entries    []Entry
	extraTerms []int
}

// NewStore 创建空存储
func NewStore(system AcademicSystem, resolver *Resolver) *Store {
	if resolver == nil {
		resolver = NewResolver(nil, nil)
	}
	return &Store{system: system, resolver: resolver}
}

// System 当前学制
func (s *Store) System() AcademicSystem { return s.system }

// Resolver 当前分类解析器
func (s *Store) Resolver() *Resolver { return s.resolver }

// Load 整体替换条目与追加学期（复制入参，保留顺序）
func (s *Store) Load(entries []Entry, extraTerms []int) {
	s.entries = make([]Entry, len(entries))
	copy(s.entries, entries)
	s.extraTerms = make([]int, 0, len(extraTerms))
	for _, n := range extraTerms {
		if n > 0 {
			s.extraTerms = append(s.extraTerms, n)
		}
	}
}

// Len 条目数
func (s *Store) Len() int { return len(s.entries) }

// Entries 条目副本
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Find 返回第一个匹配条目
func (s *Store) Find(pred Predicate) (Entry, bool) {
	for _, e := range s.entries {
		if pred(e) {
			return e, true
		}
	}
	return Entry{}, false
}

// RemoveOne 删除第一个匹配条目，至多一个
func (s *Store) RemoveOne(pred Predicate) bool {
	for i, e := range s.entries {
		if pred(e) {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Resolve 写入该上下文的条目最终归属的分组。
// 修读类型取值恰为启用的课程类型代码时，条目归入课程类型分组。
func (s *Store) Resolve(target Target) Classification {
	var e Entry
	s.applyAxis(&e, target)
	return s.resolver.Classify(e)
}

// Match 按完整上下文（学期、有效分组、条目类型、身份）匹配。
// 同名条目位于其他分组时不会命中。
func (s *Store) Match(target Target, kind EntryKind, identity string) Predicate {
	want := s.Resolve(target)
	return func(e Entry) bool {
		if e.Semester != target.Semester || e.EntryKind != kind || e.Identity() != identity {
			return false
		}
		return s.resolver.Classify(e) == want
	}
}

// DuplicateKey 重复条目的 (学期, 有效分组, 条目类型, 身份)
type DuplicateKey struct {
	Semester string
	Group    Classification
	Kind     EntryKind
	Identity string
}

// String 便于错误详情展示
func (k DuplicateKey) String() string {
	return fmt.Sprintf("%s / %s=%s / %s %q", k.Semester, k.Group.Axis, k.Group.Value, k.Kind, k.Identity)
}

// Duplicates 按有效分组查找重复条目，每组重复只报告一次（按首次重复出现的顺序）
func (s *Store) Duplicates() []DuplicateKey {
	seen := make(map[DuplicateKey]int, len(s.entries))
	var out []DuplicateKey
	for _, e := range s.entries {
		k := DuplicateKey{
			Semester: e.Semester,
			Group:    s.resolver.Classify(e),
			Kind:     e.EntryKind,
			Identity: e.Identity(),
		}
		seen[k]++
		if seen[k] == 2 {
			out = append(out, k)
		}
	}
	return out
}

// AddCourse 添加课程；同一 (学期, 分组, 课程) 已存在时返回 false 且不修改
func (s *Store) AddCourse(target Target, course CourseRef) bool {
	if s.IsDuplicate(target, KindCourse, course.Identity) {
		return false
	}
	e := Entry{
		Semester:   target.Semester,
		EntryKind:  KindCourse,
		Course:     course.Identity,
		Credits:    course.CreditValue,
		CourseCode: course.Code,
		CourseName: course.Name,
		Department: course.Department,
	}
	s.applyAxis(&e, target)
	s.entries = append(s.entries, e)
	return true
}

// AddCluster 添加课组；同一 (学期, 分组, 课组名) 已存在时返回 false 且不修改
func (s *Store) AddCluster(target Target, spec ClusterSpec) bool {
	if s.IsDuplicate(target, KindCluster, spec.Name) {
		return false
	}
	e := Entry{
		Semester:    target.Semester,
		EntryKind:   KindCluster,
		ClusterName: spec.Name,
		MinCourses:  spec.MinCourses,
		MaxCourses:  spec.MaxCourses,
	}
	s.applyAxis(&e, target)
	s.entries = append(s.entries, e)
	return true
}

// Update 原地编辑第一个匹配条目。
// 经编辑路径保存时，推断出的课程类型一并写入。
func (s *Store) Update(target Target, kind EntryKind, identity string, patch Patch) bool {
	match := s.Match(target, kind, identity)
	for i := range s.entries {
		e := &s.entries[i]
		if !match(*e) {
			continue
		}
		if patch.Credits != nil && e.EntryKind == KindCourse {
			e.Credits = *patch.Credits
		}
		if e.EntryKind == KindCluster {
			if patch.MinCourses != nil {
				e.MinCourses = *patch.MinCourses
			}
			if patch.MaxCourses != nil {
				e.MaxCourses = *patch.MaxCourses
			}
		}
		if e.CourseType == "" {
			if ct, ok := s.resolver.EffectiveCourseType(*e); ok {
				e.CourseType = ct
			}
		}
		return true
	}
	return false
}

// applyAxis 按写入轴设置分组字段，另一轴留空
func (s *Store) applyAxis(e *Entry, target Target) {
	if target.Axis == AxisCourseType {
		e.CourseType = target.Value
		return
	}
	e.EnrollmentType = s.targetValue(target)
}

func (s *Store) targetValue(target Target) string {
	if target.Axis == AxisEnrollmentType && target.Value == "" {
		return DefaultEnrollmentType
	}
	return target.Value
}
