package curriculum

// AddResult 批量添加结果
type AddResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}

// Serialize 提交给服务端的扁平列表（不做任何变换，服务端整体覆盖）
func (s *Store) Serialize() []Entry {
	return s.Entries()
}

// IsDuplicate 判断 (学期, 有效分组取值, 身份) 是否已存在
func (s *Store) IsDuplicate(target Target, kind EntryKind, identity string) bool {
	_, found := s.Find(s.Match(target, kind, identity))
	return found
}

// AddCourses 批量添加课程，重复项（含同批次内重复）跳过并计数
func (s *Store) AddCourses(target Target, courses []CourseRef) AddResult {
	var res AddResult
	for _, c := range courses {
		if s.AddCourse(target, c) {
			res.Added++
		} else {
			res.Skipped++
		}
	}
	return res
}
