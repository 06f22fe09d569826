package curriculum

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrRestrictedTerm 试图删除默认学期
var ErrRestrictedTerm = errors.New("默认学期不可删除")

// RestrictedTermsError 携带被拒绝的学期编号
type RestrictedTermsError struct {
	System AcademicSystem
	Terms  []int
}

func (e *RestrictedTermsError) Error() string {
	parts := make([]string, len(e.Terms))
	for i, n := range e.Terms {
		parts[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("%s: %s 默认学期 %s 不可删除（默认 %d 个）",
		ErrRestrictedTerm.Error(), e.System, strings.Join(parts, ", "), e.System.DefaultTermCount())
}

// Is 使 errors.Is(err, ErrRestrictedTerm) 成立
func (e *RestrictedTermsError) Is(target error) bool {
	return target == ErrRestrictedTerm
}

// EnumerateTerms 计算需要展示的学期编号（升序、去重）。
// 结果 = {1..默认数} ∪ {本学制标签引用的学期} ∪ {用户追加的学期}。
// 其他学制前缀的标签不解析，对应数据保留但暂不展示。
func EnumerateTerms(system AcademicSystem, entries []Entry, extra []int) []int {
	seen := make(map[int]struct{})
	for n := 1; n <= system.DefaultTermCount(); n++ {
		seen[n] = struct{}{}
	}
	for _, e := range entries {
		if n, ok := system.ParseLabel(e.Semester); ok {
			seen[n] = struct{}{}
		}
	}
	for _, n := range extra {
		if n > 0 {
			seen[n] = struct{}{}
		}
	}

	terms := make([]int, 0, len(seen))
	for n := range seen {
		terms = append(terms, n)
	}
	sort.Ints(terms)
	return terms
}

// Terms 当前可见学期
func (s *Store) Terms() []int {
	return EnumerateTerms(s.system, s.entries, s.extraTerms)
}

// ExtraTerms 用户追加且尚未删除的学期
func (s *Store) ExtraTerms() []int {
	out := make([]int, len(s.extraTerms))
	copy(out, s.extraTerms)
	return out
}

// AddTerm 追加一个学期（当前最大编号 + 1），返回新学期编号
func (s *Store) AddTerm() int {
	terms := s.Terms()
	next := 1
	if len(terms) > 0 {
		next = terms[len(terms)-1] + 1
	}
	s.extraTerms = append(s.extraTerms, next)
	return next
}

// RemoveTerms 批量删除学期及其全部条目。
// 任一编号 <= 默认学期数时整体拒绝且不做任何修改；不在当前学期列表中的编号忽略。
// 返回实际删除的学期编号（升序）与被删除的条目数。
func (s *Store) RemoveTerms(numbers []int) ([]int, int, error) {
	limit := s.system.DefaultTermCount()
	var restricted []int
	for _, n := range numbers {
		if n <= limit {
			restricted = append(restricted, n)
		}
	}
	if len(restricted) > 0 {
		sort.Ints(restricted)
		return nil, 0, &RestrictedTermsError{System: s.system, Terms: restricted}
	}

	visible := make(map[int]struct{})
	for _, n := range s.Terms() {
		visible[n] = struct{}{}
	}
	drop := make(map[int]struct{}, len(numbers))
	terms := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := visible[n]; !ok {
			continue
		}
		if _, dup := drop[n]; dup {
			continue
		}
		drop[n] = struct{}{}
		terms = append(terms, n)
	}
	sort.Ints(terms)
	if len(terms) == 0 {
		return terms, 0, nil
	}

	kept := s.entries[:0:0]
	removed := 0
	for _, e := range s.entries {
		if n, ok := s.system.ParseLabel(e.Semester); ok {
			if _, hit := drop[n]; hit {
				removed++
				continue
			}
		}
		kept = append(kept, e)
	}
	s.entries = kept

	extra := s.extraTerms[:0:0]
	for _, n := range s.extraTerms {
		if _, hit := drop[n]; !hit {
			extra = append(extra, n)
		}
	}
	s.extraTerms = extra

	return terms, removed, nil
}
