package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"slcm-curriculum/internal/model"
	"slcm-curriculum/internal/repository"
	"slcm-curriculum/pkg/redis"
)

// ── Mock CurriculumRepository ──

type mockCurriculumRepo struct {
	headers   map[string]*model.Curriculum // scope key → header
	rows      map[string][]model.CurriculumCourse
	saveCalls int
	saveErr   error
	nextID    int
}

func newMockCurriculumRepo() *mockCurriculumRepo {
	return &mockCurriculumRepo{
		headers: make(map[string]*model.Curriculum),
		rows:    make(map[string][]model.CurriculumCourse),
	}
}

func scopeKey(s model.CurriculumScope) string {
	return strings.Join([]string{s.Program, s.AcademicYear, s.Batch, s.Section}, "|")
}

// seed 预置一个已建档的课程体系
func (m *mockCurriculumRepo) seed(header *model.Curriculum, rows ...model.CurriculumCourse) {
	if header.CurriculumID == "" {
		m.nextID++
		header.CurriculumID = fmt.Sprintf("cur-%d", m.nextID)
	}
	header.UpdatedAt = time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	m.headers[scopeKey(header.Scope())] = header
	m.rows[header.CurriculumID] = rows
}

func (m *mockCurriculumRepo) stored(s model.CurriculumScope) (*model.Curriculum, []model.CurriculumCourse) {
	h, ok := m.headers[scopeKey(s)]
	if !ok {
		return nil, nil
	}
	return h, m.rows[h.CurriculumID]
}

func (m *mockCurriculumRepo) GetByScope(_ context.Context, s model.CurriculumScope) (*model.Curriculum, error) {
	h, ok := m.headers[scopeKey(s)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *h
	cp.ExtraTerms = append(model.IntArray(nil), h.ExtraTerms...)
	return &cp, nil
}

func (m *mockCurriculumRepo) ListCourses(_ context.Context, id string) ([]model.CurriculumCourse, error) {
	return append([]model.CurriculumCourse(nil), m.rows[id]...), nil
}

func (m *mockCurriculumRepo) Save(_ context.Context, c *model.Curriculum) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	if c.CurriculumID == "" {
		m.nextID++
		c.CurriculumID = fmt.Sprintf("cur-%d", m.nextID)
	}
	cp := *c
	m.headers[scopeKey(c.Scope())] = &cp
	return nil
}

func (m *mockCurriculumRepo) ReplaceCourses(_ context.Context, id string, rows []model.CurriculumCourse) error {
	for i := range rows {
		rows[i].CurriculumID = id
		rows[i].Idx = i + 1
	}
	m.rows[id] = append([]model.CurriculumCourse(nil), rows...)
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses    []model.Course
	lastFilter repository.CourseFilter
	err        error
}

func newMockCourseRepo() *mockCourseRepo {
	return &mockCourseRepo{courses: []model.Course{
		{Code: "CS101", Name: "Programming Fundamentals", Department: "Computer Science", CreditValue: 4, Status: "active"},
		{Code: "CS102", Name: "Data Structures", Department: "Computer Science", CreditValue: 4, Status: "active"},
		{Code: "MA101", Name: "Calculus I", Department: "Mathematics", CreditValue: 3, Status: "active"},
		{Code: "HS201", Name: "Ethics", Department: "Humanities", CreditValue: 2, Status: "inactive"},
	}}
}

func (m *mockCourseRepo) List(_ context.Context, f repository.CourseFilter) ([]model.Course, error) {
	m.lastFilter = f
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Course
	for _, c := range m.courses {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if f.Department != "" && c.Department != f.Department {
			continue
		}
		if f.NameLike != "" {
			like := strings.ToLower(f.NameLike)
			if !strings.Contains(strings.ToLower(c.Name), like) && !strings.Contains(strings.ToLower(c.Code), like) {
				continue
			}
		}
		out = append(out, c)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockCourseRepo) GetByCodes(_ context.Context, codes []string) ([]model.Course, error) {
	want := make(map[string]bool, len(codes))
	for _, c := range codes {
		want[c] = true
	}
	var out []model.Course
	for _, c := range m.courses {
		if want[c.Code] {
			out = append(out, c)
		}
	}
	return out, nil
}

// ── Mock TypeDefRepository ──

type mockTypeDefRepo struct {
	courseTypes     []model.CourseType
	enrollmentTypes []model.EnrollmentType
	calls           int
	err             error
}

func newMockTypeDefRepo() *mockTypeDefRepo {
	return &mockTypeDefRepo{
		courseTypes: []model.CourseType{
			{Code: "Core", DisplayName: "Core Courses", IsActive: true, SortOrder: 1},
			{Code: "Programme Elective", DisplayName: "Programme Electives", IsActive: true, SortOrder: 2},
			{Code: "Open Elective", DisplayName: "Open Electives", IsActive: true, SortOrder: 3},
			{Code: "Seminar", DisplayName: "Seminar", IsActive: false, SortOrder: 4},
		},
		enrollmentTypes: []model.EnrollmentType{
			{Code: "Full", DisplayName: "Full", IsActive: true, SortOrder: 1},
			{Code: "Audit", DisplayName: "Audit", IsActive: true, SortOrder: 2},
			{Code: "Zero Credit", DisplayName: "Zero Credit", IsActive: true, SortOrder: 3},
		},
	}
}

func (m *mockTypeDefRepo) ListCourseTypes(_ context.Context) ([]model.CourseType, error) {
	m.calls++
	return m.courseTypes, m.err
}

func (m *mockTypeDefRepo) ListEnrollmentTypes(_ context.Context) ([]model.EnrollmentType, error) {
	m.calls++
	return m.enrollmentTypes, m.err
}

// ── Mock SectionRepository ──

type mockSectionRepo struct {
	sections map[string]*model.Section
}

func newMockSectionRepo() *mockSectionRepo {
	return &mockSectionRepo{sections: map[string]*model.Section{
		"CSE-2024-A": {Name: "CSE-2024-A", Department: "Computer Science", Program: "B.Tech CSE", AcademicYear: "2024-25", Batch: "2024"},
	}}
}

func (m *mockSectionRepo) GetByName(_ context.Context, name string) (*model.Section, error) {
	if s, ok := m.sections[name]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts []model.Department
	err   error
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: []model.Department{
		{DepartmentID: "dept-1", Name: "Computer Science", IsActive: true},
		{DepartmentID: "dept-2", Name: "Mathematics", Description: "Pure and applied", IsActive: true},
	}}
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	return m.depts, m.err
}

// ── Mock TypeCache ──

type mockTypeCache struct {
	data    map[string][]byte
	getErr  error
	deleted []string
}

func newMockTypeCache() *mockTypeCache {
	return &mockTypeCache{data: make(map[string][]byte)}
}

func (m *mockTypeCache) GetJSON(_ context.Context, key string, dst interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	return json.Unmarshal(raw, dst)
}

func (m *mockTypeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *mockTypeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

var errMockDB = errors.New("mock db failure")

// ── 聚合 ──

type mockRepos struct {
	curricula *mockCurriculumRepo
	courses   *mockCourseRepo
	typeDefs  *mockTypeDefRepo
	sections  *mockSectionRepo
	depts     *mockDeptRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		curricula: newMockCurriculumRepo(),
		courses:   newMockCourseRepo(),
		typeDefs:  newMockTypeDefRepo(),
		sections:  newMockSectionRepo(),
		depts:     newMockDeptRepo(),
	}
	repo := &repository.Repository{
		Curriculum: m.curricula,
		Course:     m.courses,
		TypeDef:    m.typeDefs,
		Section:    m.sections,
		Department: m.depts,
	}
	return repo, m
}
