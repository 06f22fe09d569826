//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"slcm-curriculum/internal/model"
	"slcm-curriculum/internal/repository"
	"slcm-curriculum/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=slcm password=slcm_password dbname=slcm_test sslmode=disable TimeZone=Asia/Kolkata"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "获取底层连接失败: %v\n", err)
		os.Exit(1)
	}
	// 与生产一致：使用迁移文件建表（含课程/修读类型初始数据）
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "执行迁移失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// uniqueScope 每个测试使用独立范围，避免相互干扰
func uniqueScope() model.CurriculumScope {
	return model.CurriculumScope{
		Program:      fmt.Sprintf("B.Tech-%d", time.Now().UnixNano()),
		AcademicYear: "2024-25",
	}
}

func cleanupCurriculum(t *testing.T, id string) {
	t.Helper()
	testDB.Where("curriculum_id = ?", id).Delete(&model.CurriculumCourse{})
	testDB.Where("curriculum_id = ?", id).Delete(&model.Curriculum{})
}

func newHeader(scope model.CurriculumScope) *model.Curriculum {
	return &model.Curriculum{
		Department:     "Computer Science",
		Program:        scope.Program,
		AcademicYear:   scope.AcademicYear,
		Batch:          scope.Batch,
		Section:        scope.Section,
		AcademicSystem: "Semester",
		ExtraTerms:     model.IntArray{9},
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Curriculum Save / ReplaceCourses
// ═══════════════════════════════════════════════════════════

func TestCurriculum_SaveAndGetByScope(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	scope := uniqueScope()

	header := newHeader(scope)
	if err := repo.Curriculum.Save(ctx, header); err != nil {
		t.Fatalf("创建课程体系失败: %v", err)
	}
	defer cleanupCurriculum(t, header.CurriculumID)

	if header.CurriculumID == "" {
		t.Fatal("期望数据库生成 curriculum_id")
	}

	found, err := repo.Curriculum.GetByScope(ctx, scope)
	if err != nil {
		t.Fatalf("按范围查询失败: %v", err)
	}
	if found.CurriculumID != header.CurriculumID {
		t.Errorf("ID 不匹配: expected %s, got %s", header.CurriculumID, found.CurriculumID)
	}
	if len(found.ExtraTerms) != 1 || found.ExtraTerms[0] != 9 {
		t.Errorf("extra_terms: expected [9], got %v", found.ExtraTerms)
	}

	// 批次不同即为另一范围
	other := scope
	other.Batch = "2024"
	if _, err := repo.Curriculum.GetByScope(ctx, other); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 ErrRecordNotFound, got %v", err)
	}

	// 再次保存走更新
	found.AcademicSystem = "Trimester"
	found.ExtraTerms = model.IntArray{}
	if err := repo.Curriculum.Save(ctx, found); err != nil {
		t.Fatalf("更新课程体系失败: %v", err)
	}
	again, err := repo.Curriculum.GetByScope(ctx, scope)
	if err != nil {
		t.Fatalf("更新后查询失败: %v", err)
	}
	if again.AcademicSystem != "Trimester" {
		t.Errorf("academic_system: expected Trimester, got %s", again.AcademicSystem)
	}
	if len(again.ExtraTerms) != 0 {
		t.Errorf("extra_terms: expected empty, got %v", again.ExtraTerms)
	}
}

func TestCurriculum_ReplaceCoursesKeepsOrder(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	header := newHeader(uniqueScope())
	if err := repo.Curriculum.Save(ctx, header); err != nil {
		t.Fatalf("创建课程体系失败: %v", err)
	}
	defer cleanupCurriculum(t, header.CurriculumID)

	first := []model.CurriculumCourse{
		{Semester: "Semester 1", EntryKind: "Course", CourseType: "Core", EnrollmentType: "Full", Course: "CS101", Credits: 4},
		{Semester: "Semester 1", EntryKind: "Course", CourseType: "Core", EnrollmentType: "Full", Course: "MA101", Credits: 3},
	}
	if err := repo.Curriculum.ReplaceCourses(ctx, header.CurriculumID, first); err != nil {
		t.Fatalf("写入明细失败: %v", err)
	}

	// 第二次整体覆盖：顺序与第一次相反，并追加课组
	second := []model.CurriculumCourse{
		{Semester: "Semester 2", EntryKind: "Cluster", CourseType: "Programme Elective", EnrollmentType: "Full",
			ClusterName: "AI Electives", MinCourses: 1, MaxCourses: 2},
		{Semester: "Semester 1", EntryKind: "Course", CourseType: "Core", EnrollmentType: "Full", Course: "MA101", Credits: 3},
		{Semester: "Semester 1", EntryKind: "Course", CourseType: "Core", EnrollmentType: "Full", Course: "CS101", Credits: 4},
	}
	if err := repo.Curriculum.ReplaceCourses(ctx, header.CurriculumID, second); err != nil {
		t.Fatalf("覆盖明细失败: %v", err)
	}

	rows, err := repo.Curriculum.ListCourses(ctx, header.CurriculumID)
	if err != nil {
		t.Fatalf("查询明细失败: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows after overwrite, got %d", len(rows))
	}
	wantOrder := []string{"AI Electives", "MA101", "CS101"}
	for i, r := range rows {
		got := r.Course
		if r.EntryKind == "Cluster" {
			got = r.ClusterName
		}
		if got != wantOrder[i] {
			t.Errorf("row %d: expected %s, got %s", i, wantOrder[i], got)
		}
		if r.Idx != i+1 {
			t.Errorf("row %d: expected idx %d, got %d", i, i+1, r.Idx)
		}
	}

	// 空明细：清空全部行
	if err := repo.Curriculum.ReplaceCourses(ctx, header.CurriculumID, nil); err != nil {
		t.Fatalf("清空明细失败: %v", err)
	}
	rows, _ = repo.Curriculum.ListCourses(ctx, header.CurriculumID)
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Transaction
// ═══════════════════════════════════════════════════════════

func TestTransaction_Rollback(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	scope := uniqueScope()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx 失败: %v", err)
	}
	txRepo := repo.WithTx(tx)

	header := newHeader(scope)
	if err := txRepo.Curriculum.Save(ctx, header); err != nil {
		tx.Rollback()
		t.Fatalf("事务内创建课程体系失败: %v", err)
	}

	tx.Rollback()

	if _, err := repo.Curriculum.GetByScope(ctx, scope); err == nil {
		cleanupCurriculum(t, header.CurriculumID)
		t.Fatal("期望回滚后查不到课程体系，但实际查到了")
	}
}

func TestTransaction_Commit(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	scope := uniqueScope()

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx 失败: %v", err)
	}
	txRepo := repo.WithTx(tx)

	header := newHeader(scope)
	if err := txRepo.Curriculum.Save(ctx, header); err != nil {
		tx.Rollback()
		t.Fatalf("事务内创建课程体系失败: %v", err)
	}
	rows := []model.CurriculumCourse{
		{Semester: "Semester 1", EntryKind: "Course", CourseType: "Core", EnrollmentType: "Full", Course: "CS101", Credits: 4},
	}
	if err := txRepo.Curriculum.ReplaceCourses(ctx, header.CurriculumID, rows); err != nil {
		tx.Rollback()
		t.Fatalf("事务内写入明细失败: %v", err)
	}

	if err := tx.Commit().Error; err != nil {
		t.Fatalf("Commit 失败: %v", err)
	}
	defer cleanupCurriculum(t, header.CurriculumID)

	found, err := repo.Curriculum.GetByScope(ctx, scope)
	if err != nil {
		t.Fatalf("提交后查询失败: %v", err)
	}
	got, _ := repo.Curriculum.ListCourses(ctx, found.CurriculumID)
	if len(got) != 1 {
		t.Errorf("expected 1 row, got %d", len(got))
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Course / TypeDef
// ═══════════════════════════════════════════════════════════

func TestCourse_ListAndGetByCodes(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()
	suffix := time.Now().UnixNano()

	courses := []model.Course{
		{Code: fmt.Sprintf("IT-A-%d", suffix), Name: "Integration Algorithms", Department: "QA Dept", CreditValue: 4, Status: "active"},
		{Code: fmt.Sprintf("IT-B-%d", suffix), Name: "Integration Biology", Department: "QA Dept", CreditValue: 3, Status: "inactive"},
	}
	if err := testDB.WithContext(ctx).Create(&courses).Error; err != nil {
		t.Fatalf("创建课程失败: %v", err)
	}
	defer testDB.Unscoped().Where("department = ?", "QA Dept").Delete(&model.Course{})

	active, err := repo.Course.List(ctx, repository.CourseFilter{Status: "active", Department: "QA Dept"})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(active) != 1 || active[0].Code != courses[0].Code {
		t.Errorf("expected only %s, got %+v", courses[0].Code, active)
	}

	like, err := repo.Course.List(ctx, repository.CourseFilter{NameLike: "integration bio"})
	if err != nil {
		t.Fatalf("List(name) 失败: %v", err)
	}
	if len(like) != 1 || like[0].Code != courses[1].Code {
		t.Errorf("ILIKE: expected %s, got %+v", courses[1].Code, like)
	}

	byCode, err := repo.Course.GetByCodes(ctx, []string{courses[0].Code, courses[1].Code, "MISSING"})
	if err != nil {
		t.Fatalf("GetByCodes 失败: %v", err)
	}
	if len(byCode) != 2 {
		t.Errorf("expected 2 courses, got %d", len(byCode))
	}

	empty, err := repo.Course.GetByCodes(ctx, nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("GetByCodes(nil): expected empty, got %v / %v", empty, err)
	}
}

func TestTypeDef_SeededOrder(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	cts, err := repo.TypeDef.ListCourseTypes(ctx)
	if err != nil {
		t.Fatalf("ListCourseTypes 失败: %v", err)
	}
	if len(cts) == 0 || cts[0].Code != "Core" {
		t.Errorf("expected Core first, got %+v", cts)
	}

	ets, err := repo.TypeDef.ListEnrollmentTypes(ctx)
	if err != nil {
		t.Fatalf("ListEnrollmentTypes 失败: %v", err)
	}
	if len(ets) == 0 || ets[0].Code != "Full" {
		t.Errorf("expected Full first, got %+v", ets)
	}
}
