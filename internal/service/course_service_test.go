package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"slcm-curriculum/internal/dto"
)

func setupTestCourseService(limit int) (CourseService, *mockCourseRepo) {
	repo, m := newMockRepos()
	return NewCourseService(repo, limit, zap.NewNop()), m.courses
}

func TestCourseService_List_DefaultsToActive(t *testing.T) {
	svc, courseRepo := setupTestCourseService(50)

	list, err := svc.List(context.Background(), &dto.CourseListRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if courseRepo.lastFilter.Status != "active" {
		t.Errorf("未指定状态时应默认 active，实际=%q", courseRepo.lastFilter.Status)
	}
	if len(list) != 3 {
		t.Errorf("期望 3 门启用课程，实际=%d", len(list))
	}
	for _, c := range list {
		if c.Identity != c.Code {
			t.Errorf("课程标识应为课程代码，实际=%+v", c)
		}
	}
}

func TestCourseService_List_Filters(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CourseListRequest
		want []string
	}{
		{"按院系", dto.CourseListRequest{Department: "Computer Science"}, []string{"CS101", "CS102"}},
		{"按名称模糊匹配", dto.CourseListRequest{Name: " calc "}, []string{"MA101"}},
		{"按代码模糊匹配", dto.CourseListRequest{Name: "cs10"}, []string{"CS101", "CS102"}},
		{"停用课程", dto.CourseListRequest{Status: "inactive"}, []string{"HS201"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupTestCourseService(50)
			list, err := svc.List(context.Background(), &tt.req)
			if err != nil {
				t.Fatalf("List 应成功: %v", err)
			}
			if len(list) != len(tt.want) {
				t.Fatalf("期望 %v，实际=%+v", tt.want, list)
			}
			for i, code := range tt.want {
				if list[i].Code != code {
					t.Errorf("第 %d 项期望 %s，实际=%s", i, code, list[i].Code)
				}
			}
		})
	}
}

func TestCourseService_List_Limit(t *testing.T) {
	svc, courseRepo := setupTestCourseService(1)

	list, err := svc.List(context.Background(), &dto.CourseListRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if courseRepo.lastFilter.Limit != 1 || len(list) != 1 {
		t.Errorf("期望按上限 1 截断，实际 limit=%d len=%d", courseRepo.lastFilter.Limit, len(list))
	}
}

func TestCourseService_List_RepoError(t *testing.T) {
	svc, courseRepo := setupTestCourseService(50)
	courseRepo.err = errMockDB

	if _, err := svc.List(context.Background(), &dto.CourseListRequest{}); !errors.Is(err, errMockDB) {
		t.Errorf("期望透传存储错误，实际: %v", err)
	}
}
