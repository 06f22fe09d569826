package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"slcm-curriculum/internal/dto"
)

// ErrInvalidInput 参数校验失败
var ErrInvalidInput = errors.New("参数校验失败")

const tagClusterBounds = "cluster_bounds"

// ValidationError 字段级校验错误
type ValidationError struct {
	Details []dto.ValidationErrorDetail
	tags    []string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is 使 errors.Is 可匹配 ErrInvalidInput，课组上下限错误额外匹配 ErrClusterBoundsInvalid
func (e *ValidationError) Is(target error) bool {
	if target == ErrInvalidInput {
		return true
	}
	if target == ErrClusterBoundsInvalid {
		for _, t := range e.tags {
			if t == tagClusterBounds {
				return true
			}
		}
	}
	return false
}

// newValidator 服务层校验器，与 gin 绑定共用 binding 标签
func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

// RegisterValidations 注册 json 字段名与课组上下限规则（gin 绑定校验器同样调用）
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(clusterEntryBounds, dto.CurriculumEntry{})
	v.RegisterStructValidation(clusterRequestBounds, dto.AddClusterRequest{})
}

func clusterEntryBounds(sl validator.StructLevel) {
	e := sl.Current().Interface().(dto.CurriculumEntry)
	if e.EntryKind != "Cluster" {
		return
	}
	if e.MinCourses < 1 || e.MinCourses > e.MaxCourses {
		sl.ReportError(e.MinCourses, "min_courses", "MinCourses", tagClusterBounds, "")
	}
}

func clusterRequestBounds(sl validator.StructLevel) {
	r := sl.Current().Interface().(dto.AddClusterRequest)
	if r.MinCourses > r.MaxCourses {
		sl.ReportError(r.MinCourses, "min_courses", "MinCourses", tagClusterBounds, "")
	}
}

// validateStruct 校验请求结构，失败时返回 *ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	return BindingError(err)
}

// BindingError 将校验器错误（含 gin 绑定错误）转换为 *ValidationError；
// JSON 解析等非字段错误包装为 ErrInvalidInput
func BindingError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	out := &ValidationError{}
	for _, fe := range ves {
		out.Details = append(out.Details, dto.ValidationErrorDetail{
			Field:   fieldPath(fe.Namespace()),
			Message: fieldMessage(fe),
		})
		out.tags = append(out.tags, fe.Tag())
	}
	return out
}

// fieldPath 去掉命名空间中的类型名与嵌入结构名，只保留 json 字段路径
func fieldPath(ns string) string {
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" && p[0] >= 'A' && p[0] <= 'Z' {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "不能为空"
	case "oneof":
		return "取值必须为: " + fe.Param()
	case "min":
		return "不能小于 " + fe.Param()
	case "max":
		return "不能大于 " + fe.Param()
	case tagClusterBounds:
		return "课组最少选课数须 >= 1 且不大于最多选课数"
	default:
		return "校验失败(" + fe.Tag() + ")"
	}
}
