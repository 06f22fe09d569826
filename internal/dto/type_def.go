package dto

// TypeDefResponse 课程类型 / 修读类型定义
type TypeDefResponse struct {
	Code        string `json:"code"`
	DisplayName string `json:"display_name"`
	IsActive    bool   `json:"is_active"`
}
