package dto

// ── 院系 DTO ──

// DepartmentResponse 院系信息（编辑范围与课程筛选下拉来源）
type DepartmentResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
