package dto

// CourseListRequest GET /courses 查询参数
type CourseListRequest struct {
	Status     string `form:"status"     binding:"omitempty,oneof=active inactive"`
	Department string `form:"department" binding:"omitempty,max=140"`
	Name       string `form:"name"       binding:"omitempty,max=140"` // 模糊匹配名称或代码
}

// CourseResponse 课程主数据
type CourseResponse struct {
	Identity    string  `json:"identity"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Department  string  `json:"department"`
	CreditValue float64 `json:"credit_value"`
	Status      string  `json:"status"`
}
