package dto

// SectionDetailsResponse 班级所属范围，用于自动填充编辑范围
type SectionDetailsResponse struct {
	Section      string `json:"section"`
	Department   string `json:"department"`
	Program      string `json:"program"`
	AcademicYear string `json:"academic_year"`
	Batch        string `json:"batch"`
}
