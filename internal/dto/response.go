package dto

// ── 通用响应 ──

// HealthResponse 健康检查
type HealthResponse struct {
	Status           string `json:"status"`
	Database         string `json:"database"`
	Redis            string `json:"redis"`
	MigrationVersion uint   `json:"migration_version,omitempty"`
	MigrationDirty   bool   `json:"migration_dirty,omitempty"`
}

// ValidationErrorDetail 字段级校验错误
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
