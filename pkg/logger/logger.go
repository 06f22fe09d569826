package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"slcm-curriculum/config"
)

// NewLogger 根据配置初始化 Zap 日志实例
// format: json（默认，生产）| console（本地调试，彩色级别）
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	switch cfg.Format {
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case "json", "":
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("无效的日志格式 %q", cfg.Format)
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("无效的日志级别 %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("初始化日志器失败: %w", err)
	}

	return logger.With(zap.String("service", "slcm-curriculum")), nil
}

// WithScope 附加课程体系范围字段
func WithScope(l *zap.Logger, program, academicYear, batch, section string) *zap.Logger {
	fields := []zap.Field{
		zap.String("program", program),
		zap.String("academic_year", academicYear),
	}
	if batch != "" {
		fields = append(fields, zap.String("batch", batch))
	}
	if section != "" {
		fields = append(fields, zap.String("section", section))
	}
	return l.With(fields...)
}
