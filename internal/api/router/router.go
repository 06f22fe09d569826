package router

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"slcm-curriculum/config"
	"slcm-curriculum/internal/api/handler"
	"slcm-curriculum/internal/api/middleware"
	"slcm-curriculum/internal/service"
	"slcm-curriculum/pkg/jwt"
	"slcm-curriculum/pkg/metrics"
	"slcm-curriculum/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 为 nil 时写操作不限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	// 绑定校验与服务层共用字段名和课组上下限规则
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		service.RegisterValidations(v)
	}

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 运维接口 ──
	r.GET("/health", h.Health.Check)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	var limiter middleware.RateLimiter
	if rdb != nil {
		limiter = rdb
	}
	rl := cfg.Curriculum.RateLimit
	writeLimit := middleware.RateLimit(limiter, rl.Limit, rl.Window, logger)

	// ── API v1（Token 由宿主平台签发）──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtMgr))
	{
		// 课程体系模块
		curricula := v1.Group("/curricula")
		{
			curricula.GET("", h.Curriculum.GetCurriculum)
			curricula.PUT("", writeLimit, h.Curriculum.SaveCurriculum)
			curricula.POST("/courses", writeLimit, h.Curriculum.AddCourses)
			curricula.POST("/clusters", writeLimit, h.Curriculum.AddCluster)
			curricula.PATCH("/entries", writeLimit, h.Curriculum.UpdateEntry)
			curricula.DELETE("/entries", writeLimit, h.Curriculum.RemoveEntry)
			curricula.POST("/terms", writeLimit, h.Curriculum.AddTerm)
			curricula.DELETE("/terms", writeLimit, h.Curriculum.RemoveTerms)
			curricula.POST("/migrate-course-types", writeLimit, h.Curriculum.MigrateCourseTypes)
		}

		// 主数据查询
		v1.GET("/courses", h.Course.ListCourses)
		v1.GET("/sections/:name/details", h.Section.GetDetails)
		v1.GET("/departments", h.Department.ListDepartments)
		v1.GET("/course-types", h.TypeDef.ListCourseTypes)
		v1.GET("/enrollment-types", h.TypeDef.ListEnrollmentTypes)
		v1.DELETE("/type-defs/cache", middleware.RoleAuth("admin"), h.TypeDef.InvalidateCache)

		// 导出模块
		v1.GET("/export/curriculum", h.Export.ExportCurriculum)
	}

	return r
}
