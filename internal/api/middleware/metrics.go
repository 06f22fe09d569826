package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"slcm-curriculum/pkg/metrics"
)

// Metrics 请求计数与耗时中间件，路由标签取注册路径以避免高基数
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.ObserveHTTP(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
