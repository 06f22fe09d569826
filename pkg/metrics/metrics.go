package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ── Prometheus 指标 ──

var (
	// httpRequests 按路由与状态码统计请求数
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slcm",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP 请求总数",
	}, []string{"method", "route", "status"})

	// httpLatency 请求耗时
	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "slcm",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP 请求耗时（秒）",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	// curriculumMutations 课程体系写操作
	// action: save | add_courses | add_cluster | update_entry | remove_entry | add_term | remove_terms | migrate
	// result: ok | rejected | error
	curriculumMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slcm",
		Subsystem: "curriculum",
		Name:      "mutations_total",
		Help:      "课程体系写操作次数",
	}, []string{"action", "result"})

	// curriculumSkipped 批量添加时因重复被跳过的课程数
	curriculumSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "slcm",
		Subsystem: "curriculum",
		Name:      "duplicate_skipped_total",
		Help:      "批量添加课程时跳过的重复课程数",
	})

	// typeCacheLookups 类型配置缓存命中情况（result: hit | miss | error）
	typeCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "slcm",
		Subsystem: "type_cache",
		Name:      "lookups_total",
		Help:      "类型配置缓存查询次数",
	}, []string{"result"})
)

const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// ObserveHTTP 记录一次 HTTP 请求
func ObserveHTTP(method, route, status string, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(seconds)
}

// CurriculumMutation 记录一次课程体系写操作
func CurriculumMutation(action, result string) {
	curriculumMutations.WithLabelValues(action, result).Inc()
}

// DuplicatesSkipped 累加跳过的重复课程数
func DuplicatesSkipped(n int) {
	if n > 0 {
		curriculumSkipped.Add(float64(n))
	}
}

// TypeCacheLookup 记录一次类型缓存查询
func TypeCacheLookup(result string) {
	typeCacheLookups.WithLabelValues(result).Inc()
}

// Handler 返回 /metrics 的 HTTP 处理器
func Handler() http.Handler {
	return promhttp.Handler()
}
