// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分组
//
//   - HTTP：请求总数、请求耗时、正在处理的请求数
//   - 目录查询：按操作统计次数和耗时（list_products、search_description等）
//   - 购物车：按动作统计更新次数（added/updated/removed/noop/rejected）
//   - 分类缓存：命中、未命中、出错、熔断跳过次数
//   - 熔断器：状态和请求结果
//   - 消息队列：发布次数
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	start := time.Now()
//	products, err := repo.FindProducts(ctx, predicate)
//	metrics.ObserveCatalogQuery("list_products", start, err)
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 避免高基数标签：path使用路由模板（/api/products/:id），不要使用实际URL
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册到默认Registry
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CatalogQueriesTotal 目录查询总数（Counter）
	// 标签：op（查询类型）、result（success/failure）
	CatalogQueriesTotal *prometheus.CounterVec

	// CatalogQueryDuration 目录查询耗时（Histogram）
	CatalogQueryDuration *prometheus.HistogramVec

	// CartUpdatesTotal 购物车更新总数（Counter）
	// 标签：action（added/updated/removed/noop/rejected）
	CartUpdatesTotal *prometheus.CounterVec

	// CacheRequestsTotal 分类缓存访问总数（Counter）
	// 标签：result（hit/miss/error/bypass）
	CacheRequestsTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=OPEN, 2=HALF_OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数（Counter）
	// 标签：name（熔断器名称）、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange、routing_key、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次；重复调用是安全的（只注册一次）
func InitMetrics() {
	once.Do(register)
}

func register() {
	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 目录查询指标
	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "目录查询总数",
		},
		[]string{"op", "result"},
	)

	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "catalog_query_duration_seconds",
			Help: "目录查询耗时（秒）",
			// 单表/两表JOIN查询，大部分在毫秒级
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"op"},
	)

	// 购物车指标
	CartUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_updates_total",
			Help: "购物车更新总数",
		},
		[]string{"action"},
	)

	// 缓存指标
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "category_cache_requests_total",
			Help: "分类缓存访问总数",
		},
		[]string{"result"},
	)

	// 熔断器指标
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// ObserveCatalogQuery 记录一次目录查询（次数+耗时）
func ObserveCatalogQuery(op string, start time.Time, err error) {
	if CatalogQueriesTotal == nil {
		return
	}
	CatalogQueriesTotal.With(prometheus.Labels{"op": op, "result": resultLabel(err)}).Inc()
	CatalogQueryDuration.With(prometheus.Labels{"op": op}).Observe(time.Since(start).Seconds())
}

// IncCartUpdate 记录一次购物车更新
func IncCartUpdate(action string) {
	if CartUpdatesTotal == nil {
		return
	}
	CartUpdatesTotal.With(prometheus.Labels{"action": action}).Inc()
}

// IncCacheRequest 记录一次缓存访问（hit/miss/error/bypass）
func IncCacheRequest(result string) {
	if CacheRequestsTotal == nil {
		return
	}
	CacheRequestsTotal.With(prometheus.Labels{"result": result}).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}

func resultLabel(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
