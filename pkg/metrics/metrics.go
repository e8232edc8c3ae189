// Package metrics 提供基于Prometheus的指标收集
//
// # 指标类型
//
//   - Counter: 只增不减的累计值(请求总数、集合操作次数)
//   - Gauge: 可增可减的瞬时值(当前集合数量、熔断器状态)
//   - Histogram: 观测值的分布(请求耗时、合并耗时)
//
// # 使用示例
//
//	// 1. 启动时初始化
//	metrics.InitMetrics()
//
//	// 2. 在gin中暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 3. 业务代码中记录
//	err := c.Add(b)
//	metrics.RecordOperation("add_book", err)
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾(`_seconds`)
//  3. 标签只使用有限取值(op、result、method),不要用ISBN或集合ID做标签
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 集合业务指标

	// CollectionOperationsTotal 集合操作总数（Counter）
	// 标签：op（create/add_book/change_price/...）、result（success/错误码）
	CollectionOperationsTotal *prometheus.CounterVec

	// CollectionsActive 当前登记的集合数量（Gauge）
	CollectionsActive prometheus.Gauge

	// MergeDuration 集合合并耗时（Histogram）
	MergeDuration prometheus.Histogram

	// BooksImportedTotal 从图书目录导入的图书总数（Counter）
	BooksImportedTotal prometheus.Counter

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（Gauge）
	// 0=CLOSED, 1=HALF_OPEN, 2=OPEN
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数（Counter）
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 使用promauto注册到默认Registry,重复调用只生效一次
func InitMetrics() {
	initOnce.Do(func() {
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
				// 内存操作为主,桶偏小
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CollectionOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "collection_operations_total",
				Help: "集合操作总数",
			},
			[]string{"op", "result"},
		)

		CollectionsActive = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "collections_active",
				Help: "当前登记的集合数量",
			},
		)

		MergeDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "collection_merge_duration_seconds",
				Help:    "集合合并耗时（秒）",
				Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
		)

		BooksImportedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "books_imported_total",
				Help: "从图书目录导入的图书总数",
			},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=HALF_OPEN, 2=OPEN）",
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
	})
}

// IncCounter 递增Counter（便捷函数）
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// AddCounter Counter增加n
func AddCounter(counter prometheus.Counter, n float64) {
	if counter == nil {
		return
	}
	counter.Add(n)
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
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	if histogram == nil {
		return
	}
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}

// RecordOperation 记录一次集合操作的结果
// result取"success"或错误码
func RecordOperation(op string, result string) {
	IncCounterVec(CollectionOperationsTotal, map[string]string{
		"op":     op,
		"result": result,
	})
}
