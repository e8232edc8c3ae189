// Package catalog 为图书目录数据源提供限流、熔断保护
//
// 目录库是外部依赖，导入时的调用链：
//
//	限流(rate.Limiter) → 熔断(gobreaker) → MySQL
//
// 限流拒绝返回ErrTooManyRequests；熔断打开时快速失败，返回ErrCatalogUnavailable
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/metrics"
)

// Options 保护参数
type Options struct {
	Name          string        // 熔断器名称(指标标签)
	RatePerSecond float64       // 每秒允许的请求数
	Burst         int           // 突发量
	MaxFailures   uint32        // 连续失败多少次后熔断
	Timeout       time.Duration // OPEN状态持续时间
}

// GuardedSource 带限流与熔断的目录数据源
type GuardedSource struct {
	name    string
	next    book.Source
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuardedSource 包装目录数据源
func NewGuardedSource(next book.Source, opts Options) *GuardedSource {
	if opts.Name == "" {
		opts.Name = "catalog"
	}
	if opts.MaxFailures == 0 {
		opts.MaxFailures = 5
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	g := &GuardedSource{
		name:    opts.Name,
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
	}

	g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: 1,
		Timeout:     opts.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= opts.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("目录熔断器状态变化", "name", name, "from", from.String(), "to", to.String())
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, stateValue(to))
		},
		// 调用方取消不计入失败
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": opts.Name}, stateValue(gobreaker.StateClosed))

	return g
}

// FindByISBNs 实现book.Source
func (g *GuardedSource) FindByISBNs(ctx context.Context, isbns []string) ([]*book.Book, error) {
	if !g.limiter.Allow() {
		g.record("rejected")
		return nil, apperrors.ErrTooManyRequests
	}

	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.next.FindByISBNs(ctx, isbns)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.record("rejected")
			return nil, book.ErrCatalogUnavailable.WithDetail("circuit=%s", g.breaker.State())
		}
		g.record("failure")
		return nil, err
	}

	g.record("success")
	return result.([]*book.Book), nil
}

// State 当前熔断器状态
func (g *GuardedSource) State() gobreaker.State {
	return g.breaker.State()
}

func (g *GuardedSource) record(result string) {
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{
		"name":   g.name,
		"result": result,
	})
}

// stateValue 状态 → 指标值(0=CLOSED, 1=HALF_OPEN, 2=OPEN)
func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
