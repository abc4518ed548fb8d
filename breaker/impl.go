package breaker

import (
	"context"
	"sync"
	"time"

	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/metrics"
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"

	"github.com/sony/gobreaker/v2"
)

const (
	defaultName             = "breaker"
	defaultFailureThreshold = 5
	defaultResetTimeout     = 60 * time.Second
)

// circuitBreaker 熔断器实现（非导出）
type circuitBreaker struct {
	cfg      *Config
	logger   clog.Logger
	fallback FallbackFunc
	gb       *gobreaker.CircuitBreaker[any]

	requestsTotal metrics.Counter
	successTotal  metrics.Counter
	failuresTotal metrics.Counter
	rejectsTotal  metrics.Counter
	stateChanges  metrics.Counter
	duration      metrics.Histogram

	// 健康快照统计。gobreaker 的内部计数在状态变更时会重置，
	// 无法用于累计统计，因此单独维护。
	mu                  sync.Mutex
	totalCalls          uint64
	failedCalls         uint64
	consecutiveFailures uint32
	successSamples      uint64
	avgLatency          time.Duration
	lastError           error
	lastFailureAt       time.Time
	lastTransition      time.Time
}

// newBreaker 创建熔断器实例（内部函数）
func newBreaker(cfg *Config, opt *options) (Breaker, error) {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaultFailureThreshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = defaultResetTimeout
	}

	cb := &circuitBreaker{
		cfg:      cfg,
		logger:   opt.logger,
		fallback: opt.fallback,

		requestsTotal: counterOrNoop(opt.meter, MetricRequestsTotal, "Total calls through the circuit breaker"),
		successTotal:  counterOrNoop(opt.meter, MetricSuccessTotal, "Successful calls through the circuit breaker"),
		failuresTotal: counterOrNoop(opt.meter, MetricFailuresTotal, "Failed calls through the circuit breaker"),
		rejectsTotal:  counterOrNoop(opt.meter, MetricRejectsTotal, "Calls rejected while the circuit is open"),
		stateChanges:  counterOrNoop(opt.meter, MetricStateChanges, "Circuit breaker state transitions"),
		duration: histogramOrNoop(opt.meter, MetricRequestDuration, "Call duration through the circuit breaker",
			metrics.WithUnit("s")),

		lastTransition: time.Now(),
	}

	settings := gobreaker.Settings{
		Name: cfg.Name,
		// 半开状态只放行单次探测
		MaxRequests: 1,
		Timeout:     cfg.ResetTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			cb.onStateChange(name, from, to)
		},
	}
	cb.gb = gobreaker.NewCircuitBreaker[any](settings)

	cb.logger.Info("circuit breaker created",
		clog.String("name", cfg.Name),
		clog.Int("failure_threshold", int(cfg.FailureThreshold)),
		clog.Duration("reset_timeout", cfg.ResetTimeout))

	return cb, nil
}

// Execute 执行受熔断保护的函数
func (cb *circuitBreaker) Execute(ctx context.Context, fn func() (any, error)) (any, error) {
	if fn == nil {
		return nil, ErrNilOperation
	}

	start := time.Now()
	result, err := cb.gb.Execute(fn)
	elapsed := time.Since(start)

	rejected := err != nil &&
		(xerrors.Is(err, gobreaker.ErrOpenState) || xerrors.Is(err, gobreaker.ErrTooManyRequests))

	cb.record(err, elapsed, rejected)
	cb.observe(ctx, err, elapsed, rejected)

	if rejected {
		cb.logger.Warn("circuit breaker open, rejecting call",
			clog.String("name", cb.cfg.Name))

		// 执行降级逻辑
		if cb.fallback != nil {
			fallbackErr := cb.fallback(ctx, cb.cfg.Name, ErrCircuitOpen)
			if fallbackErr == nil {
				return nil, nil
			}
			return nil, fallbackErr
		}
		return nil, ErrCircuitOpen
	}

	return result, err
}

// State 获取当前熔断器状态
func (cb *circuitBreaker) State() State {
	return fromGobreakerState(cb.gb.State())
}

// Health 获取只读的健康快照
func (cb *circuitBreaker) Health() Health {
	// gb.State() 不能在持有 cb.mu 时调用：状态变更回调在 gobreaker
	// 内部锁中触发并获取 cb.mu，反向加锁会死锁
	state := fromGobreakerState(cb.gb.State())

	cb.mu.Lock()
	defer cb.mu.Unlock()

	h := Health{
		State:               state.String(),
		ConsecutiveFailures: cb.consecutiveFailures,
		TotalCalls:          cb.totalCalls,
		FailedCalls:         cb.failedCalls,
		AvgLatency:          cb.avgLatency,
		Uptime:              time.Since(cb.lastTransition),
		LastFailureAt:       cb.lastFailureAt,
	}
	if cb.totalCalls > 0 {
		h.ErrorRate = float64(cb.failedCalls) / float64(cb.totalCalls) * 100
	}
	if cb.lastError != nil {
		h.LastError = cb.lastError.Error()
	}
	return h
}

// record 更新健康快照统计
// 被拒绝的调用只计入总数，不影响失败计数和连续失败计数
func (cb *circuitBreaker) record(err error, elapsed time.Duration, rejected bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.totalCalls++

	switch {
	case rejected:
	case err != nil:
		cb.failedCalls++
		cb.consecutiveFailures++
		cb.lastError = err
		cb.lastFailureAt = time.Now()
	default:
		cb.consecutiveFailures = 0
		cb.successSamples++
		n := time.Duration(cb.successSamples)
		cb.avgLatency = (cb.avgLatency*(n-1) + elapsed) / n
	}
}

// observe 上报指标
func (cb *circuitBreaker) observe(ctx context.Context, err error, elapsed time.Duration, rejected bool) {
	name := metrics.L(LabelName, cb.cfg.Name)

	cb.requestsTotal.Inc(ctx, name)
	switch {
	case rejected:
		cb.rejectsTotal.Inc(ctx, name)
	case err != nil:
		cb.failuresTotal.Inc(ctx, name)
		cb.duration.Record(ctx, elapsed.Seconds(), name)
	default:
		cb.successTotal.Inc(ctx, name)
		cb.duration.Record(ctx, elapsed.Seconds(), name)
	}
}

// onStateChange 状态变更回调
func (cb *circuitBreaker) onStateChange(name string, from gobreaker.State, to gobreaker.State) {
	cb.mu.Lock()
	cb.lastTransition = time.Now()
	cb.mu.Unlock()

	cb.logger.Info("circuit breaker state changed",
		clog.String("name", name),
		clog.String("from", fromGobreakerState(from).String()),
		clog.String("to", fromGobreakerState(to).String()))

	cb.stateChanges.Inc(context.Background(),
		metrics.L(LabelName, name),
		metrics.L(LabelFromState, fromGobreakerState(from).String()),
		metrics.L(LabelToState, fromGobreakerState(to).String()))
}

// fromGobreakerState 将 gobreaker.State 转换为 State
func fromGobreakerState(state gobreaker.State) State {
	switch state {
	case gobreaker.StateClosed:
		return StateClosed
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateClosed
	}
}
