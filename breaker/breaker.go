// Package breaker 提供熔断器组件，为易故障的下游依赖（数据库、缓存等）
// 提供故障隔离与自动恢复。
//
// 每个受保护的资源持有一个显式构造的 Breaker 实例，由执行受保护
// 调用的组件负责创建并传递引用，不存在进程级单例。
//
// 状态机：连续失败达到阈值后 CLOSED → OPEN；OPEN 持续 ResetTimeout
// 后由下一次调用触发 OPEN → HALF_OPEN（无后台定时器）；半开状态放行
// 单次探测，成功则 CLOSED，失败则回到 OPEN。
//
// ## 基本使用
//
//	brk, _ := breaker.New(&breaker.Config{
//		Name:             "content-db",
//		FailureThreshold: 3,
//		ResetTimeout:     30 * time.Second,
//	}, breaker.WithLogger(logger))
//
//	result, err := brk.Execute(ctx, func() (any, error) {
//		return repo.ListProjects(ctx)
//	})
//	if errors.Is(err, breaker.ErrCircuitOpen) {
//		// 下游不可用，返回 503 而不是同步重试
//	}
package breaker

import (
	"context"
	"time"
)

// Breaker 熔断器核心接口
type Breaker interface {
	// Execute 执行受熔断保护的函数。
	// 熔断打开时立即返回 ErrCircuitOpen，不调用 fn；
	// fn 的失败原样透传给调用方。
	Execute(ctx context.Context, fn func() (any, error)) (any, error)

	// State 获取当前熔断器状态
	State() State

	// Health 获取只读的健康快照
	Health() Health
}

// State 熔断器状态
type State int

const (
	// StateClosed 闭合状态（正常放行）
	StateClosed State = iota
	// StateHalfOpen 半开状态（单次探测恢复）
	StateHalfOpen
	// StateOpen 打开状态（熔断中，拒绝调用）
	StateOpen
)

// String 返回状态的字符串表示
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half_open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Health 熔断器健康快照
type Health struct {
	// State 当前状态名 (closed|half_open|open)
	State string `json:"state"`

	// ConsecutiveFailures 连续失败计数，成功后清零
	ConsecutiveFailures uint32 `json:"consecutive_failures"`

	// TotalCalls 调用总数（含被拒绝的调用）
	TotalCalls uint64 `json:"total_calls"`

	// FailedCalls 失败调用数（不含被拒绝的调用）
	FailedCalls uint64 `json:"failed_calls"`

	// ErrorRate 失败率百分比，无调用时为 0
	ErrorRate float64 `json:"error_rate"`

	// AvgLatency 成功调用的滚动平均耗时
	AvgLatency time.Duration `json:"avg_latency"`

	// Uptime 距上次状态变更的时长
	Uptime time.Duration `json:"uptime"`

	// LastError 最后一次失败的错误消息，无失败时为空
	LastError string `json:"last_error,omitempty"`

	// LastFailureAt 最后一次失败时间，零值表示从未失败
	LastFailureAt time.Time `json:"last_failure_at,omitzero"`
}

// Config 熔断器配置
type Config struct {
	// Name 熔断器名称，用于日志和指标标签（默认："breaker"）
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// FailureThreshold 触发熔断的连续失败次数（默认：5）
	FailureThreshold uint32 `json:"failure_threshold" yaml:"failure_threshold" mapstructure:"failure_threshold"`

	// ResetTimeout 打开状态持续时间（默认：60s）
	// 超时后下一次调用进入半开状态探测恢复
	ResetTimeout time.Duration `json:"reset_timeout" yaml:"reset_timeout" mapstructure:"reset_timeout"`
}

// New 创建熔断器实例
//
// 参数:
//   - cfg: 熔断器配置
//   - opts: 可选参数 (Logger, Meter, Fallback)
func New(cfg *Config, opts ...Option) (Breaker, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	opt := defaultOptions()
	for _, o := range opts {
		o(opt)
	}

	return newBreaker(cfg, opt)
}
