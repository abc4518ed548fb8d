package breaker

import (
	"context"

	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/metrics"
)

// FallbackFunc 熔断打开时的降级回调。
// 返回 nil 表示降级处理成功，Execute 返回 (nil, nil)；
// 返回非 nil 错误则该错误透传给调用方。
type FallbackFunc func(ctx context.Context, name string, err error) error

// Option 配置选项函数
type Option func(*options)

// options 内部选项结构
type options struct {
	logger   clog.Logger
	meter    metrics.Meter
	fallback FallbackFunc
}

// defaultOptions 创建默认选项，使用 Discard() 作为空实现
func defaultOptions() *options {
	return &options{
		logger: clog.Discard(),
		meter:  metrics.Discard(),
	}
}

// WithLogger 注入日志记录器，自动添加 "breaker" 命名空间
func WithLogger(l clog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l.WithNamespace("breaker")
		}
	}
}

// WithMeter 注入指标 Meter
func WithMeter(m metrics.Meter) Option {
	return func(o *options) {
		if m != nil {
			o.meter = m
		}
	}
}

// WithFallback 设置熔断打开时的降级回调
func WithFallback(fn FallbackFunc) Option {
	return func(o *options) {
		o.fallback = fn
	}
}

// counterOrNoop 创建计数器，失败时退化为空实现
func counterOrNoop(m metrics.Meter, name, desc string) metrics.Counter {
	c, err := m.Counter(name, desc)
	if err != nil {
		c, _ = metrics.Discard().Counter(name, desc)
	}
	return c
}

// histogramOrNoop 创建直方图，失败时退化为空实现
func histogramOrNoop(m metrics.Meter, name, desc string, opts ...metrics.MetricOption) metrics.Histogram {
	h, err := m.Histogram(name, desc, opts...)
	if err != nil {
		h, _ = metrics.Discard().Histogram(name, desc)
	}
	return h
}
