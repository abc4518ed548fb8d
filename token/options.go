package token

import (
	"github.com/ShiruvatiNarasimha/restauri-core/clog"
	"github.com/ShiruvatiNarasimha/restauri-core/metrics"
)

// Option 配置选项函数
type Option func(*options)

// options 内部选项结构
type options struct {
	logger clog.Logger
	meter  metrics.Meter
}

// defaultOptions 创建默认选项，使用 Discard() 作为空实现
func defaultOptions() *options {
	return &options{
		logger: clog.Discard(),
		meter:  metrics.Discard(),
	}
}

// WithLogger 注入日志记录器，自动添加 "token" 命名空间
func WithLogger(l clog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l.WithNamespace("token")
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
