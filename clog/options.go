package clog

// Option 配置选项函数
type Option func(*options)

// options 内部选项结构
type options struct {
	namespace []string
}

// applyOptions 应用所有选项
func applyOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithNamespace 设置初始命名空间。
//
// 示例：
//
//	logger, _ := clog.New(cfg, clog.WithNamespace("webapp", "api"))
//	// 日志输出 namespace=webapp.api
func WithNamespace(parts ...string) Option {
	return func(o *options) {
		o.namespace = append(o.namespace, parts...)
	}
}
