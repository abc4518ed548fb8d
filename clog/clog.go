package clog

import "fmt"

// New 创建一个新的 Logger 实例。
//
// config 为 nil 时使用默认配置（info 级别，console 格式，输出 stdout）。
func New(config *Config, opts ...Option) (Logger, error) {
	if config == nil {
		config = &Config{}
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	o := applyOptions(opts...)

	return newLogger(config, o)
}

// Must 类似 New，但出错时 panic。仅用于初始化阶段。
func Must(config *Config, opts ...Option) Logger {
	logger, err := New(config, opts...)
	if err != nil {
		panic(fmt.Sprintf("clog: %v", err))
	}
	return logger
}
