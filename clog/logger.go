// Package clog 为 restauri-core 提供基于 slog 的结构化日志组件。
//
// 特性：
//   - 抽象接口，不暴露底层实现（slog）
//   - 支持层级命名空间，便于区分组件日志
//   - 零外部依赖（仅依赖 Go 标准库）
//   - 基于 slog.LevelVar 的运行时动态级别调整
//
// 基本使用：
//
//	logger, _ := clog.New(&clog.Config{
//	    Level:  "info",
//	    Format: "console",
//	    Output: "stdout",
//	})
//	logger.Info("server started", clog.String("addr", ":8080"))
package clog

import "context"

// Logger 日志接口，提供结构化日志记录功能。
//
// 支持五个日志级别：Debug、Info、Warn、Error、Fatal，
// 每个级别都有带 Context 和不带 Context 的版本。
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	DebugContext(ctx context.Context, msg string, fields ...Field)
	InfoContext(ctx context.Context, msg string, fields ...Field)
	WarnContext(ctx context.Context, msg string, fields ...Field)
	ErrorContext(ctx context.Context, msg string, fields ...Field)
	FatalContext(ctx context.Context, msg string, fields ...Field)

	// With 创建一个带有预设字段的子 Logger，预设字段出现在所有日志中。
	With(fields ...Field) Logger

	// WithNamespace 创建一个扩展命名空间的子 Logger。
	// 命名空间追加到现有命名空间后面，以 "." 连接后输出在 namespace 字段。
	WithNamespace(parts ...string) Logger

	// SetLevel 运行时调整日志级别，对同一 handler 派生的所有子 Logger 生效。
	SetLevel(level Level) error

	// Flush 强制同步缓冲区，输出到文件时确保落盘。
	Flush()
}
