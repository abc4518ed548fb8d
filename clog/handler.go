package clog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// handlerState 持有 handler 及其可变部分，供所有派生 Logger 共享。
type handlerState struct {
	handler slog.Handler
	level   *slog.LevelVar
	writer  io.Writer
}

// newHandlerState 根据配置创建底层 slog.Handler。
//
// 级别通过 slog.LevelVar 注入，SetLevel 对同一 handler 派生的所有
// Logger 立即生效。
func newHandlerState(cfg *Config) (*handlerState, error) {
	writer, err := resolveWriter(cfg.Output)
	if err != nil {
		return nil, err
	}

	level, _ := ParseLevel(cfg.Level)
	levelVar := new(slog.LevelVar)
	levelVar.Set(level.toSlogLevel())

	opts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// 将 Fatal 的自定义级别值渲染为可读名称
			if a.Key == slog.LevelKey {
				if lv, ok := a.Value.Any().(slog.Level); ok && lv >= FatalLevel.toSlogLevel() {
					a.Value = slog.StringValue("FATAL")
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return &handlerState{
		handler: handler,
		level:   levelVar,
		writer:  writer,
	}, nil
}

// resolveWriter 将 Output 配置解析为 io.Writer。
func resolveWriter(output string) (io.Writer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log output %s: %w", output, err)
		}
		return f, nil
	}
}

// setLevel 动态调整级别。
func (h *handlerState) setLevel(level Level) error {
	h.level.Set(level.toSlogLevel())
	return nil
}

// flush 同步输出目标，仅当输出是普通文件时有实际效果。
func (h *handlerState) flush() {
	if f, ok := h.writer.(*os.File); ok {
		if f != os.Stdout && f != os.Stderr {
			_ = f.Sync()
		}
	}
}
