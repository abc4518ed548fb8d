package metrics

import (
	"context"
	"testing"
)

func TestHTTPStatusClass(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{200, "2xx"},
		{301, "3xx"},
		{404, "4xx"},
		{503, "5xx"},
		{99, "unknown"},
		{600, "unknown"},
	}

	for _, tt := range tests {
		if got := HTTPStatusClass(tt.status); got != tt.want {
			t.Errorf("HTTPStatusClass(%d) = %q，期望 %q", tt.status, got, tt.want)
		}
	}
}

func TestHTTPOutcome(t *testing.T) {
	if got := HTTPOutcome(204); got != OutcomeSuccess {
		t.Errorf("HTTPOutcome(204) = %q，期望 success", got)
	}
	if got := HTTPOutcome(401); got != OutcomeError {
		t.Errorf("HTTPOutcome(401) = %q，期望 error", got)
	}
	if got := HTTPOutcome(500); got != OutcomeError {
		t.Errorf("HTTPOutcome(500) = %q，期望 error", got)
	}
}

func TestLabelKey(t *testing.T) {
	// 与标签顺序无关
	a := labelKey([]Label{L("method", "GET"), L("status", "200")})
	b := labelKey([]Label{L("status", "200"), L("method", "GET")})
	if a != b {
		t.Errorf("labelKey 不应依赖标签顺序: %q != %q", a, b)
	}

	if labelKey(nil) != "" {
		t.Error("labelKey(nil) 应返回空串")
	}
}

func TestNewDisabled(t *testing.T) {
	meter, err := New(&Config{Enabled: false})
	if err != nil {
		t.Fatalf("New(disabled) 失败: %v", err)
	}

	ctx := context.Background()
	counter, err := meter.Counter("noop_total", "noop")
	if err != nil {
		t.Fatalf("noop Counter 创建失败: %v", err)
	}
	counter.Inc(ctx, L("k", "v"))

	gauge, _ := meter.Gauge("noop_gauge", "noop")
	gauge.Set(ctx, 1)
	gauge.Inc(ctx)
	gauge.Dec(ctx)

	histogram, _ := meter.Histogram("noop_seconds", "noop", WithUnit("s"))
	histogram.Record(ctx, 0.5)

	if err := meter.Shutdown(ctx); err != nil {
		t.Errorf("noop Shutdown = %v，期望 nil", err)
	}
}

func TestNewNilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("New(nil) 应返回错误")
	}
}
