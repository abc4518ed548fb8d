package xerrors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	// nil 错误应返回 nil
	if err := Wrap(nil, "context"); err != nil {
		t.Errorf("Wrap(nil) = %v，期望 nil", err)
	}

	base := errors.New("db unreachable")
	wrapped := Wrap(base, "load projects")
	if wrapped == nil {
		t.Fatal("Wrap(err) = nil，期望非 nil")
	}
	if wrapped.Error() != "load projects: db unreachable" {
		t.Errorf("Wrap(err).Error() = %q，期望 %q", wrapped.Error(), "load projects: db unreachable")
	}

	// 应保留错误链
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is(wrapped, base) = false，期望 true")
	}
}

func TestWrapf(t *testing.T) {
	if err := Wrapf(nil, "member %d", 7); err != nil {
		t.Errorf("Wrapf(nil) = %v，期望 nil", err)
	}

	base := errors.New("not found")
	wrapped := Wrapf(base, "member %d", 7)
	if wrapped.Error() != "member 7: not found" {
		t.Errorf("Wrapf(err).Error() = %q，期望 %q", wrapped.Error(), "member 7: not found")
	}
}

func TestWithCode(t *testing.T) {
	if err := WithCode(nil, "CODE"); err != nil {
		t.Errorf("WithCode(nil) = %v，期望 nil", err)
	}

	base := errors.New("token expired")
	coded := WithCode(base, "TOKEN_EXPIRED")
	if coded.Error() != "[TOKEN_EXPIRED] token expired" {
		t.Errorf("WithCode(err).Error() = %q，期望 %q", coded.Error(), "[TOKEN_EXPIRED] token expired")
	}

	if code := GetCode(coded); code != "TOKEN_EXPIRED" {
		t.Errorf("GetCode(coded) = %q，期望 %q", code, "TOKEN_EXPIRED")
	}

	// 包装后的带码错误依然应能提取 code
	wrapped := Wrap(coded, "session check failed")
	if code := GetCode(wrapped); code != "TOKEN_EXPIRED" {
		t.Errorf("GetCode(wrapped) = %q，期望 %q", code, "TOKEN_EXPIRED")
	}

	if code := GetCode(errors.New("plain")); code != "" {
		t.Errorf("GetCode(plain) = %q，期望空串", code)
	}
}

func TestMust(t *testing.T) {
	v := Must(42, nil)
	if v != 42 {
		t.Errorf("Must(42, nil) = %d，期望 42", v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Must(_, err) 未触发 panic")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestCombine(t *testing.T) {
	if err := Combine(nil, nil); err != nil {
		t.Errorf("Combine(nil, nil) = %v，期望 nil", err)
	}

	e1 := errors.New("first")
	if err := Combine(nil, e1); err != e1 {
		t.Errorf("Combine(nil, e1) = %v，期望 e1", err)
	}

	e2 := errors.New("second")
	combined := Combine(e1, e2)
	if !errors.Is(combined, e1) || !errors.Is(combined, e2) {
		t.Error("Combine 应保留所有错误链")
	}

	var multi *MultiError
	if !errors.As(combined, &multi) {
		t.Fatal("Combine(e1, e2) 应返回 *MultiError")
	}
	if len(multi.Errors) != 2 {
		t.Errorf("len(multi.Errors) = %d，期望 2", len(multi.Errors))
	}
}
