package config

import "github.com/ShiruvatiNarasimha/restauri-core/xerrors"

// ErrValidationFailed 配置验证失败
var ErrValidationFailed = xerrors.New("config: validation failed")

// IsValidationFailed 检查错误是否为配置验证失败
func IsValidationFailed(err error) bool {
	return xerrors.Is(err, ErrValidationFailed)
}
