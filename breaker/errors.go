package breaker

import (
	"github.com/ShiruvatiNarasimha/restauri-core/xerrors"
)

// 熔断器模块预定义错误
var (
	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("breaker: config is nil")

	// ErrNilOperation 受保护函数为空
	ErrNilOperation = xerrors.New("breaker: operation is nil")

	// ErrCircuitOpen 熔断器打开，调用被拒绝
	ErrCircuitOpen = xerrors.New("breaker: circuit breaker is open")
)
