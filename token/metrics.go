package token

// Token 组件导出的指标名称常量。

const (
	// MetricTokensIssued 令牌签发计数，标签: status
	MetricTokensIssued = "token_issued_total"

	// MetricTokensValidated 令牌验证计数，标签: status, error_type
	MetricTokensValidated = "token_validated_total"

	// MetricValidationDuration 令牌验证耗时 (Histogram)
	MetricValidationDuration = "token_validation_duration_seconds"
)
