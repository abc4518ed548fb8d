package cache

// Metrics 指标常量定义
const (
	// MetricHitsTotal 缓存命中数 (Counter)
	MetricHitsTotal = "cache_hits_total"

	// MetricMissesTotal 缓存未命中数 (Counter)
	MetricMissesTotal = "cache_misses_total"
)
