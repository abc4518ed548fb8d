package metrics

// Label 指标标签，为指标添加维度信息。
//
// 注意避免高基数标签（用户 ID、请求 ID 等），会显著影响存储和查询性能。
type Label struct {
	Key   string
	Value string
}

// L 便捷构造函数，创建一个 Label 实例。
//
//	counter.Inc(ctx, metrics.L("method", "GET"))
func L(key, value string) Label {
	return Label{Key: key, Value: value}
}
