package metrics

// Config 指标系统配置。
//
// 典型 YAML 配置：
//
//	metrics:
//	  enabled: true
//	  service_name: "restauri-webapp"
//	  version: "v1.0.0"
//	  port: 9090
//	  path: "/metrics"
type Config struct {
	// Enabled 为 false 时 New 返回 noop Meter，所有记录操作都是空操作
	Enabled bool `mapstructure:"enabled"`

	// ServiceName 服务名，写入 OpenTelemetry Resource 的 service.name
	ServiceName string `mapstructure:"service_name"`

	// Version 服务版本，写入 service.version
	Version string `mapstructure:"version"`

	// Port Prometheus HTTP 服务器端口，大于 0 时启动暴露端点
	Port int `mapstructure:"port"`

	// Path Prometheus 指标路径，必须以 "/" 开头
	Path string `mapstructure:"path"`
}
