package cache

// Config 缓存组件配置
type Config struct {
	// Addr Redis 地址，默认 "localhost:6379"
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// Password Redis 密码
	Password string `json:"password" yaml:"password" mapstructure:"password"`

	// DB Redis 数据库编号
	DB int `json:"db" yaml:"db" mapstructure:"db"`

	// Prefix 键前缀，如 "restauri:"
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`

	// Serializer 序列化器类型 (json|msgpack)，默认 json
	Serializer string `json:"serializer" yaml:"serializer" mapstructure:"serializer"`
}

// setDefaults 设置默认值
func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.Serializer == "" {
		c.Serializer = "json"
	}
}
