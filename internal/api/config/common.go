package config

// Config 配置主体
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DB         DBConfig         `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Media      MediaConfig      `mapstructure:"media"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置，driver 支持 mysql / sqlite
type DBConfig struct {
	Driver      string `mapstructure:"driver"`
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AuthConfig 登录会话配置
type AuthConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	TokenTTL   int    `mapstructure:"token_ttl"` // 小时
	CookieName string `mapstructure:"cookie_name"`
	LoginPath  string `mapstructure:"login_path"`
}

// PaginationConfig 各列表页的分页大小
type PaginationConfig struct {
	Index   int `mapstructure:"index"`
	Group   int `mapstructure:"group"`
	Profile int `mapstructure:"profile"`
	Feed    int `mapstructure:"feed"`
}

// CacheConfig 首页快照缓存配置
type CacheConfig struct {
	IndexTTL int `mapstructure:"index_ttl"` // 秒
}

// MediaConfig 帖子配图存储配置
type MediaConfig struct {
	Root     string `mapstructure:"root"`
	MaxWidth int    `mapstructure:"max_width"`
}

// TemplatesConfig 模板路径
type TemplatesConfig struct {
	Glob string `mapstructure:"glob"`
}
