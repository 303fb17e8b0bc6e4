package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "yatube.db")
	viper.SetDefault("database.max_idle", 10)
	viper.SetDefault("database.max_open", 100)
	viper.SetDefault("database.max_lifetime", 60)

	viper.SetDefault("auth.jwt_secret", "yatube-dev-secret")
	viper.SetDefault("auth.token_ttl", 24)
	viper.SetDefault("auth.cookie_name", "yatube_session")
	viper.SetDefault("auth.login_path", "/auth/login/")

	viper.SetDefault("pagination.index", 10)
	viper.SetDefault("pagination.group", 10)
	viper.SetDefault("pagination.profile", 10)
	viper.SetDefault("pagination.feed", 10)

	viper.SetDefault("cache.index_ttl", 20)

	viper.SetDefault("media.root", "./media")
	viper.SetDefault("media.max_width", 1280)

	viper.SetDefault("templates.glob", "./web/templates/*.html")
}
