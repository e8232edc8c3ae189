package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/xiebiao/bookcollection/internal/domain/collection"
	"github.com/xiebiao/bookcollection/pkg/logger"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Collection CollectionConfig `mapstructure:"collection"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// CollectionConfig 集合配置
type CollectionConfig struct {
	// DefaultCapacity 创建集合时未指定容量使用的默认值(不超过collection.Limit)
	DefaultCapacity int `mapstructure:"default_capacity"`
}

// CatalogConfig 图书目录数据源(MySQL books表,只读导入)
type CatalogConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`

	// 导入限流:每秒请求数与突发量
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`

	// 熔断:连续失败次数达到阈值后打开,Timeout后进入半开
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
}

// DSN 生成MySQL连接字符串
// 格式：user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// 注意：loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
func (d CatalogConfig) DSN() string {
	loc := url.QueryEscape(d.Loc)
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	Endpoint    string `mapstructure:"endpoint"` // OTLP gRPC地址
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
	Output string `mapstructure:"output"` // stdout | stderr | /path/to/file
}

// Load 加载配置
// 支持：
// 1. 默认查找./config/config.yaml或./config.yaml,找不到时使用默认值
// 2. 通过环境变量BOOKCOLLECTION_ENV指定环境（如config.prod.yaml）
// 3. 环境变量覆盖（如BOOKCOLLECTION_SERVER_PORT）
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	if env := v.GetString("env"); env != "" {
		v.SetConfigName("config." + env)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	return unmarshal(v)
}

// LoadFrom 从指定文件加载配置
func LoadFrom(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	setDefaults(v)

	// 环境变量绑定（BOOKCOLLECTION_CATALOG_PASSWORD → catalog.password）
	v.SetEnvPrefix("BOOKCOLLECTION")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("collection.default_capacity", 50)

	v.SetDefault("catalog.enabled", false)
	v.SetDefault("catalog.host", "127.0.0.1")
	v.SetDefault("catalog.port", 3306)
	v.SetDefault("catalog.charset", "utf8mb4")
	v.SetDefault("catalog.parse_time", true)
	v.SetDefault("catalog.loc", "Local")
	v.SetDefault("catalog.max_open_conns", 10)
	v.SetDefault("catalog.max_idle_conns", 5)
	v.SetDefault("catalog.conn_max_lifetime", time.Hour)
	v.SetDefault("catalog.rate_per_second", 5.0)
	v.SetDefault("catalog.burst", 10)
	v.SetDefault("catalog.breaker_max_failures", 5)
	v.SetDefault("catalog.breaker_timeout", 30*time.Second)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "book-collection")
	v.SetDefault("tracing.endpoint", "localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stdout")
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	if c := cfg.Collection.DefaultCapacity; c < 0 || c > collection.Limit {
		return fmt.Errorf("默认集合容量必须在0到%d之间: %d", collection.Limit, c)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}

	if cfg.Catalog.Enabled && cfg.Catalog.RatePerSecond <= 0 {
		return fmt.Errorf("目录导入限流速率必须大于0: %v", cfg.Catalog.RatePerSecond)
	}

	return nil
}
