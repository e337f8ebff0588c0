package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Routing
	Router    RouterConfig
	Load      LoadConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RouterConfig tunes matching and decision making.
type RouterConfig struct {
	Threshold             float64
	IntentWeight          float64
	DomainWeight          float64
	Lookahead             int
	BaseTime              time.Duration
	DefaultAgent          string
	DefaultService        string
	DefaultStrategy       string
	DefaultTimeout        time.Duration
	HistoryCapacity       int
	StatsQueueSize        int
	MonitorInterval       time.Duration
	HighPriorityThreshold int
	HybridAlpha           float64
	ProfilesPath          string // optional YAML/TOML catalogue; built-in agents when empty
}

// LoadConfig selects where agent load comes from.
type LoadConfig struct {
	Mode      string // static | redis
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

type RedisConfig struct {
	URL string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Router
	cfg.Router.Threshold = viper.GetFloat64("router.threshold")
	cfg.Router.IntentWeight = viper.GetFloat64("router.intent_weight")
	cfg.Router.DomainWeight = viper.GetFloat64("router.domain_weight")
	cfg.Router.Lookahead = viper.GetInt("router.lookahead")
	cfg.Router.BaseTime = viper.GetDuration("router.base_time")
	cfg.Router.DefaultAgent = viper.GetString("router.default_agent")
	cfg.Router.DefaultService = viper.GetString("router.default_service")
	cfg.Router.DefaultStrategy = viper.GetString("router.default_strategy")
	cfg.Router.DefaultTimeout = viper.GetDuration("router.default_timeout")
	cfg.Router.HistoryCapacity = viper.GetInt("router.history_capacity")
	cfg.Router.StatsQueueSize = viper.GetInt("router.stats_queue_size")
	cfg.Router.MonitorInterval = viper.GetDuration("router.monitor_interval")
	cfg.Router.HighPriorityThreshold = viper.GetInt("router.high_priority_threshold")
	cfg.Router.HybridAlpha = viper.GetFloat64("router.hybrid_alpha")
	cfg.Router.ProfilesPath = viper.GetString("router.profiles_path")

	// Load telemetry
	cfg.Load.Mode = viper.GetString("load.mode")
	cfg.Load.Timeout = viper.GetDuration("load.timeout")
	cfg.Load.CacheTTL = viper.GetDuration("load.cache_ttl")
	cfg.Load.CacheSize = viper.GetInt("load.cache_size")

	cfg.Redis.URL = viper.GetString("redis.url")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Router.Threshold <= 0 || c.Router.Threshold > 1 {
		return fmt.Errorf("router.threshold must be in (0, 1], got %v", c.Router.Threshold)
	}
	if c.Router.IntentWeight < 0 || c.Router.DomainWeight < 0 {
		return fmt.Errorf("router weights must not be negative")
	}
	if c.Router.HybridAlpha < 0 || c.Router.HybridAlpha > 1 {
		return fmt.Errorf("router.hybrid_alpha must be between 0 and 1, got %v", c.Router.HybridAlpha)
	}
	switch c.Load.Mode {
	case "static":
	case "redis":
		if c.Redis.URL == "" {
			return fmt.Errorf("load.mode=redis requires redis.url")
		}
	default:
		return fmt.Errorf("unknown load.mode %q", c.Load.Mode)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Router defaults
	viper.SetDefault("router.threshold", 0.5)
	viper.SetDefault("router.intent_weight", 0.6)
	viper.SetDefault("router.domain_weight", 0.4)
	viper.SetDefault("router.lookahead", 3)
	viper.SetDefault("router.base_time", "30s")
	viper.SetDefault("router.default_agent", "default_handler")
	viper.SetDefault("router.default_service", "command_master")
	viper.SetDefault("router.default_strategy", "intelligent")
	viper.SetDefault("router.default_timeout", "30s")
	viper.SetDefault("router.history_capacity", 1000)
	viper.SetDefault("router.stats_queue_size", 4096)
	viper.SetDefault("router.monitor_interval", "60s")
	viper.SetDefault("router.high_priority_threshold", 3)
	viper.SetDefault("router.hybrid_alpha", 0.7)

	// Load defaults
	viper.SetDefault("load.mode", "static")
	viper.SetDefault("load.timeout", "50ms")
	viper.SetDefault("load.cache_ttl", "2s")
	viper.SetDefault("load.cache_size", 1024)

	viper.SetDefault("rate_limit.per_min", 600)
}
