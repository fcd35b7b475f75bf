package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

const ModeProduction = "production"

type WebServerConfig struct {
	Port            string `mapstructure:"port"`
	IP              string `mapstructure:"ip"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type RedisConfig struct {
	Address          string `mapstructure:"address"`
	Password         string `mapstructure:"password"`
	DB               int    `mapstructure:"db"`
	PoolSize         int    `mapstructure:"pool_size"`
	MinIdleConns     int    `mapstructure:"min_idle_conns"`
	OperationTimeout int    `mapstructure:"operation_timeout"`
}

type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	TokenExpiryDays int    `mapstructure:"token_expiry_days"`
}

type TesterConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	DevPort        string `mapstructure:"dev_port"`
}

type CacheConfig struct {
	Enabled     bool `mapstructure:"enabled"`
	MaxSizeMB   int  `mapstructure:"max_size_mb"`
	TTLSeconds  int  `mapstructure:"ttl_seconds"`
	CounterSize int  `mapstructure:"counter_size"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type Config struct {
	Mode      string          `mapstructure:"mode"`
	WebServer WebServerConfig `mapstructure:"webserver"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Tester    TesterConfig    `mapstructure:"tester"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// Production reports whether the service runs in production mode. Outside
// production the redirect route answers with a JSON preview instead of an
// actual 302, and registration is open.
func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func LoadConfig() (Config, error) {
	var config Config

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Enable environment variable overrides, e.g. REDIRECTS_WEBSERVER_PORT
	viper.SetEnvPrefix("REDIRECTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Error reading config file: %v", err)
			return config, err
		}
		// Missing file is fine, defaults plus env cover everything
	}

	if err := viper.Unmarshal(&config); err != nil {
		log.Printf("Unable to decode into struct: %v", err)
		return config, err
	}

	return config, nil
}

func MustLoadConfig() Config {
	config, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

func setDefaults() {
	viper.SetDefault("mode", "development")

	// WebServer defaults
	viper.SetDefault("webserver.port", "3000")
	viper.SetDefault("webserver.ip", "0.0.0.0")
	viper.SetDefault("webserver.read_timeout", 15)
	viper.SetDefault("webserver.write_timeout", 15)
	viper.SetDefault("webserver.shutdown_timeout", 30)

	// Redis defaults
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 10)
	viper.SetDefault("redis.min_idle_conns", 5)
	viper.SetDefault("redis.operation_timeout", 5)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "changeme")
	viper.SetDefault("auth.token_expiry_days", 7)

	// Tester defaults
	viper.SetDefault("tester.timeout_seconds", 3)
	viper.SetDefault("tester.dev_port", "3000")

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size_mb", 16)
	viper.SetDefault("cache.ttl_seconds", 60)
	viper.SetDefault("cache.counter_size", 100000)

	// RateLimit defaults
	viper.SetDefault("ratelimit.requests_per_second", 0.17) // ~100 requests per 10 minutes
	viper.SetDefault("ratelimit.burst", 20)
}
