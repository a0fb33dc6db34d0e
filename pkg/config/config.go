package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustIntent/pkg/domain/embedding"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	BodyLimitMB int    `mapstructure:"body_limit_mb"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

type MetricsConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	EnableLatency bool `mapstructure:"enable_latency"`
	EnablePairs   bool `mapstructure:"enable_pairs"`
}

type EmbeddingConfig struct {
	Provider       string        `mapstructure:"provider"`
	Endpoint       string        `mapstructure:"endpoint"`
	Model          string        `mapstructure:"model"`
	Region         string        `mapstructure:"region"`
	Format         string        `mapstructure:"format"`
	APIKey         string        `mapstructure:"api_key"`
	AccessKey      string        `mapstructure:"access_key"`
	SecretKey      string        `mapstructure:"secret_key"`
	BatchSize      int           `mapstructure:"batch_size"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// ProviderConfig is the embedding.Config handed to the provider locator.
func (c EmbeddingConfig) ProviderConfig() embedding.Config {
	return embedding.Config{
		Provider: c.Provider,
		Endpoint: c.Endpoint,
		Model:    c.Model,
		Region:   c.Region,
		Format:   c.Format,
		Credentials: embedding.Credentials{
			ApiKey:    c.APIKey,
			AccessKey: c.AccessKey,
			SecretKey: c.SecretKey,
		},
	}
}

type ScoringConfig struct {
	DefaultThreshold float64 `mapstructure:"default_threshold"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type QueueConfig struct {
	Key         string        `mapstructure:"key"`
	Workers     int           `mapstructure:"workers"`
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
	JobTTL      time.Duration `mapstructure:"job_ttl"`
}

type KafkaConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Topic   string `mapstructure:"topic"`
}

// Settings is the map form consumed by the kafka publisher.
func (c KafkaConfig) Settings() map[string]interface{} {
	return map[string]interface{}{
		"host":  c.Host,
		"port":  c.Port,
		"topic": c.Topic,
	}
}

type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config.yaml from configPath, ./config or the working directory,
// overlays environment variables (server.port -> SERVER_PORT) and validates
// the result. A missing file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaultValues(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit_mb", 16)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.enable_latency", true)
	v.SetDefault("metrics.enable_pairs", true)

	v.SetDefault("embedding.provider", "tfusem")
	v.SetDefault("embedding.endpoint", "")
	v.SetDefault("embedding.model", "")
	v.SetDefault("embedding.region", "")
	v.SetDefault("embedding.format", "")
	v.SetDefault("embedding.api_key", "")
	v.SetDefault("embedding.access_key", "")
	v.SetDefault("embedding.secret_key", "")
	v.SetDefault("embedding.batch_size", embedding.DefaultBatchSize)
	v.SetDefault("embedding.request_timeout", 60*time.Second)

	v.SetDefault("scoring.default_threshold", 0.6)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.tls", false)

	v.SetDefault("queue.key", "intent:jobs:queue")
	v.SetDefault("queue.workers", 2)
	v.SetDefault("queue.poll_timeout", 5*time.Second)
	v.SetDefault("queue.job_ttl", 24*time.Hour)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.host", "")
	v.SetDefault("kafka.port", "")
	v.SetDefault("kafka.topic", "")

	v.SetDefault("breaker.enabled", true)
	v.SetDefault("breaker.max_failures", 5)
	v.SetDefault("breaker.timeout", 30*time.Second)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	if c.Embedding.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("embedding.batch_size must be positive: %d", c.Embedding.BatchSize))
	}
	if t := c.Scoring.DefaultThreshold; math.IsNaN(t) || math.IsInf(t, 0) {
		errs = append(errs, fmt.Errorf("scoring.default_threshold must be finite"))
	}
	if c.Queue.Workers <= 0 {
		errs = append(errs, fmt.Errorf("queue.workers must be positive: %d", c.Queue.Workers))
	}
	if c.Queue.PollTimeout <= 0 {
		errs = append(errs, fmt.Errorf("queue.poll_timeout must be positive"))
	}
	if c.Kafka.Enabled && (c.Kafka.Host == "" || c.Kafka.Topic == "") {
		errs = append(errs, fmt.Errorf("kafka.host and kafka.topic are required when kafka is enabled"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
