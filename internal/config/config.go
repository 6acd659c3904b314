package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	errMissingPort          = errors.New("api.port is required")
	errMissingJWTSigningKey = errors.New("api.jwt_signing_key is required")
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Results  *ResultsConfig  `mapstructure:"results"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTTTL             time.Duration `mapstructure:"jwt_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// DSN builds a libpq keyword/value connection string.
func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig is optional. An empty address disables Redis.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ResultsConfig struct {
	IncludeZeroVotes bool `mapstructure:"include_zero_votes"`
}

// Loader reads the config file and keeps the viper instance for watching.
type Loader struct {
	v *viper.Viper
}

func NewLoader(path string) *Loader {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.jwt_ttl", 24*time.Hour)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("results.include_zero_votes", false)

	return &Loader{v: v}
}

func (l *Loader) Load() (*AppConfig, error) {
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("l.v.ReadInConfig -> %w", err)
	}

	return l.decode()
}

// Watch calls onChange with the freshly decoded config each time the file changes.
// Invalid edits are reported through onError and the previous config stays in effect.
func (l *Loader) Watch(onChange func(*AppConfig), onError func(error)) {
	l.v.OnConfigChange(func(e fsnotify.Event) {
		conf, err := l.decode()
		if err != nil {
			onError(fmt.Errorf("config reload after %v -> %w", e.Op, err))
			return
		}
		onChange(conf)
	})
	l.v.WatchConfig()
}

func (l *Loader) decode() (*AppConfig, error) {
	conf := &AppConfig{}
	if err := l.v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("l.v.Unmarshal -> %w", err)
	}

	if conf.API == nil {
		conf.API = &APIConfig{}
	}
	if conf.Gin == nil {
		conf.Gin = &GinConfig{}
	}
	if conf.Postgres == nil {
		conf.Postgres = &PostgresConfig{}
	}
	if conf.Redis == nil {
		conf.Redis = &RedisConfig{}
	}
	if conf.Results == nil {
		conf.Results = &ResultsConfig{}
	}

	if conf.API.Port == "" {
		return nil, errMissingPort
	}
	if conf.API.JWTSigningKey == "" {
		return nil, errMissingJWTSigningKey
	}

	return conf, nil
}

// Load reads the config file at path with environment overrides applied.
func Load(path string) (*AppConfig, error) {
	return NewLoader(path).Load()
}
