package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/dalmoeng/custos-go/cmd/pkg/logging"
)

// OcrServiceConfig points at the external OCR worker used for PDF imports.
type OcrServiceConfig struct {
	URL string `yaml:"url" env:"OCR_SERVICE_URL" env-default:"http://localhost:8600"`
}

type ServicesConfig struct {
	OcrService OcrServiceConfig `yaml:"ocr_service"`
}

type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env-default:"720h"` // 30 days
}

type PostgresConfig struct {
	Host     string `yaml:"host" env:"PG_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"PG_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"PG_USER" env-default:"root"`
	Password string `yaml:"password" env:"PG_PASSWORD" env-default:"secret"`
	Database string `yaml:"database" env:"PG_DATABASE" env-default:"custosdb"`
	SSLMode  string `yaml:"ssl_mode" env:"PG_SSLMODE" env-default:"disable"`
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// ExecutionConfig holds the tunable thresholds of the execution reconciler
// and the contract aggregator. Percent values are whole percents (10 == 10%).
type ExecutionConfig struct {
	VarianceMediumPercent float64 `yaml:"variance_medium_percent" env-default:"10"`
	VarianceHighPercent   float64 `yaml:"variance_high_percent" env-default:"20"`
	CompletionRatio       float64 `yaml:"completion_ratio" env-default:"0.98"`
	AttentionRatio        float64 `yaml:"attention_ratio" env-default:"0.85"`
	ProgressDelayPoints   float64 `yaml:"progress_delay_points" env-default:"15"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

type Config struct {
	IsDebug *bool `yaml:"is_debug" env-required:"true"`
	Listen  struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Auth      AuthConfig      `yaml:"auth"`
	CORS      CORSConfig      `yaml:"cors"`
	Services  ServicesConfig  `yaml:"services"`
	Execution ExecutionConfig `yaml:"execution"`
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")
		instance = &Config{}
		if err := cleanenv.ReadConfig("./cmd/config/config.yml", instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
	})

	return instance
}
