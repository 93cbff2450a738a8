package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	// URL is the base connection string, e.g. mongodb://localhost:27017.
	URL string `validate:"required"`
	// Name is the logical database appended to URL.
	Name string `validate:"required"`
	// ConnectTimeoutMS bounds server selection during the startup ping.
	ConnectTimeoutMS int `validate:"gt=0"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port               string `validate:"required"`
	CORSAllowedOrigins string
	MetricsEnabled     bool
	SwaggerEnabled     bool
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `validate:"oneof=json console"`
}

// TracingConfig mirrors the standard OTEL_* variables the tracer provider
// honours. Exporters also read their own OTEL_EXPORTER_OTLP_* settings.
type TracingConfig struct {
	Disabled    bool
	ServiceName string `validate:"required"`
	Protocol    string
	Endpoint    string
	Sampler     string
	SamplerArg  float64 `validate:"gte=0,lte=1"`
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Tracing  TracingConfig
}

// Load reads configuration from environment variables.
// A .env file is auto-loaded by the entry point through godotenv/autoload;
// real environment variables take precedence.
func Load() (*AppConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &AppConfig{
		Server: ServerConfig{
			Port:               getEnv(k, "PORT", "4000"),
			CORSAllowedOrigins: getEnv(k, "CORS_ALLOWED_ORIGINS", "*"),
			MetricsEnabled:     getEnvBool(k, "METRICS_ENABLED", false),
			SwaggerEnabled:     getEnvBool(k, "SWAGGER_ENABLED", false),
		},
		Database: DatabaseConfig{
			URL:              getEnv(k, "DATABASE_CONNECTION_URL", ""),
			Name:             getEnv(k, "DATABASE_NAME", ""),
			ConnectTimeoutMS: getEnvInt(k, "DATABASE_CONNECT_TIMEOUT_MS", 1000),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv(k, "LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv(k, "LOG_FORMAT", "json")),
		},
		Tracing: TracingConfig{
			Disabled:    getEnvBool(k, "OTEL_SDK_DISABLED", false),
			ServiceName: getEnv(k, "OTEL_SERVICE_NAME", "bookapi"),
			Protocol:    getEnv(k, "OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
			Endpoint:    getEnv(k, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", getEnv(k, "OTEL_EXPORTER_OTLP_ENDPOINT", "")),
			Sampler:     getEnv(k, "OTEL_TRACES_SAMPLER", "parentbased_traceidratio"),
			SamplerArg:  getEnvFloat(k, "OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// keys are lowercased by the env provider.
func getEnv(k *koanf.Koanf, key, def string) string {
	if v := k.String(strings.ToLower(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(k *koanf.Koanf, key string, def bool) bool {
	if v := k.String(strings.ToLower(key)); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(k *koanf.Koanf, key string, def int) int {
	if v := k.String(strings.ToLower(key)); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(k *koanf.Koanf, key string, def float64) float64 {
	if v := k.String(strings.ToLower(key)); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
