package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"forecast-api/pkg/resource"
)

const (
	defaultPropertiesPath = "configs/application.yml"
	defaultMessagesPath   = "configs/messages.yml"
)

// Config is the process configuration, loaded once at startup and passed to constructors.
type Config struct {
	ApplicationName string
	Port            string
	ContextPath     string
	LogLevel        string
	MessagesPath    string
	Weather         WeatherConfig
	Cors            CorsConfig
	FrontendDir     string
	ShutdownTimeout time.Duration
	MaxConnections  int
}

// WeatherConfig holds the upstream forecast API settings.
type WeatherConfig struct {
	BaseURL           string
	APIKey            string
	Units             string
	ConnectionTimeout time.Duration
	ReadTimeout       time.Duration
}

type CorsConfig struct {
	AllowedOrigins []string
}

// Load reads .env (if present), then the properties file named by PROPERTIES_FILE_PATH.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("fail to load .env: %w", err)
	}

	if err := resource.Init(lookupOrDefault("PROPERTIES_FILE_PATH", defaultPropertiesPath)); err != nil {
		return nil, err
	}

	return FromProperties(), nil
}

// FromProperties builds a Config from already loaded properties.
func FromProperties() *Config {
	return &Config{
		ApplicationName: resource.GetStringOrDefault("app.name", "forecast-api"),
		Port:            resource.GetStringOrDefault("app.server.port", "5000"),
		ContextPath:     strings.TrimRight(resource.GetString("app.server.context-path"), "/"),
		LogLevel:        resource.GetStringOrDefault("app.log.level", "info"),
		MessagesPath:    lookupOrDefault("MESSAGES_FILE_PATH", defaultMessagesPath),
		Weather: WeatherConfig{
			BaseURL:           resource.GetString("app.weather.base-url"),
			APIKey:            resource.GetString("app.weather.api-key"),
			Units:             resource.GetStringOrDefault("app.weather.units", "imperial"),
			ConnectionTimeout: durationOrDefault("app.weather.connection-timeout", 10*time.Second),
			ReadTimeout:       durationOrDefault("app.weather.read-timeout", 60*time.Second),
		},
		Cors: CorsConfig{
			AllowedOrigins: splitOrigins(resource.Get("app.cors.allowed-origins")),
		},
		FrontendDir:     resource.GetStringOrDefault("app.frontend.dir", "frontend"),
		ShutdownTimeout: durationOrDefault("app.server.shutdown-timeout", 10*time.Second),
		MaxConnections:  resource.GetInt("app.server.max-connections"),
	}
}

func lookupOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func durationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := resource.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

// splitOrigins accepts a YAML list or a comma separated string.
func splitOrigins(raw any) []string {
	var parts []string
	switch v := raw.(type) {
	case string:
		parts = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	case []string:
		parts = v
	}

	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
