package config

import (
	"strings"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Global
		CORS
		RatingSweep
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	CORS struct {
		AllowedOrigins []string
	}
	RatingSweep struct {
		Enabled  bool
		Schedule string // Cron format: "0 * * * *" = hourly
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 5001)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("rating_sweep_enabled", false)
	v.SetDefault("rating_sweep_schedule", "0 * * * *") // Hourly at :00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		CORS: CORS{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RatingSweep: RatingSweep{
			Enabled:  v.GetBool("RATING_SWEEP_ENABLED"),
			Schedule: v.GetString("RATING_SWEEP_SCHEDULE"),
		},
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
