package app

import (
	"strings"
	"time"

	"github.com/yungbote/langbridge-backend/internal/logger"
	"github.com/yungbote/langbridge-backend/internal/utils"
)

type Config struct {
	Port        string
	LogMode     string
	CacheTTL    time.Duration
	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	logMode := utils.GetEnv("LOG_MODE", "development", log)
	cacheTTLSeconds := utils.GetEnvAsInt("CACHE_TTL", 3600, log)
	corsOrigins := utils.GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173", log)

	origins := strings.Split(corsOrigins, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Config{
		Port:        port,
		LogMode:     logMode,
		CacheTTL:    time.Duration(cacheTTLSeconds) * time.Second,
		CORSOrigins: origins,
	}
}

func (c Config) DevMode() bool {
	return c.LogMode != "production"
}
