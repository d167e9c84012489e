package app

import (
	"github.com/yungbote/gradadmin-backend/internal/pkg/env"
	"github.com/yungbote/gradadmin-backend/internal/platform/logger"
)

type Config struct {
	Port      string
	JWTSecret string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		Port:      env.GetEnv("PORT", "8080", log),
		JWTSecret: env.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
	}
}
