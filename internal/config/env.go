package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
	"http://127.0.0.1:3001",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

type Env struct {
	AppAddr     string
	GinMode     string
	LogLevel    string
	CORSOrigins []string
	// JWTSecret enables bearer token checks when non-empty.
	JWTSecret string
}

// LoadEnv reads configuration from the environment. A .env file in the working directory, when
// present, fills in variables that are not already set.
func LoadEnv() Env {
	_ = godotenv.Load()
	return envFromOS()
}

func envFromOS() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogLevel:    logLevel,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return append([]string(nil), defaultCORSOrigins...)
	}
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultCORSOrigins...)
	}
	return out
}
