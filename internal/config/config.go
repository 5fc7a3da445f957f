package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerPort       int      `json:"server_port"`
	AppEnv           string   `json:"app_env"`
	CORSAllowOrigins []string `json:"cors_allow_origins"`
	GlobalRateLimit  int      `json:"global_rate_limit"`
	PasswordScheme   string   `json:"password_scheme"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8000
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute per IP
	}

	corsOrigins := strings.Split(getEnvWithDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}

	return &Config{
		ServerPort:       serverPort,
		AppEnv:           os.Getenv("APP_ENV"),
		CORSAllowOrigins: corsOrigins,
		GlobalRateLimit:  globalRateLimit,
		PasswordScheme:   getEnvWithDefault("PASSWORD_SCHEME", "sha256"),
	}, nil
}
