package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config 应用配置
type Config struct {
	Env              string `validate:"oneof=development production test"`
	Port             string `validate:"required,numeric"`
	OMDBAPIURL       string `validate:"required,url"`
	OMDBAPIKey       string `validate:"required"`
	StreamingAPIURL  string `validate:"required,url"`
	StreamingAPIHost string `validate:"required"`
	StreamingAPIKey  string `validate:"required"`
	PostersDir       string `validate:"required"`
	UpstreamTimeout  time.Duration
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Load 从环境变量加载并校验配置
func Load() (*Config, error) {
	timeoutSecs, _ := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "10"))
	if timeoutSecs <= 0 {
		timeoutSecs = 10
	}

	rps, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "5000"),
		OMDBAPIURL:       getEnv("OMDB_API_URL", "https://www.omdbapi.com"),
		OMDBAPIKey:       os.Getenv("OMDB_API_KEY"),
		StreamingAPIURL:  getEnv("STREAMING_API_URL", "https://streaming-availability.p.rapidapi.com"),
		StreamingAPIHost: getEnv("STREAMING_API_HOST", "streaming-availability.p.rapidapi.com"),
		StreamingAPIKey:  os.Getenv("STREAMING_API_KEY"),
		PostersDir:       getEnv("POSTERS_DIR", "./posters"),
		UpstreamTimeout:  time.Duration(timeoutSecs) * time.Second,
		RateLimitRPS:     rps,
		RateLimitBurst:   burst,
	}

	if err := validator.New().Struct(cfg); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, fmt.Errorf("配置项 %s 无效: %s", envName(errs[0].Field()), errs[0].Tag())
		}
		return nil, fmt.Errorf("配置校验失败: %w", err)
	}

	return cfg, nil
}

// envName 将配置字段名映射回环境变量名，便于报错定位
func envName(field string) string {
	names := map[string]string{
		"Env":              "APP_ENV",
		"Port":             "PORT",
		"OMDBAPIURL":       "OMDB_API_URL",
		"OMDBAPIKey":       "OMDB_API_KEY",
		"StreamingAPIURL":  "STREAMING_API_URL",
		"StreamingAPIHost": "STREAMING_API_HOST",
		"StreamingAPIKey":  "STREAMING_API_KEY",
		"PostersDir":       "POSTERS_DIR",
	}
	if name, ok := names[field]; ok {
		return name
	}
	return field
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
