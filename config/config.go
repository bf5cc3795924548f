package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port          string
	GinMode       string
	StoreBackend  string // postgres | memory
	DatabaseURL   string
	RedisURL      string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	LogLevel      string

	NotificationChannel string        // Redis Pub/Sub 频道
	LikeCountTTL        time.Duration // 点赞数缓存有效期
	FeedDefaultLimit    int
	RequestTimeout      time.Duration
}

func Load() *Config {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             os.Getenv("GIN_MODE"),
		StoreBackend:        getEnv("STORE_BACKEND", BackendPostgres),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		RedisURL:            os.Getenv("REDIS_URL"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		NotificationChannel: getEnv("NOTIFICATION_CHANNEL", "social:notifications"),
		LikeCountTTL:        time.Duration(getEnvInt("LIKE_COUNT_TTL_SECONDS", 3600)) * time.Second,
		FeedDefaultLimit:    getEnvInt("FEED_DEFAULT_LIMIT", 50),
		RequestTimeout:      time.Duration(getEnvInt("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 解析失败时使用默认值
func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return v
}
