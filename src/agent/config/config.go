package config

import (
	"os"
	"strconv"
	"time"

	sharedconfig "github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/config"
)

type Config struct {
	Port string

	// Optional infrastructure; empty values disable the feature.
	RedisURL string
	MySQLDSN string

	CacheTTL      time.Duration
	ChatRateLimit time.Duration

	// AllowOrigins is a comma-separated CORS origin list; "*" allows all.
	AllowOrigins string

	AI sharedconfig.AI
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getSeconds(key string, def int) time.Duration {
	n, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil || n < 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8002"),
		RedisURL:      os.Getenv("REDIS_URL"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		CacheTTL:      getSeconds("CACHE_TTL_SECONDS", 3600),
		ChatRateLimit: getSeconds("CHAT_RATE_LIMIT_SECONDS", 2),
		AllowOrigins:  getenv("ALLOW_ORIGINS", "*"),
		AI:            sharedconfig.LoadAIFromEnv(),
	}
}
