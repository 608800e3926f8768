package config

import "os"

// Config untuk service ini. Secret JWT tidak ada di sini: middleware
// auth membacanya langsung dari env saat verifikasi token.
type Config struct {
	Port           string
	BackendBaseURL string
	RedisAddr      string
	KafkaBroker    string
	ServiceName    string
	AppEnv         string
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "3000"),
		BackendBaseURL: getenv("BACKEND_BASE_URL", "http://localhost:8000"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:    getenv("KAFKA_BROKER", "localhost:9092"),
		ServiceName:    getenv("SERVICE_NAME", "garment-store-api"),
		AppEnv:         getenv("APP_ENV", "development"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
