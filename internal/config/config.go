package config

import (
	"os"
	"strconv"
	"time"
)

// Config конфигурация сервера
type Config struct {
	// Сервер
	Port string `json:"port"`

	// Пути
	DatabasePath string `json:"database_path"`
	UploadsDir   string `json:"uploads_dir"`
	ResultsDir   string `json:"results_dir"`

	// Загрузка файлов
	MaxUploadSizeMB int64 `json:"max_upload_size_mb"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Обработка
	KeyMode       string `json:"key_mode"`
	LinkURLPrefix string `json:"link_url_prefix"`

	// Подсказки похожих магазинов
	SuggestThreshold float64 `json:"suggest_threshold"`
	SuggestLanguage  string  `json:"suggest_language"`

	// Ограничение частоты запросов
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		// Сервер
		Port: getEnv("SERVER_PORT", "9999"),

		// Пути
		DatabasePath: getEnv("DATABASE_PATH", "jobs.db"),
		UploadsDir:   getEnv("UPLOADS_DIR", "data/uploads"),
		ResultsDir:   getEnv("RESULTS_DIR", "data/results"),

		// Загрузка файлов
		MaxUploadSizeMB: int64(getEnvInt("MAX_UPLOAD_SIZE_MB", 50)),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Обработка
		KeyMode:       getEnv("DEDUP_KEY_MODE", "store"),
		LinkURLPrefix: getEnv("LINK_URL_PREFIX", ""),

		// Подсказки
		SuggestThreshold: getEnvFloat("SUGGEST_THRESHOLD", 0.72),
		SuggestLanguage:  getEnv("SUGGEST_LANGUAGE", "spanish"),

		// Ограничение частоты
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MaxUploadSizeBytes лимит размера загружаемого файла в байтах
func (c *Config) MaxUploadSizeBytes() int64 {
	return c.MaxUploadSizeMB << 20
}

// getEnv получает переменную окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает целочисленную переменную окружения
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvFloat получает вещественную переменную окружения
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
