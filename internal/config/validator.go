package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"storelinks/dataset"
)

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	// Валидация путей
	if c.DatabasePath == "" {
		errors = append(errors, "database path is required")
	}
	if c.UploadsDir == "" {
		errors = append(errors, "uploads dir is required")
	}
	if c.ResultsDir == "" {
		errors = append(errors, "results dir is required")
	}

	// Валидация лимита загрузки
	if c.MaxUploadSizeMB < 1 {
		errors = append(errors, "max upload size must be at least 1 MB")
	}

	// Валидация connection pooling
	if c.MaxOpenConns < 1 {
		errors = append(errors, "max open connections must be at least 1")
	}
	if c.MaxIdleConns < 1 {
		errors = append(errors, "max idle connections must be at least 1")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		errors = append(errors, "max idle connections cannot be greater than max open connections")
	}
	if c.ConnMaxLifetime < time.Second {
		errors = append(errors, "connection max lifetime must be at least 1 second")
	}

	// Валидация режима ключа
	if _, ok := dataset.ParseKeyMode(c.KeyMode); !ok {
		errors = append(errors, fmt.Sprintf("invalid dedup key mode: %s", c.KeyMode))
	}

	// Валидация порога подсказок
	if c.SuggestThreshold <= 0 || c.SuggestThreshold > 1 {
		errors = append(errors, fmt.Sprintf("suggest threshold must be in (0, 1], got %g", c.SuggestThreshold))
	}

	// Валидация лимитов частоты
	if c.RateLimitRPS <= 0 {
		errors = append(errors, "rate limit rps must be positive")
	}
	if c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}
	return nil
}
