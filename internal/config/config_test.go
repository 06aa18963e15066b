package config

import (
	"strings"
	"testing"
	"time"
)

// TestLoadConfig_Defaults значения по умолчанию
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Port = %q, want 9999", cfg.Port)
	}
	if cfg.DatabasePath != "jobs.db" {
		t.Errorf("DatabasePath = %q, want jobs.db", cfg.DatabasePath)
	}
	if cfg.MaxUploadSizeMB != 50 {
		t.Errorf("MaxUploadSizeMB = %d, want 50", cfg.MaxUploadSizeMB)
	}
	if cfg.KeyMode != "store" {
		t.Errorf("KeyMode = %q, want store", cfg.KeyMode)
	}
	if cfg.SuggestThreshold != 0.72 {
		t.Errorf("SuggestThreshold = %g, want 0.72", cfg.SuggestThreshold)
	}
	if cfg.SuggestLanguage != "spanish" {
		t.Errorf("SuggestLanguage = %q, want spanish", cfg.SuggestLanguage)
	}
}

// TestLoadConfig_FromEnv переопределение через переменные окружения
func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "10")
	t.Setenv("DEDUP_KEY_MODE", "store_link")
	t.Setenv("SUGGEST_THRESHOLD", "0.9")
	t.Setenv("DB_CONN_MAX_LIFETIME", "2m")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.MaxUploadSizeMB != 10 {
		t.Errorf("MaxUploadSizeMB = %d, want 10", cfg.MaxUploadSizeMB)
	}
	if cfg.KeyMode != "store_link" {
		t.Errorf("KeyMode = %q, want store_link", cfg.KeyMode)
	}
	if cfg.SuggestThreshold != 0.9 {
		t.Errorf("SuggestThreshold = %g, want 0.9", cfg.SuggestThreshold)
	}
	if cfg.ConnMaxLifetime != 2*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 2m", cfg.ConnMaxLifetime)
	}
}

// TestLoadConfig_InvalidEnv невалидные значения откатываются к дефолтам
func TestLoadConfig_InvalidEnv(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")
	t.Setenv("DB_CONN_MAX_LIFETIME", "soon")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.MaxUploadSizeMB != 50 {
		t.Errorf("MaxUploadSizeMB = %d, want default 50", cfg.MaxUploadSizeMB)
	}
	if cfg.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want default 5m", cfg.ConnMaxLifetime)
	}
}

// TestValidate ошибки валидации собираются в одно сообщение
func TestValidate(t *testing.T) {
	cfg := &Config{
		Port:             "99999",
		DatabasePath:     "",
		UploadsDir:       "data/uploads",
		ResultsDir:       "data/results",
		MaxUploadSizeMB:  0,
		MaxOpenConns:     5,
		MaxIdleConns:     10,
		ConnMaxLifetime:  time.Minute,
		KeyMode:          "bogus",
		SuggestThreshold: 1.5,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	for _, want := range []string{
		"port must be between",
		"database path is required",
		"max upload size",
		"max idle connections cannot be greater",
		"invalid dedup key mode",
		"suggest threshold",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error %q missing %q", msg, want)
		}
	}
}

// TestValidate_OK корректная конфигурация проходит проверку
func TestValidate_OK(t *testing.T) {
	cfg := &Config{
		Port:             "9999",
		DatabasePath:     "jobs.db",
		UploadsDir:       "data/uploads",
		ResultsDir:       "data/results",
		MaxUploadSizeMB:  50,
		MaxOpenConns:     25,
		MaxIdleConns:     5,
		ConnMaxLifetime:  5 * time.Minute,
		KeyMode:          "store",
		SuggestThreshold: 0.72,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

// TestMaxUploadSizeBytes перевод мегабайт в байты
func TestMaxUploadSizeBytes(t *testing.T) {
	cfg := &Config{MaxUploadSizeMB: 2}
	if got := cfg.MaxUploadSizeBytes(); got != 2<<20 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", got, 2<<20)
	}
}
