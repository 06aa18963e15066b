// @title Store Links API
// @version 1.0
// @description API для очистки и сравнения списков (магазин, ссылка) из файлов Excel/CSV/HTML.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:9999
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storelinks/database"
	"storelinks/internal/config"
	"storelinks/server"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Store Links Server...")

	// Загружаем конфигурацию из env
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Создаем каталоги для загрузок и результатов
	if err := server.EnsureDirectories(cfg); err != nil {
		log.Fatalf("Ошибка подготовки каталогов: %v", err)
	}

	// Открываем базу истории обработок
	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewDBWithConfig(cfg.DatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()
	log.Printf("✓ База истории: %s", cfg.DatabasePath)

	srv := server.NewServer(cfg, db)

	// Запускаем сервер в отдельной горутине
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Паника при запуске сервера: %v", r)
			}
		}()
		if err := srv.Start(); err != nil {
			log.Fatalf("✗ КРИТИЧЕСКАЯ ОШИБКА: Ошибка запуска сервера: %v", err)
		}
	}()

	log.Println("═══════════════════════════════════════════════════════")
	log.Printf("✓ Сервер успешно запущен на порту %s", cfg.Port)
	log.Printf("✓ API доступно: http://localhost:%s/api", cfg.Port)
	log.Printf("✓ Swagger: http://localhost:%s/swagger/index.html", cfg.Port)
	log.Println("  Для остановки нажмите Ctrl+C")
	log.Println("═══════════════════════════════════════════════════════")

	// Обработка сигналов для graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("⏹  Получен сигнал завершения, останавливаю сервер...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("✗ Ошибка при остановке сервера: %v", err)
	} else {
		log.Println("✓ Сервер успешно остановлен")
	}
}
