package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Spok95/lms-desktop/internal/app"
	"github.com/Spok95/lms-desktop/internal/config"
	"github.com/Spok95/lms-desktop/internal/ctxutil"
	"github.com/Spok95/lms-desktop/internal/db"
	"github.com/Spok95/lms-desktop/internal/jobs"
	"github.com/Spok95/lms-desktop/internal/logging"
	"github.com/Spok95/lms-desktop/internal/metrics"
	"github.com/Spok95/lms-desktop/internal/observability"
	"github.com/Spok95/lms-desktop/internal/storage"
	"github.com/Spok95/lms-desktop/internal/ui"
)

var version = "dev"

func main() {
	// Загрузка переменных окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	ctxutil.DefaultDBTimeout = cfg.DBTimeout
	time.Local = cfg.Location

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer lg.Closer()

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, version)
	if err != nil {
		lg.Sugar.Warnw("sentry не инициализирован", "err", err)
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		lg.Sugar.Fatalw("ошибка подключения к БД", "err", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		lg.Sugar.Fatalw("миграция не удалась", "err", err)
	}
	if err := db.EnsureAdmin(ctx, database, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminFullName, cfg.AdminEmail); err != nil {
		lg.Sugar.Fatalw("не удалось завести администратора", "err", err)
	}

	materials, err := storage.NewMaterials(cfg.MaterialsDir)
	if err != nil {
		lg.Sugar.Fatalw("каталог материалов недоступен", "err", err)
	}

	// Диагностика: /healthz и /metrics на loopback, плюс фоновый пинг БД.
	_ = app.StartHTTP(ctx, cfg.HTTPAddr, database)
	runner := jobs.New(ctx)
	runner.Every(30*time.Second, "db_ping", func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, 800*time.Millisecond)
		defer cancel()
		t0 := time.Now()
		if err := database.PingContext(pingCtx); err != nil {
			return err
		}
		metrics.ObserveDBPing(time.Since(t0))
		return nil
	})

	lg.Sugar.Infow("клиент запущен", "env", cfg.Env, "version", version)

	con := ui.NewConsole(os.Stdin, os.Stdout)
	client := ui.NewClient(con, database, lg.Sugar, materials)
	client.Run(ctx)

	lg.Sugar.Info("клиент завершил работу")
}
