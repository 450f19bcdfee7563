package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Totarae/googl/internal/config"
	"github.com/Totarae/googl/internal/logger"
)

func main() {
	boot, _ := zap.NewProduction()
	defer boot.Sync()

	// Инициализация конфигурации
	cfg, args, err := config.NewConfig(os.Args[1:])
	if err != nil {
		boot.Fatal("Ошибка конфигурации", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		boot.Fatal("Ошибка инициализации логгера", zap.Error(err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, args, os.Stdout); err != nil {
		log.Fatal("Команда завершилась с ошибкой", zap.Strings("args", args), zap.Error(err))
	}
}
