package main

import (
	"Digital-Menu-Builder/cmd/config"
	migration "Digital-Menu-Builder/cmd/database/migrate"
	"Digital-Menu-Builder/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	utils.LoadConfig()
	cfg := utils.AppConfig()

	var db *gorm.DB
	if cfg.HasDatabase() {
		conn, err := config.ConnectDB(cfg)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := migration.Migrate(conn); err != nil {
			log.Fatalf("%v", err)
		}
		db = conn
	} else {
		log.Info("no database configured, publishing is disabled")
	}

	app, err := config.NewApp(db, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("listen: %v", err)
	}
}
