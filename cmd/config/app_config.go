package config

import (
	"Digital-Menu-Builder/internal/api/handlers"
	"Digital-Menu-Builder/internal/api/routes"
	"Digital-Menu-Builder/internal/middleware"
	"Digital-Menu-Builder/internal/utils"
	"Digital-Menu-Builder/internal/utils/mailing"
	"Digital-Menu-Builder/internal/utils/storage"
	"Digital-Menu-Builder/pkg/auth"
	"Digital-Menu-Builder/pkg/catalog"
	"Digital-Menu-Builder/pkg/jwt"
	"Digital-Menu-Builder/pkg/menu"
	"Digital-Menu-Builder/pkg/offer"
	"Digital-Menu-Builder/pkg/publish"
	"Digital-Menu-Builder/pkg/share"
	"Digital-Menu-Builder/pkg/style"
	"Digital-Menu-Builder/pkg/upload"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewApp wires the stores, services and handlers into a fiber app. db may be
// nil, in which case publishing answers 503.
func NewApp(db *gorm.DB, cfg utils.Config) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName:           "Digital Menu Builder",
		EnablePrintRoutes: cfg.Env != "production" && cfg.Env != "test",
	})
	middlewares := middleware.NewMiddleware(cfg.CORSOrigins)
	validator := utils.Validate

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Warnf("unknown TIMEZONE %q, using UTC: %v", cfg.Timezone, err)
		location = time.UTC
	}
	now := func() time.Time { return time.Now().In(location) }

	// setting up logging and limiter
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		cfg.LogFile,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Hooks().OnShutdown(func() error {
		return file.Close()
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   location.String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 1 * time.Second,
	}))

	// utils
	var s3 storage.AwsS3
	if cfg.HasS3() {
		s3, err = storage.NewAwsS3(context.Background(), cfg.AWSS3Bucket, cfg.AWSS3Region, cfg.AWSAccessKey, cfg.AWSSecretKey)
		if err != nil {
			log.Warnf("image uploads disabled: %v", err)
			s3 = nil
		}
	}

	var mailer mailing.Mailer
	if cfg.HasMail() {
		mailer, err = mailing.NewMailer(mailing.MailConfig{
			AppURL:       cfg.AppURL,
			SMTPHost:     cfg.SMTPHost,
			SMTPPort:     cfg.SMTPPort,
			SMTPSender:   cfg.SMTPSenderName,
			SMTPEmail:    cfg.SMTPAuthEmail,
			SMTPPassword: cfg.SMTPAuthPassword,
		})
		if err != nil {
			log.Warnf("menu sharing disabled: %v", err)
			mailer = nil
		}
	}

	secret := cfg.JWTSecret
	if secret == "" {
		log.Warn("JWT_SECRET is empty, using a random secret; tokens will not survive a restart")
		secret = uuid.NewString()
	}

	// Stores
	catalogStore := catalog.NewCatalogStore()
	offerStore := offer.NewOfferStore()
	styleStore := style.NewStyleStore()

	// Repository
	var publishRepository publish.PublishRepository
	if db != nil {
		publishRepository = publish.NewPublishRepository(db)
	}

	// Service
	jwtService := jwt.NewJWTService(secret)
	authService := auth.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, jwtService)
	catalogService := catalog.NewCatalogService(catalogStore, offerStore)
	offerService := offer.NewOfferService(offerStore)
	styleService := style.NewStyleService(styleStore)
	menuService := menu.NewMenuService(catalogStore, offerStore, styleStore)
	publishService := publish.NewPublishService(publishRepository, menuService)
	uploadService := upload.NewUploadService(s3)
	shareService := share.NewShareService(mailer, cfg.AppURL, styleStore)

	// Handler
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	offerHandler := handlers.NewOfferHandler(offerService, validator, now)
	styleHandler := handlers.NewStyleHandler(styleService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, now)
	authHandler := handlers.NewAuthHandler(authService, validator)
	publishHandler := handlers.NewPublishHandler(publishService, validator, now)
	uploadHandler := handlers.NewUploadHandler(uploadService, validator)
	shareHandler := handlers.NewShareHandler(shareService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		CatalogHandler: catalogHandler,
		OfferHandler:   offerHandler,
		StyleHandler:   styleHandler,
		MenuHandler:    menuHandler,
		AuthHandler:    authHandler,
		PublishHandler: publishHandler,
		UploadHandler:  uploadHandler,
		ShareHandler:   shareHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
