package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"saha-servis/internal/routes"
	"saha-servis/migrations"
	"saha-servis/pkg/config"
	"saha-servis/pkg/customvalidator"
	"saha-servis/pkg/database/postgresql"
	apperrors "saha-servis/pkg/errors"
	"saha-servis/pkg/filestorage"
	"saha-servis/pkg/geocoder"
	applogger "saha-servis/pkg/logger"
	"saha-servis/pkg/mailer"
	"saha-servis/pkg/metrics"
	appmiddleware "saha-servis/pkg/middleware"
	"saha-servis/pkg/service"
	"saha-servis/pkg/telegram"
	"saha-servis/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer func() { _ = logger.Sync() }()

	e := echo.New()
	e.HideBanner = true
	appMetrics := metrics.New()

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Sunucu hatası", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, appmiddleware.APIKeyHeader},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition},
	}))
	e.Use(appmiddleware.RequestLogger(logger))
	e.Use(appmiddleware.Metrics(appMetrics))
	e.Use(appmiddleware.RequestTimeout(cfg.Server.RequestTimeout))

	// 3. Валидатор
	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. БД: миграции, затем пул
	if err := postgresql.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		logger.Fatal("Ошибка миграций", zap.Error(err))
	}
	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	dbConn, err := postgresql.ConnectDB(startCtx, cfg.Postgres.DSN)
	if err != nil {
		logger.Fatal("не удалось подключиться к PostgreSQL", zap.Error(err))
	}
	defer dbConn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if _, err := redisClient.Ping(startCtx).Result(); err != nil {
		logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
	}
	defer redisClient.Close()

	// 5. Внешние клиенты
	fileStorage, err := filestorage.New(startCtx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("не удалось создать файловое хранилище", zap.Error(err))
	}
	if local, ok := fileStorage.(*filestorage.LocalFileStorage); ok {
		e.Static(filestorage.LocalURLPrefix, local.BasePath())
	}

	deps := routes.Deps{
		DB:       dbConn,
		Redis:    redisClient,
		JWT:      service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.SessionTTL, logger),
		Storage:  fileStorage,
		Geocoder: geocoder.NewNominatimClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout, logger),
		Mailer:   mailer.New(cfg.Notification.ResendAPIKey, cfg.Notification.MailFrom, logger),
		Push:     telegram.New(cfg.Notification.TelegramBotToken, logger),
		Metrics:  appMetrics,
	}
	loggers := &routes.Loggers{
		Main:         logger,
		Auth:         logger.Named("auth"),
		WorkOrder:    logger.Named("is-emri"),
		Notification: logger.Named("bildirim"),
	}

	// 6. Роуты
	routes.InitRouter(e, deps, loggers, cfg)

	// 7. Запуск и graceful shutdown
	go func() {
		logger.Info("Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Остановка сервера...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
}
