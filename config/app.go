package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"direct-chat-api/config/common"
	"direct-chat-api/config/logger"
	"direct-chat-api/handler"
	"direct-chat-api/middleware"
	"direct-chat-api/realtime"
	"direct-chat-api/repository"
	"direct-chat-api/routes"
	"direct-chat-api/security"
	"direct-chat-api/sms"
	"direct-chat-api/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *logger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	*common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	appLog := logger.NewLogger()
	log := NewLogrus()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Config:     newConfig,
	})

	_, appPort := newConfig.GetAppConfig()
	if err := app.Listen(":" + appPort); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

func App(aC *AppConfig) {
	newUserRepository := repository.NewUserRepository()
	newCodeRepository := repository.NewCodeRepository()
	newMessageRepository := repository.NewMessageRepository()
	newContactRepository := repository.NewContactRepository()

	newSender := sms.NewSender(aC.Config, aC.Logger)

	newAuthUsecase := usecase.NewAuthUsecase(newCodeRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT, newSender)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, newContactRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newUserRepository, aC.GetDB(), aC.Logger)

	newRegistry := realtime.NewRegistry()
	newRouter := realtime.NewRouter(newRegistry, aC.JWT, newMessageUsecase, newUserUsecase, aC.AppLog)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, newUserUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newMessageHandler := handler.NewMessageHandler(newMessageUsecase, newRouter, aC.Logger)
	newUploadHandler := handler.NewUploadHandler(newUserUsecase, aC.Config.GetUploadDir(), aC.Logger)

	wsHandler := handler.NewWebSocketHandler(newRouter, aC.AppLog)

	route := routes.ConfigRoute{
		App:            aC.App,
		Middleware:     aC.Middleware,
		AuthHandler:    newAuthHandler,
		UserHandler:    newUserHandler,
		MessageHandler: newMessageHandler,
		UploadHandler:  newUploadHandler,
		UploadDir:      aC.Config.GetUploadDir(),
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}

func NewValidator() *validator.Validate {
	return validator.New()
}

func NewLogrus() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return log
}
