package main

import (
	"context"
	"larib-portal/internal/app/config"
	"larib-portal/internal/app/delivery/http/middlewares"
	"larib-portal/internal/app/delivery/http/routers"
	"larib-portal/internal/app/drivers/database"
	"larib-portal/internal/app/drivers/logger"
	"larib-portal/internal/app/drivers/messaging"
	"larib-portal/internal/app/drivers/storage"
	"larib-portal/internal/app/services/core/auth"
	"larib-portal/internal/app/services/core/cases"
	"larib-portal/internal/app/services/core/leaves"
	"larib-portal/internal/app/services/core/session"
	"larib-portal/internal/app/services/core/users"
	"larib-portal/internal/app/services/shared/holidays"
	"larib-portal/internal/app/services/shared/mailerqueue"
	sharedRedis "larib-portal/internal/app/services/shared/redis"
	sharedStorage "larib-portal/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	sessionService := session.NewSessionService(redisRepository)
	holidaySource := holidays.NewSource(bootstrap.ZapLogger, &http.Client{}, bootstrap.InternalConfig)

	mailerQueue, err := mailerqueue.NewService(bootstrap.RabbitMQ, bootstrap.ZapLogger, bootstrap.InternalConfig.App.MailerQueue)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to declare mailer queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.ZapLogger, sessionService, bootstrap.InternalConfig)

	// Users
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, minioStorage, bootstrap.InternalConfig, bootstrap.DriverConfig)
	userController := users.NewUserController(bootstrap.ZapLogger, userUsecase)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.ZapLogger, authUsecase)

	// Best of Larib
	caseMongoRepository := cases.NewCaseMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	caseUsecase := cases.NewCaseUsecase(caseMongoRepository, sessionService, minioStorage, bootstrap.InternalConfig, bootstrap.DriverConfig)
	caseController := cases.NewCaseController(bootstrap.ZapLogger, caseUsecase)

	// Leave management
	leaveMongoRepository := leaves.NewLeaveMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	leaveUsecase := leaves.NewLeaveUsecase(
		bootstrap.ZapLogger,
		leaveMongoRepository,
		userMongoRepository,
		sessionService,
		holidaySource,
		mailerQueue,
		bootstrap.InternalConfig,
	)
	leaveController := leaves.NewLeaveController(bootstrap.ZapLogger, leaveUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		caseController,
		leaveController,
	)
}
