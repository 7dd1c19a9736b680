package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	InternalConfig struct {
		App     App
		JWT     JWT
		Holiday Holiday
		Leave   Leave
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MailerQueue                string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		AvatarMaxUploadSizeInMB    int64
		CaseAttachmentMaxSizeInMB  int64
		PresignedURLExpiryInHours  int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	JWT struct {
		Secret                   string
		ExpTimeInHour            int
		SessionExpiredTimeInHour int
	}

	Holiday struct {
		FeedURL                   string
		CacheTTLInHours           int
		FetchTimeoutInSeconds     int
		FetchMinIntervalInSeconds int
	}

	Leave struct {
		AnnualAllocationDays int
	}
)
