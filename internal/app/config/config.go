package config

import (
	"larib-portal/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "larib"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "larib-portal"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Europe/Paris"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MailerQueue:                utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "larib_portal_mailer_queue"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			AvatarMaxUploadSizeInMB:    utils.GetEnvInt64("APP_AVATAR_UPLOAD_MAX_SIZE_IN_MB", 2),
			CaseAttachmentMaxSizeInMB:  utils.GetEnvInt64("APP_CASE_ATTACHMENT_MAX_SIZE_IN_MB", 512),
			PresignedURLExpiryInHours:  utils.GetEnvInt("APP_PRESIGNED_URL_EXPIRY_TIME_IN_HOURS", 1),
		},
		JWT: JWT{
			Secret:                   utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:            utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
			SessionExpiredTimeInHour: utils.GetEnvInt("JWT_SESSION_EXPIRED_TIME_IN_HOUR", 24),
		},
		Holiday: Holiday{
			FeedURL:                   utils.GetEnvString("HOLIDAY_FEED_URL", "https://calendrier.api.gouv.fr/jours-feries/metropole.json"),
			CacheTTLInHours:           utils.GetEnvInt("HOLIDAY_CACHE_TTL_IN_HOURS", 24),
			FetchTimeoutInSeconds:     utils.GetEnvInt("HOLIDAY_FETCH_TIMEOUT_IN_SECONDS", 10),
			FetchMinIntervalInSeconds: utils.GetEnvInt("HOLIDAY_FETCH_MIN_INTERVAL_IN_SECONDS", 30),
		},
		Leave: Leave{
			AnnualAllocationDays: utils.GetEnvInt("LEAVE_ANNUAL_ALLOCATION_DAYS", 25),
		},
	}
}
