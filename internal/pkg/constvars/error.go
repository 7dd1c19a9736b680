package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"iso_date": "must be a valid date in YYYY-MM-DD format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gte":     true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidUsernameOrPassword     = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested resource was not found"
	ErrClientLeaveNotPending               = "this leave request was already processed"
	ErrClientLeaveEmptyRange               = "the requested range contains no working day"
	ErrClientLeaveInsufficientBalance      = "not enough leave days remaining"
	ErrClientInvalidDate                   = "date must be in YYYY-MM-DD format"
	ErrClientFileTooLarge                  = "uploaded file is too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput       = "invalid input"
	ErrDevCannotParseJSON    = "cannot parse JSON"
	ErrDevCannotMarshalJSON  = "cannot marshal JSON"
	ErrDevValidationFailed   = "validation failed"
	ErrDevCannotParseDate    = "cannot parse date"
	ErrDevCannotParseForm    = "cannot parse multipart form"
	ErrDevURLParamValidation = "invalid URL parameter: %s"

	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "invalid credentials"
	ErrDevEmailAlreadyExists         = "email already exists"
	ErrDevUserNotExists              = "user does not exist"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthTokenInvalid           = "invalid token"
	ErrDevAuthTokenInvalidOrExpired  = "token invalid or expired"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthInvalidSession         = "invalid session"
	ErrDevAuthGenerateToken          = "failed to generate token"
	ErrDevAuthPermissionDenied       = "permission denied"
	ErrDevSessionDataMalformed       = "session data is malformed"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisFailedToSetData    = "failed to set data to redis"
	ErrDevRedisFailedToGetData    = "failed to get data from redis for key: %s"
	ErrDevRedisFailedToDeleteData = "failed to delete data from redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket: %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket: %s"

	// RabbitMQ messages
	ErrDevRabbitMQFailedToPublish = "failed to publish message to queue"

	// Leave messages
	ErrDevLeaveNotFound            = "leave request not found"
	ErrDevLeaveNotPending          = "leave request is not pending"
	ErrDevLeaveEmptyRange          = "range has zero working days"
	ErrDevLeaveInsufficientBalance = "insufficient leave balance"

	// Case messages
	ErrDevCaseNotFound = "clinical case not found"
)
