package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "LARIB_PORTAL_"
)

const (
	LaribRoleUser  = "User"
	LaribRoleAdmin = "Admin"
)

const (
	MongoCollectionUsers  = "users"
	MongoCollectionCases  = "cases"
	MongoCollectionLeaves = "leaves"
)

const (
	LeaveStatusPending   = "pending"
	LeaveStatusApproved  = "approved"
	LeaveStatusRejected  = "rejected"
	LeaveStatusCancelled = "cancelled"
)

const (
	LeaveEventSubmitted = "leave_request_submitted"
	LeaveEventApproved  = "leave_request_approved"
	LeaveEventRejected  = "leave_request_rejected"
)

const (
	ISODateLayout = "2006-01-02"
)

const (
	ResponseUnknown = "unknown"
)
