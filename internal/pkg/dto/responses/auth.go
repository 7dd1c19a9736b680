package responses

type Register struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type Login struct {
	Token string `json:"token"`
}

type SessionProfile struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
