package responses

type UserProfile struct {
	UserID              string `json:"user_id"`
	Email               string `json:"email"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Role                string `json:"role"`
	AvatarURL           string `json:"avatar_url,omitempty"`
	LeaveAllocationDays int    `json:"leave_allocation_days"`
}

type AvatarUpload struct {
	ObjectName string `json:"object_name"`
	AvatarURL  string `json:"avatar_url"`
}
