package requests

type UpdateProfile struct {
	FirstName string `json:"first_name" validate:"omitempty,max=64"`
	LastName  string `json:"last_name" validate:"omitempty,max=64"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type UpdateUserRole struct {
	Role                string `json:"role" validate:"required,oneof=User Admin"`
	LeaveAllocationDays int    `json:"leave_allocation_days" validate:"omitempty,gte=0"`
}
