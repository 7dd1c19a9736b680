package models

type User struct {
	ID                  string `bson:"_id,omitempty"`
	Email               string `bson:"email"`
	Password            string `bson:"password"`
	FirstName           string `bson:"firstName"`
	LastName            string `bson:"lastName"`
	Role                string `bson:"role"`
	AvatarObjectName    string `bson:"avatarObjectName,omitempty"`
	LeaveAllocationDays int    `bson:"leaveAllocationDays"`
	TimeModel           `bson:",inline"`
}
