package models

// LeaveRequest dates are stored as ISO "YYYY-MM-DD" strings so they carry no
// time-of-day or timezone component.
type LeaveRequest struct {
	ID            string `bson:"_id,omitempty"`
	UserID        string `bson:"userId"`
	UserEmail     string `bson:"userEmail"`
	StartDate     string `bson:"startDate"`
	EndDate       string `bson:"endDate"`
	WorkingDays   int    `bson:"workingDays"`
	Reason        string `bson:"reason,omitempty"`
	Status        string `bson:"status"`
	ReviewedBy    string `bson:"reviewedBy,omitempty"`
	ReviewComment string `bson:"reviewComment,omitempty"`
	TimeModel     `bson:",inline"`
}
