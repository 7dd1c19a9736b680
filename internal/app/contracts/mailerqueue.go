package contracts

import "context"

type LeaveEventMessage struct {
	Event        string `json:"event"`
	LeaveID      string `json:"leave_id"`
	UserEmail    string `json:"user_email"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	WorkingDays  int    `json:"working_days"`
	ReviewedBy   string `json:"reviewed_by,omitempty"`
}

type MailerQueue interface {
	PublishLeaveEvent(ctx context.Context, message *LeaveEventMessage) error
}
