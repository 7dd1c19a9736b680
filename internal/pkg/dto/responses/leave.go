package responses

import "larib-portal/internal/pkg/workdays"

type LeaveRequest struct {
	LeaveID       string `json:"leave_id"`
	UserID        string `json:"user_id"`
	UserEmail     string `json:"user_email"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	WorkingDays   int    `json:"working_days"`
	Reason        string `json:"reason,omitempty"`
	Status        string `json:"status"`
	ReviewedBy    string `json:"reviewed_by,omitempty"`
	ReviewComment string `json:"review_comment,omitempty"`
}

type LeaveBalance struct {
	AllocationDays int `json:"allocation_days"`
	UsedDays       int `json:"used_days"`
	RemainingDays  int `json:"remaining_days"`
}

type ExcludedDays struct {
	StartDate    string                 `json:"start_date"`
	EndDate      string                 `json:"end_date"`
	WorkingDays  int                    `json:"working_days"`
	WeekendCount int                    `json:"weekend_count"`
	Holidays     []workdays.HolidayInfo `json:"holidays"`
}

type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type HolidayCalendar struct {
	StartYear int      `json:"start_year"`
	EndYear   int      `json:"end_year"`
	Dates     []string `json:"dates"`
}
