package requests

type SubmitLeave struct {
	StartDate string `json:"start_date" validate:"required,iso_date"`
	EndDate   string `json:"end_date" validate:"required,iso_date"`
	Reason    string `json:"reason" validate:"omitempty,max=512"`
}

type ReviewLeave struct {
	Comment string `json:"comment" validate:"omitempty,max=512"`
}

type ExcludedDays struct {
	StartDate string `json:"start_date" validate:"required,iso_date"`
	EndDate   string `json:"end_date" validate:"required,iso_date"`
}
