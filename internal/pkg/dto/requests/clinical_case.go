package requests

type CreateCase struct {
	Title       string   `json:"title" validate:"required,max=256"`
	Description string   `json:"description" validate:"required"`
	Examination string   `json:"examination" validate:"required,max=64"`
	Difficulty  string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Diagnosis   string   `json:"diagnosis" validate:"omitempty"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type UpdateCase struct {
	Title       string   `json:"title" validate:"omitempty,max=256"`
	Description string   `json:"description" validate:"omitempty"`
	Examination string   `json:"examination" validate:"omitempty,max=64"`
	Difficulty  string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Diagnosis   string   `json:"diagnosis" validate:"omitempty"`
	Tags        []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type ListCases struct {
	Examination string `json:"examination" validate:"omitempty,max=64"`
	Difficulty  string `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}
