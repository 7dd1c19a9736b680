package responses

type CaseAttachment struct {
	ObjectName  string `json:"object_name"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type CaseAttachmentURL struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
}

type ClinicalCase struct {
	CaseID      string           `json:"case_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Examination string           `json:"examination"`
	Difficulty  string           `json:"difficulty"`
	Diagnosis   string           `json:"diagnosis,omitempty"`
	Tags        []string         `json:"tags,omitempty"`
	Attachments []CaseAttachment `json:"attachments,omitempty"`
	CreatedBy   string           `json:"created_by"`
}
