package models

type CaseAttachment struct {
	ObjectName  string `bson:"objectName"`
	FileName    string `bson:"fileName"`
	ContentType string `bson:"contentType"`
	Size        int64  `bson:"size"`
}

type ClinicalCase struct {
	ID          string           `bson:"_id,omitempty"`
	Title       string           `bson:"title"`
	Description string           `bson:"description"`
	Examination string           `bson:"examination"`
	Difficulty  string           `bson:"difficulty"`
	Diagnosis   string           `bson:"diagnosis"`
	Tags        []string         `bson:"tags,omitempty"`
	Attachments []CaseAttachment `bson:"attachments,omitempty"`
	CreatedBy   string           `bson:"createdBy"`
	TimeModel   `bson:",inline"`
}
