package dto

// Run progress statuses published on the in-process bus.
const (
	ProgressGenerated = "generated"
	ProgressFailed    = "failed"
	ProgressCompleted = "completed"
)

// RunProgress is one progress event of a generation run.
type RunProgress struct {
	RunId              string `json:"run_id"`
	ParentId           int64  `json:"parent_id"`
	OpportunityName    string `json:"opportunity_name"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	Status             string `json:"status"`
	Reason             string `json:"reason,omitempty"`
	Generated          int    `json:"generated,omitempty"`
	Failed             int    `json:"failed,omitempty"`
}
