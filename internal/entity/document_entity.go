package entity

// PhaseSection is one phase's slice of an applicant document.
type PhaseSection struct {
	Phase       *Phase
	Rows        []FieldRow
	Evaluation  *EvaluationResult
	Attachments []string
	StatusText  string
}

// FieldRow is a display-ready label/value pair.
type FieldRow struct {
	Label string
	Value string
}

// DocumentAgent identifies the applicant behind a document.
type DocumentAgent struct {
	Id   int64
	Name string
}

// ApplicantDocument is the assembled per-applicant record handed to the
// render collaborator. Phases[0] is always the root phase.
type ApplicantDocument struct {
	RegistrationNumber string
	Agent              DocumentAgent
	Phases             []PhaseSection
}
