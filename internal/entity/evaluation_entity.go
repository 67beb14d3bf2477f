package entity

// EvaluationSection is one section of a technical evaluation rubric.
type EvaluationSection struct {
	Id   string
	Name string
}

// EvaluationCriterion is one scored criterion, referencing its section.
type EvaluationCriterion struct {
	Id        string
	Title     string
	SectionId string
}

// EvaluationConfig is a phase's rubric, parsed from the two JSON blobs stored
// against the evaluation method configuration.
type EvaluationConfig struct {
	PhaseId  int64
	Sections []EvaluationSection
	Criteria []EvaluationCriterion
}

// PayloadKind discriminates the shape of a raw evaluation payload.
type PayloadKind int

const (
	PayloadUnevaluated PayloadKind = iota
	PayloadTechnical
	PayloadSimplified
)

// EvaluationPayload is the discriminated parse of a raw evaluation row.
// Scores hold the criterion-id keyed values; Parecer is the free-text opinion
// stored under the "obs" key; Status is the advisory "status" key.
type EvaluationPayload struct {
	Kind    PayloadKind
	Scores  map[string]string
	Parecer string
	Status  string
	Total   float64
}

// CriterionScore is one displayed criterion row.
type CriterionScore struct {
	Label string
	Score string
}

// ScoredSection groups criterion rows under a section title.
type ScoredSection struct {
	Title    string
	Criteria []CriterionScore
}

// EvaluationResult is the structured score report for one (registration,
// phase) pair. HasTechnical and HasSimplified are mutually exclusive; both
// false means the registration was not evaluated in that phase.
type EvaluationResult struct {
	Sections      []ScoredSection
	Parecer       string
	Total         float64
	HasTechnical  bool
	HasSimplified bool
}
