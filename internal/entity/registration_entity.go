package entity

// Registration is one applicant's submission within one phase.
type Registration struct {
	Id        int64
	Number    string
	AgentId   int64
	AgentName string
	Status    int
	PhaseId   int64
}

// FieldValue is a dynamic answer projected from the raw field_<id> meta keys,
// already tied to its display configuration.
type FieldValue struct {
	PhaseId  int64
	Label    string
	Order    int
	RawValue string
}
