package events

// Event is anything publishable to the external bus.
type Event interface {
	EventType() string
	Payload() interface{}
}

// SheetRunCompleted is emitted after a generation run finishes, successfully
// or degraded.
type SheetRunCompleted struct {
	RunId     string `json:"run_id"`
	ParentId  int64  `json:"parent_id"`
	Generated int    `json:"generated"`
	Failed    int    `json:"failed"`
}

func (e SheetRunCompleted) EventType() string {
	return "sheets.run_completed"
}

func (e SheetRunCompleted) Payload() interface{} {
	return e
}
