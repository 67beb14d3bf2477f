package entity

// Phase is one step of a multi-phase opportunity. A parent phase owns zero or
// more child phases via ParentId.
type Phase struct {
	Id       int64
	Name     string
	ParentId *int64
}

// IsRoot reports whether the phase has no parent.
func (p *Phase) IsRoot() bool {
	return p.ParentId == nil
}
