package entity

import "encoding/json"

// MetaValue is one registration_meta row.
type MetaValue struct {
	RegistrationId int64
	Key            string
	Value          string
}

// FieldValueRow is one projected dynamic-field answer, already joined with
// its declaring configuration. The raw field_<id> key convention never
// leaves the repository layer.
type FieldValueRow struct {
	RegistrationId int64
	PhaseId        int64
	Label          string
	Order          int
	RawValue       string
}

// RawEvaluation is one stored evaluation row before interpretation. Result
// is the persisted aggregate; Data is the raw key/value payload.
type RawEvaluation struct {
	RegistrationId int64
	PhaseId        int64
	Result         string
	Data           json.RawMessage
}

// AttachmentFile is one uploaded file row joined with its registration's
// phase. Re-uploads of the same group produce higher ids.
type AttachmentFile struct {
	Id             int64
	RegistrationId int64
	PhaseId        int64
	GroupName      string
	FileName       string
}
