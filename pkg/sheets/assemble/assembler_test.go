package assemble

import (
	"encoding/json"
	"testing"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/pkg/sheets/loader"

	"github.com/stretchr/testify/assert"
)

// recordingEvaluator echoes which row it was handed, so linkage can be
// asserted per phase.
type recordingEvaluator struct {
	rows []*entity.RawEvaluation
}

func (r *recordingEvaluator) Evaluate(row *entity.RawEvaluation, _ *entity.EvaluationConfig) *entity.EvaluationResult {
	r.rows = append(r.rows, row)
	result := &entity.EvaluationResult{}
	if row != nil {
		result.HasSimplified = true
		result.Parecer = string(row.Data)
	}
	return result
}

func ptr(v int64) *int64 { return &v }

func TestAssembleParentLinkGovernsRootPhase(t *testing.T) {
	rootPhase := &entity.Phase{Id: 100, Name: "Edital"}
	childPhase := &entity.Phase{Id: 101, Name: "Avaliação", ParentId: ptr(100)}

	applicant := &entity.Registration{Id: 501, Number: "INS-501", AgentId: 77, AgentName: "Maria", PhaseId: 101}

	in := Input{
		Applicant:      applicant,
		RelevantPhases: []*entity.Phase{rootPhase, childPhase},
		RegistrationsByPhase: map[int64][]*entity.Registration{
			100: {{Id: 401, Number: "INS-401", AgentId: 77, Status: 10}},
			101: {applicant},
		},
		Data: &loader.BatchedData{
			ParentLinks: map[int64]int64{501: 401},
			FieldValues: map[int64]map[int64][]entity.FieldValue{
				401: {100: {
					{PhaseId: 100, Label: "Projeto", Order: 1, RawValue: "Circo na praça"},
					{PhaseId: 100, Label: "Nome", Order: 2, RawValue: "Maria"},
				}},
			},
			Evaluations: map[string]*entity.RawEvaluation{
				loader.Key(501, 101): {RegistrationId: 501, PhaseId: 101, Result: "10", Data: json.RawMessage(`eval-101`)},
			},
			AttachmentNames: map[string][]string{
				loader.Key(401, 100): {"projeto.pdf"},
			},
		},
		Configs: map[int64]*entity.EvaluationConfig{},
	}

	evaluator := &recordingEvaluator{}
	doc, governingIds := NewAssembler(evaluator).Assemble(in)

	// Root phase data comes from the linked parent registration 401.
	assert.Equal(t, []int64{401, 501}, governingIds)
	assert.Equal(t, "INS-501", doc.RegistrationNumber)
	assert.Equal(t, "Maria", doc.Agent.Name)

	assert.Len(t, doc.Phases, 2)
	root := doc.Phases[0]
	assert.Equal(t, int64(100), root.Phase.Id)
	assert.Equal(t, []entity.FieldRow{
		{Label: "Projeto", Value: "Circo na praça"},
		{Label: "Nome", Value: "Maria"},
	}, root.Rows)
	assert.Equal(t, []string{"projeto.pdf"}, root.Attachments)
	assert.Equal(t, "Selecionada", root.StatusText)

	child := doc.Phases[1]
	assert.Equal(t, int64(101), child.Phase.Id)
	assert.Equal(t, "eval-101", child.Evaluation.Parecer)
	assert.Empty(t, child.Rows)
}

func TestAssembleAgentMatchFallback(t *testing.T) {
	rootPhase := &entity.Phase{Id: 100, Name: "Edital"}
	childPhase := &entity.Phase{Id: 101, Name: "Avaliação", ParentId: ptr(100)}

	// No explicit parent link, but the same agent registered in the root
	// phase under a different registration.
	applicant := &entity.Registration{Id: 501, Number: "INS-501", AgentId: 77, PhaseId: 101}

	in := Input{
		Applicant:      applicant,
		RelevantPhases: []*entity.Phase{rootPhase, childPhase},
		RegistrationsByPhase: map[int64][]*entity.Registration{
			100: {
				{Id: 400, AgentId: 99},
				{Id: 401, AgentId: 77},
			},
			101: {applicant},
		},
		Data: &loader.BatchedData{
			ParentLinks:     map[int64]int64{},
			FieldValues:     map[int64]map[int64][]entity.FieldValue{},
			Evaluations:     map[string]*entity.RawEvaluation{},
			AttachmentNames: map[string][]string{},
		},
		Configs: map[int64]*entity.EvaluationConfig{},
	}

	_, governingIds := NewAssembler(&recordingEvaluator{}).Assemble(in)
	assert.Equal(t, []int64{401, 501}, governingIds)
}

func TestAssembleOwnIdFallback(t *testing.T) {
	rootPhase := &entity.Phase{Id: 100, Name: "Edital"}

	applicant := &entity.Registration{Id: 501, Number: "INS-501", AgentId: 77, PhaseId: 100, Status: 1}

	in := Input{
		Applicant:      applicant,
		RelevantPhases: []*entity.Phase{rootPhase},
		RegistrationsByPhase: map[int64][]*entity.Registration{
			100: {applicant},
		},
		Data: &loader.BatchedData{
			ParentLinks:     map[int64]int64{},
			FieldValues:     map[int64]map[int64][]entity.FieldValue{},
			Evaluations:     map[string]*entity.RawEvaluation{},
			AttachmentNames: map[string][]string{},
		},
		Configs: map[int64]*entity.EvaluationConfig{},
	}

	doc, governingIds := NewAssembler(&recordingEvaluator{}).Assemble(in)
	assert.Equal(t, []int64{501}, governingIds)
	assert.Equal(t, "Pendente", doc.Phases[0].StatusText)
}

func TestAssembleUnknownStatusRendersEmpty(t *testing.T) {
	rootPhase := &entity.Phase{Id: 100}
	applicant := &entity.Registration{Id: 501, AgentId: 77, Status: 999}

	in := Input{
		Applicant:      applicant,
		RelevantPhases: []*entity.Phase{rootPhase},
		RegistrationsByPhase: map[int64][]*entity.Registration{
			100: {applicant},
		},
		Data: &loader.BatchedData{
			ParentLinks:     map[int64]int64{},
			FieldValues:     map[int64]map[int64][]entity.FieldValue{},
			Evaluations:     map[string]*entity.RawEvaluation{},
			AttachmentNames: map[string][]string{},
		},
		Configs: map[int64]*entity.EvaluationConfig{},
	}

	doc, _ := NewAssembler(&recordingEvaluator{}).Assemble(in)
	assert.Empty(t, doc.Phases[0].StatusText)
}

func TestAssembleRawValuesAreNormalized(t *testing.T) {
	rootPhase := &entity.Phase{Id: 100}
	applicant := &entity.Registration{Id: 501, AgentId: 77}

	in := Input{
		Applicant:      applicant,
		RelevantPhases: []*entity.Phase{rootPhase},
		RegistrationsByPhase: map[int64][]*entity.Registration{
			100: {applicant},
		},
		Data: &loader.BatchedData{
			ParentLinks: map[int64]int64{},
			FieldValues: map[int64]map[int64][]entity.FieldValue{
				501: {100: {
					{Label: "Linguagens", RawValue: `["Teatro","Circo"]`},
					{Label: "Nascimento", RawValue: "1990-05-20"},
				}},
			},
			Evaluations:     map[string]*entity.RawEvaluation{},
			AttachmentNames: map[string][]string{},
		},
		Configs: map[int64]*entity.EvaluationConfig{},
	}

	doc, _ := NewAssembler(&recordingEvaluator{}).Assemble(in)
	assert.Equal(t, []entity.FieldRow{
		{Label: "Linguagens", Value: "Teatro, Circo"},
		{Label: "Nascimento", Value: "20/05/1990"},
	}, doc.Phases[0].Rows)
}
