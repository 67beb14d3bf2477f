package assemble

import (
	"registration-sheets-be/internal/constant"
	"registration-sheets-be/internal/entity"
	"registration-sheets-be/pkg/sheets/loader"
	"registration-sheets-be/pkg/sheets/normalize"
)

// Evaluator computes a score report from a raw evaluation row and a phase
// rubric. Satisfied by evaluation.Engine.
type Evaluator interface {
	Evaluate(row *entity.RawEvaluation, config *entity.EvaluationConfig) *entity.EvaluationResult
}

// Input is everything one applicant's assembly needs, already batched.
type Input struct {
	Applicant            *entity.Registration
	RelevantPhases       []*entity.Phase
	RegistrationsByPhase map[int64][]*entity.Registration
	Data                 *loader.BatchedData
	Configs              map[int64]*entity.EvaluationConfig
}

// Assembler combines batched data into one nested record per applicant, one
// sub-record per phase.
type Assembler struct {
	evaluator Evaluator
}

func NewAssembler(evaluator Evaluator) *Assembler {
	return &Assembler{evaluator: evaluator}
}

// Assemble builds the applicant's document. Phase sub-records preserve the
// RelevantPhases order, so position 0 is always the root phase. The returned
// governing ids follow the same order and feed the attachment merge pipeline.
func (a *Assembler) Assemble(in Input) (*entity.ApplicantDocument, []int64) {
	doc := &entity.ApplicantDocument{
		RegistrationNumber: in.Applicant.Number,
		Agent: entity.DocumentAgent{
			Id:   in.Applicant.AgentId,
			Name: in.Applicant.AgentName,
		},
		Phases: make([]entity.PhaseSection, 0, len(in.RelevantPhases)),
	}

	governingIds := make([]int64, 0, len(in.RelevantPhases))
	rootId := int64(0)
	if len(in.RelevantPhases) > 0 {
		rootId = in.RelevantPhases[0].Id
	}

	for _, p := range in.RelevantPhases {
		governingId := a.resolveGoverningId(in, p, p.Id == rootId)
		governingIds = append(governingIds, governingId)

		section := entity.PhaseSection{
			Phase:       p,
			Rows:        a.buildRows(in.Data, governingId, p.Id),
			Evaluation:  a.evaluator.Evaluate(in.Data.Evaluations[loader.Key(governingId, p.Id)], in.Configs[p.Id]),
			Attachments: in.Data.AttachmentNames[loader.Key(governingId, p.Id)],
			StatusText:  statusText(in.RegistrationsByPhase[p.Id], governingId),
		}
		doc.Phases = append(doc.Phases, section)
	}

	return doc, governingIds
}

// resolveGoverningId picks the registration id that sources a phase's data.
// Linkage is inconsistent across phases, so three mechanisms apply in strict
// priority order: the explicit parent-registration back-reference (root phase
// only), agent-id matching within the phase's pool, and finally the
// applicant's own registration id.
func (a *Assembler) resolveGoverningId(in Input, p *entity.Phase, isRoot bool) int64 {
	if isRoot {
		if parentId, ok := in.Data.ParentLinks[in.Applicant.Id]; ok {
			return parentId
		}
	}

	for _, reg := range in.RegistrationsByPhase[p.Id] {
		if reg.AgentId == in.Applicant.AgentId {
			return reg.Id
		}
	}

	return in.Applicant.Id
}

func (a *Assembler) buildRows(data *loader.BatchedData, governingId, phaseId int64) []entity.FieldRow {
	byPhase, ok := data.FieldValues[governingId]
	if !ok {
		return nil
	}

	values := byPhase[phaseId]
	rows := make([]entity.FieldRow, 0, len(values))
	for _, v := range values {
		rows = append(rows, entity.FieldRow{
			Label: v.Label,
			Value: normalize.Display(v.RawValue),
		})
	}
	return rows
}

func statusText(pool []*entity.Registration, governingId int64) string {
	for _, reg := range pool {
		if reg.Id == governingId {
			return constant.StatusLabel(reg.Status)
		}
	}
	return ""
}
