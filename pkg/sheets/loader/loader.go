package loader

import (
	"context"
	"fmt"
	"strconv"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/repository/unitofwork"

	"golang.org/x/sync/errgroup"
)

// Key builds the composite map key used for evaluation rows and attachment
// names.
func Key(registrationId, phaseId int64) string {
	return strconv.FormatInt(registrationId, 10) + ":" + strconv.FormatInt(phaseId, 10)
}

// BatchedData is everything the assembler needs for a run, fetched with one
// round trip per data kind. Missing rows are absent from the maps; callers
// default.
type BatchedData struct {
	ParentLinks     map[int64]int64
	FieldValues     map[int64]map[int64][]entity.FieldValue
	Evaluations     map[string]*entity.RawEvaluation
	AttachmentNames map[string][]string
}

// BatchLoader turns the per-applicant, per-phase lookups of the sheet
// pipeline into set-keyed queries. Every fetch is a single round trip
// regardless of how many registrations or phases are involved.
type BatchLoader struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewBatchLoader(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *BatchLoader {
	return &BatchLoader{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// FetchRegistrations fetches every registration of every phase, grouped by
// phase id.
func (l *BatchLoader) FetchRegistrations(ctx context.Context, phaseIds []int64) (map[int64][]*entity.Registration, error) {
	grouped := make(map[int64][]*entity.Registration)
	if len(phaseIds) == 0 {
		return grouped, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	registrations, err := uow.RegistrationRepository().FindAllByPhaseIds(ctx, phaseIds)
	if err != nil {
		return nil, fmt.Errorf("batch fetch registrations: %w", err)
	}

	for _, reg := range registrations {
		grouped[reg.PhaseId] = append(grouped[reg.PhaseId], reg)
	}
	return grouped, nil
}

// FetchParentLinks reads the previousPhaseRegistrationId meta value for the
// whole registration set. Unparsable values are skipped with a warning; the
// assembler treats them as absent.
func (l *BatchLoader) FetchParentLinks(ctx context.Context, registrationIds []int64) (map[int64]int64, error) {
	links := make(map[int64]int64)
	if len(registrationIds) == 0 {
		return links, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	values, err := uow.RegistrationMetaRepository().FindAllByKey(ctx, model.MetaKeyPreviousPhaseRegistration, registrationIds)
	if err != nil {
		return nil, fmt.Errorf("batch fetch parent links: %w", err)
	}

	for _, v := range values {
		parentId, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			l.logger.Warn("loader", "unparsable parent registration link", map[string]interface{}{
				"registration_id": v.RegistrationId,
				"value":           v.Value,
			})
			continue
		}
		links[v.RegistrationId] = parentId
	}
	return links, nil
}

// FetchFieldValues fetches the dynamic field answers of the whole
// registration set, grouped by registration then phase, in declared display
// order.
func (l *BatchLoader) FetchFieldValues(ctx context.Context, registrationIds, phaseIds []int64) (map[int64]map[int64][]entity.FieldValue, error) {
	grouped := make(map[int64]map[int64][]entity.FieldValue)
	if len(registrationIds) == 0 || len(phaseIds) == 0 {
		return grouped, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.RegistrationMetaRepository().FindFieldValues(ctx, registrationIds, phaseIds)
	if err != nil {
		return nil, fmt.Errorf("batch fetch field values: %w", err)
	}

	for _, row := range rows {
		byPhase, ok := grouped[row.RegistrationId]
		if !ok {
			byPhase = make(map[int64][]entity.FieldValue)
			grouped[row.RegistrationId] = byPhase
		}
		byPhase[row.PhaseId] = append(byPhase[row.PhaseId], entity.FieldValue{
			PhaseId:  row.PhaseId,
			Label:    row.Label,
			Order:    row.Order,
			RawValue: row.RawValue,
		})
	}
	return grouped, nil
}

// FetchEvaluationRows fetches the stored evaluations for the whole
// registration and phase sets, keyed by Key(registrationId, phaseId).
func (l *BatchLoader) FetchEvaluationRows(ctx context.Context, registrationIds, phaseIds []int64) (map[string]*entity.RawEvaluation, error) {
	keyed := make(map[string]*entity.RawEvaluation)
	if len(registrationIds) == 0 || len(phaseIds) == 0 {
		return keyed, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	evaluations, err := uow.EvaluationRepository().FindAllByRegistrationAndPhaseIds(ctx, registrationIds, phaseIds)
	if err != nil {
		return nil, fmt.Errorf("batch fetch evaluations: %w", err)
	}

	for _, ev := range evaluations {
		keyed[Key(ev.RegistrationId, ev.PhaseId)] = ev
	}
	return keyed, nil
}

// FetchAttachmentNames fetches the upload names of the whole registration
// set, keyed by Key(registrationId, phaseId). Per file field only the most
// recent upload survives (highest id wins); names are deduplicated.
func (l *BatchLoader) FetchAttachmentNames(ctx context.Context, registrationIds []int64) (map[string][]string, error) {
	names := make(map[string][]string)
	if len(registrationIds) == 0 {
		return names, nil
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)
	files, err := uow.RegistrationFileRepository().FindAllByRegistrationIds(ctx, registrationIds)
	if err != nil {
		return nil, fmt.Errorf("batch fetch attachment names: %w", err)
	}

	// Rows arrive in ascending id order, so overwriting per group keeps the
	// latest upload.
	type groupSet struct {
		byGroup map[string]string
		order   []string
	}
	groups := make(map[string]*groupSet)
	for _, f := range files {
		k := Key(f.RegistrationId, f.PhaseId)
		gs, ok := groups[k]
		if !ok {
			gs = &groupSet{byGroup: make(map[string]string)}
			groups[k] = gs
		}
		if _, seen := gs.byGroup[f.GroupName]; !seen {
			gs.order = append(gs.order, f.GroupName)
		}
		gs.byGroup[f.GroupName] = f.FileName
	}

	for k, gs := range groups {
		seen := make(map[string]bool)
		for _, group := range gs.order {
			name := gs.byGroup[group]
			if seen[name] {
				continue
			}
			seen[name] = true
			names[k] = append(names[k], name)
		}
	}
	return names, nil
}

// FetchAll issues the four registration-keyed fetches concurrently. They are
// read-only and keyed by disjoint namespaces, so they are safe to overlap;
// any failure aborts the whole batch before results are handed out.
func (l *BatchLoader) FetchAll(ctx context.Context, registrationIds, phaseIds []int64) (*BatchedData, error) {
	data := &BatchedData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		links, err := l.FetchParentLinks(gctx, registrationIds)
		if err != nil {
			return err
		}
		data.ParentLinks = links
		return nil
	})
	g.Go(func() error {
		fields, err := l.FetchFieldValues(gctx, registrationIds, phaseIds)
		if err != nil {
			return err
		}
		data.FieldValues = fields
		return nil
	})
	g.Go(func() error {
		evaluations, err := l.FetchEvaluationRows(gctx, registrationIds, phaseIds)
		if err != nil {
			return err
		}
		data.Evaluations = evaluations
		return nil
	})
	g.Go(func() error {
		attachments, err := l.FetchAttachmentNames(gctx, registrationIds)
		if err != nil {
			return err
		}
		data.AttachmentNames = attachments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
