package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"registration-sheets-be/internal/dto"
	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/pkg/pdf"
	"registration-sheets-be/pkg/sheets/assemble"
	"registration-sheets-be/pkg/sheets/attachment"
	"registration-sheets-be/pkg/sheets/evaluation"
	"registration-sheets-be/pkg/sheets/loader"
	"registration-sheets-be/pkg/sheets/phase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ISheetService interface {
	GenerateSheets(ctx context.Context, parentId int64) (*dto.SheetBatchResult, error)
	ResolvePhases(ctx context.Context, parentId int64) ([]*entity.Phase, error)
}

type sheetService struct {
	resolver  *phase.Resolver
	loader    *loader.BatchLoader
	engine    *evaluation.Engine
	assembler *assemble.Assembler
	template  *pdf.SheetTemplate
	renderer  pdf.Renderer
	merger    pdf.Merger
	collector *attachment.Collector
	publisher IPublisherService
	outputDir string
	window    int
	logger    logger.ILogger
}

func NewSheetService(
	resolver *phase.Resolver,
	batchLoader *loader.BatchLoader,
	engine *evaluation.Engine,
	assembler *assemble.Assembler,
	template *pdf.SheetTemplate,
	renderer pdf.Renderer,
	merger pdf.Merger,
	collector *attachment.Collector,
	publisher IPublisherService,
	outputDir string,
	renderWindow int,
	log logger.ILogger,
) ISheetService {
	if renderWindow < 1 {
		renderWindow = 1
	}
	return &sheetService{
		resolver:  resolver,
		loader:    batchLoader,
		engine:    engine,
		assembler: assembler,
		template:  template,
		renderer:  renderer,
		merger:    merger,
		collector: collector,
		publisher: publisher,
		outputDir: outputDir,
		window:    renderWindow,
		logger:    log,
	}
}

func (s *sheetService) ResolvePhases(ctx context.Context, parentId int64) ([]*entity.Phase, error) {
	return s.resolver.ResolveRelevantPhases(ctx, parentId)
}

// GenerateSheets runs the full pipeline for one parent opportunity. The
// batch-fetch stage fails atomically before any rendering begins; a single
// applicant's render failure only degrades that applicant.
func (s *sheetService) GenerateSheets(ctx context.Context, parentId int64) (*dto.SheetBatchResult, error) {
	runId := uuid.NewString()

	relevantPhases, err := s.resolver.ResolveRelevantPhases(ctx, parentId)
	if err != nil {
		return nil, err
	}

	phaseIds := make([]int64, len(relevantPhases))
	for i, p := range relevantPhases {
		phaseIds[i] = p.Id
	}

	registrationsByPhase, err := s.loader.FetchRegistrations(ctx, phaseIds)
	if err != nil {
		return nil, fmt.Errorf("opportunity %d: %w", parentId, err)
	}

	pool, err := phase.ChooseApplicantPool(relevantPhases, registrationsByPhase, parentId)
	if err != nil {
		return nil, err
	}

	var registrationIds []int64
	for _, regs := range registrationsByPhase {
		for _, reg := range regs {
			registrationIds = append(registrationIds, reg.Id)
		}
	}

	data, err := s.loader.FetchAll(ctx, registrationIds, phaseIds)
	if err != nil {
		return nil, fmt.Errorf("opportunity %d: %w", parentId, err)
	}

	configs := make(map[int64]*entity.EvaluationConfig, len(relevantPhases))
	for _, p := range relevantPhases {
		config, err := s.engine.LoadConfig(ctx, p.Id)
		if err != nil {
			return nil, fmt.Errorf("opportunity %d: %w", parentId, err)
		}
		configs[p.Id] = config
	}

	runDir := filepath.Join(s.outputDir, runId)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir for opportunity %d: %w", parentId, err)
	}

	// Deterministic output order, regardless of fetch completion order.
	sorted := make([]*entity.Registration, len(pool))
	copy(sorted, pool)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Id < sorted[j].Id })

	opportunityName := relevantPhases[0].Name

	type outcome struct {
		sheet  *dto.GeneratedSheet
		failed *dto.FailedSheet
	}
	outcomes := make([]outcome, len(sorted))

	// Rendering is the expensive stage; a fixed window of in-flight
	// applicants backpressures the external renderer.
	g := &errgroup.Group{}
	g.SetLimit(s.window)
	for i, applicant := range sorted {
		g.Go(func() error {
			doc, governingIds := s.assembler.Assemble(assemble.Input{
				Applicant:            applicant,
				RelevantPhases:       relevantPhases,
				RegistrationsByPhase: registrationsByPhase,
				Data:                 data,
				Configs:              configs,
			})

			outputPath, err := s.renderApplicant(ctx, doc, governingIds, runDir)
			if err != nil {
				s.logger.Error("sheet", "applicant skipped after render failure", map[string]interface{}{
					"run_id":              runId,
					"registration_number": applicant.Number,
					"error":               err.Error(),
				})
				outcomes[i] = outcome{failed: &dto.FailedSheet{
					RegistrationId:     applicant.Id,
					RegistrationNumber: applicant.Number,
					Reason:             err.Error(),
				}}
				s.publishProgress(dto.RunProgress{
					RunId:              runId,
					ParentId:           parentId,
					OpportunityName:    opportunityName,
					RegistrationNumber: applicant.Number,
					Status:             dto.ProgressFailed,
					Reason:             err.Error(),
				})
				return nil
			}

			outcomes[i] = outcome{sheet: &dto.GeneratedSheet{
				RegistrationId:     applicant.Id,
				RegistrationNumber: applicant.Number,
				OutputPath:         outputPath,
				Document:           doc,
			}}
			s.publishProgress(dto.RunProgress{
				RunId:              runId,
				ParentId:           parentId,
				OpportunityName:    opportunityName,
				RegistrationNumber: applicant.Number,
				Status:             dto.ProgressGenerated,
			})
			return nil
		})
	}
	_ = g.Wait()

	result := &dto.SheetBatchResult{
		RunId:    runId,
		ParentId: parentId,
	}
	for _, o := range outcomes {
		if o.sheet != nil {
			result.Generated = append(result.Generated, *o.sheet)
		}
		if o.failed != nil {
			result.Failed = append(result.Failed, *o.failed)
		}
	}

	s.publishProgress(dto.RunProgress{
		RunId:           runId,
		ParentId:        parentId,
		OpportunityName: opportunityName,
		Status:          dto.ProgressCompleted,
		Generated:       len(result.Generated),
		Failed:          len(result.Failed),
	})

	s.logger.Info("sheet", "generation run finished", map[string]interface{}{
		"run_id":    runId,
		"parent_id": parentId,
		"generated": len(result.Generated),
		"failed":    len(result.Failed),
	})
	return result, nil
}

func (s *sheetService) renderApplicant(ctx context.Context, doc *entity.ApplicantDocument, governingIds []int64, runDir string) (string, error) {
	html, err := s.template.Render(doc)
	if err != nil {
		return "", err
	}

	main, err := s.renderer.Render(ctx, html)
	if err != nil {
		return "", err
	}

	attachments := s.collector.Collect(governingIds)
	merged, err := s.merger.Merge(main, attachments)
	if err != nil {
		return "", err
	}

	outputPath := filepath.Join(runDir, doc.RegistrationNumber+".pdf")
	if err := os.WriteFile(outputPath, merged, 0o644); err != nil {
		return "", err
	}
	return outputPath, nil
}

func (s *sheetService) publishProgress(progress dto.RunProgress) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProgress(progress); err != nil {
		s.logger.Warn("sheet", "progress publish failed", map[string]interface{}{
			"run_id": progress.RunId,
			"error":  err.Error(),
		})
	}
}
