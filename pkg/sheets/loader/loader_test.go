package loader

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"registration-sheets-be/internal/entity"
	"registration-sheets-be/internal/model"
	"registration-sheets-be/internal/pkg/logger"
	"registration-sheets-be/internal/repository/contract"
	"registration-sheets-be/internal/repository/specification"
	"registration-sheets-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
)

// countingRepos implements every repository contract and counts queries, so
// the one-round-trip-per-kind behavior is observable. FetchAll overlaps its
// fetches, hence the mutex.
type countingRepos struct {
	mu      sync.Mutex
	queries map[string]int

	registrations []*entity.Registration
	metaValues    []*entity.MetaValue
	fieldRows     []*entity.FieldValueRow
	evaluations   []*entity.RawEvaluation
	files         []*entity.AttachmentFile
}

func (c *countingRepos) count(kind string) {
	c.mu.Lock()
	c.queries[kind]++
	c.mu.Unlock()
}

func (c *countingRepos) FindHierarchy(context.Context, int64) ([]*entity.Phase, error) {
	c.count("hierarchy")
	return nil, nil
}

func (c *countingRepos) FindOne(context.Context, ...specification.Specification) (*entity.Phase, error) {
	return nil, nil
}

func (c *countingRepos) FindAllByPhaseIds(context.Context, []int64) ([]*entity.Registration, error) {
	c.count("registrations")
	return c.registrations, nil
}

func (c *countingRepos) FindAll(context.Context, ...specification.Specification) ([]*entity.Registration, error) {
	return nil, nil
}

func (c *countingRepos) Count(context.Context, ...specification.Specification) (int64, error) {
	return 0, nil
}

func (c *countingRepos) FindAllByKey(_ context.Context, key string, _ []int64) ([]*entity.MetaValue, error) {
	c.count("meta:" + key)
	return c.metaValues, nil
}

func (c *countingRepos) FindFieldValues(context.Context, []int64, []int64) ([]*entity.FieldValueRow, error) {
	c.count("fields")
	return c.fieldRows, nil
}

func (c *countingRepos) FindConfigByPhaseId(context.Context, int64) (*entity.EvaluationConfig, error) {
	c.count("config")
	return nil, nil
}

func (c *countingRepos) FindAllByRegistrationAndPhaseIds(context.Context, []int64, []int64) ([]*entity.RawEvaluation, error) {
	c.count("evaluations")
	return c.evaluations, nil
}

func (c *countingRepos) FindAllByRegistrationIds(context.Context, []int64) ([]*entity.AttachmentFile, error) {
	c.count("files")
	return c.files, nil
}

type countingUow struct {
	repos *countingRepos
}

func (u *countingUow) Begin(context.Context) error { return nil }
func (u *countingUow) Commit() error               { return nil }
func (u *countingUow) Rollback() error             { return nil }

func (u *countingUow) OpportunityRepository() contract.OpportunityRepository { return u.repos }
func (u *countingUow) RegistrationRepository() contract.RegistrationRepository {
	return u.repos
}
func (u *countingUow) RegistrationMetaRepository() contract.RegistrationMetaRepository {
	return u.repos
}
func (u *countingUow) EvaluationRepository() contract.EvaluationRepository { return u.repos }
func (u *countingUow) RegistrationFileRepository() contract.RegistrationFileRepository {
	return u.repos
}

type countingFactory struct {
	repos *countingRepos
}

func (f *countingFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &countingUow{repos: f.repos}
}

func newTestLoader(repos *countingRepos) *BatchLoader {
	repos.queries = make(map[string]int)
	return NewBatchLoader(&countingFactory{repos: repos}, logger.NewNopLogger())
}

func TestKey(t *testing.T) {
	assert.Equal(t, "501:100", Key(501, 100))
}

func TestFetchRegistrationsGroupsByPhase(t *testing.T) {
	loader := newTestLoader(&countingRepos{
		registrations: []*entity.Registration{
			{Id: 1, PhaseId: 100},
			{Id: 2, PhaseId: 101},
			{Id: 3, PhaseId: 100},
		},
	})

	grouped, err := loader.FetchRegistrations(context.Background(), []int64{100, 101})
	assert.NoError(t, err)
	assert.Len(t, grouped[100], 2)
	assert.Len(t, grouped[101], 1)
}

func TestFetchParentLinksSkipsUnparsable(t *testing.T) {
	loader := newTestLoader(&countingRepos{
		metaValues: []*entity.MetaValue{
			{RegistrationId: 501, Key: model.MetaKeyPreviousPhaseRegistration, Value: "401"},
			{RegistrationId: 502, Key: model.MetaKeyPreviousPhaseRegistration, Value: "not-a-number"},
		},
	})

	links, err := loader.FetchParentLinks(context.Background(), []int64{501, 502})
	assert.NoError(t, err)
	assert.Equal(t, map[int64]int64{501: 401}, links)
}

func TestFetchFieldValuesGroupsByRegistrationAndPhase(t *testing.T) {
	loader := newTestLoader(&countingRepos{
		fieldRows: []*entity.FieldValueRow{
			{RegistrationId: 501, PhaseId: 100, Label: "Projeto", Order: 1, RawValue: "a"},
			{RegistrationId: 501, PhaseId: 100, Label: "Nome", Order: 2, RawValue: "b"},
			{RegistrationId: 502, PhaseId: 101, Label: "Projeto", Order: 1, RawValue: "c"},
		},
	})

	grouped, err := loader.FetchFieldValues(context.Background(), []int64{501, 502}, []int64{100, 101})
	assert.NoError(t, err)
	assert.Len(t, grouped[501][100], 2)
	assert.Equal(t, "Projeto", grouped[501][100][0].Label)
	assert.Len(t, grouped[502][101], 1)
}

func TestFetchEvaluationRowsKeyed(t *testing.T) {
	loader := newTestLoader(&countingRepos{
		evaluations: []*entity.RawEvaluation{
			{RegistrationId: 501, PhaseId: 100, Result: "10", Data: json.RawMessage(`{}`)},
		},
	})

	keyed, err := loader.FetchEvaluationRows(context.Background(), []int64{501}, []int64{100})
	assert.NoError(t, err)
	assert.Contains(t, keyed, Key(501, 100))
}

func TestFetchAttachmentNamesLatestUploadWins(t *testing.T) {
	loader := newTestLoader(&countingRepos{
		// Rows arrive in ascending id order. The re-upload of "documentos"
		// must replace the original, and the duplicate name across groups
		// must be emitted once.
		files: []*entity.AttachmentFile{
			{Id: 1, RegistrationId: 501, PhaseId: 100, GroupName: "documentos", FileName: "old.pdf"},
			{Id: 2, RegistrationId: 501, PhaseId: 100, GroupName: "portfolio", FileName: "portfolio.pdf"},
			{Id: 3, RegistrationId: 501, PhaseId: 100, GroupName: "documentos", FileName: "new.pdf"},
			{Id: 4, RegistrationId: 501, PhaseId: 100, GroupName: "extra", FileName: "portfolio.pdf"},
		},
	})

	names, err := loader.FetchAttachmentNames(context.Background(), []int64{501})
	assert.NoError(t, err)
	assert.Equal(t, []string{"new.pdf", "portfolio.pdf"}, names[Key(501, 100)])
}

func TestFetchAllSingleRoundTripPerKind(t *testing.T) {
	repos := &countingRepos{}
	loader := newTestLoader(repos)

	data, err := loader.FetchAll(context.Background(), []int64{1, 2, 3}, []int64{100, 101})
	assert.NoError(t, err)
	assert.NotNil(t, data)

	assert.Equal(t, 1, repos.queries["meta:"+model.MetaKeyPreviousPhaseRegistration])
	assert.Equal(t, 1, repos.queries["fields"])
	assert.Equal(t, 1, repos.queries["evaluations"])
	assert.Equal(t, 1, repos.queries["files"])
}

func TestFetchAllEmptySets(t *testing.T) {
	repos := &countingRepos{}
	loader := newTestLoader(repos)

	data, err := loader.FetchAll(context.Background(), nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, data.ParentLinks)
	assert.Empty(t, data.FieldValues)
	assert.Empty(t, data.Evaluations)
	assert.Empty(t, data.AttachmentNames)
	assert.Empty(t, repos.queries, "empty id sets must not touch the database")
}
