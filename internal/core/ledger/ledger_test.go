package ledger

import (
	"errors"
	"testing"
	"time"

	"workrest/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	doc     model.Document
	loadErr error
	saveErr error
	saves   int
}

func (backend *memoryBackend) Load() (model.Document, error) {
	return backend.doc, backend.loadErr
}

func (backend *memoryBackend) Save(doc model.Document) error {
	backend.saves++
	if backend.saveErr != nil {
		return backend.saveErr
	}
	backend.doc = doc
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func assertDayConsistency(t *testing.T, doc model.Document) {
	t.Helper()
	var work, rest int64
	for _, day := range doc.Days {
		work += day.Work
		rest += day.Rest
	}
	assert.Equal(t, doc.TotalWork, work, "total work must equal the sum of days")
	assert.Equal(t, doc.TotalRest, rest, "total rest must equal the sum of days")
}

func TestOpen_MissingDocumentUsesDefaults(t *testing.T) {
	ledger := Open(&memoryBackend{}, Options{})

	doc := ledger.Document()
	assert.Equal(t, model.DefaultConfig(), doc.Config)
	assert.NotNil(t, doc.Days)
	assert.Zero(t, doc.TotalWork)
}

func TestOpen_LoadErrorFallsBackToDefaults(t *testing.T) {
	backend := &memoryBackend{
		doc:     model.Document{TotalWork: 99},
		loadErr: errors.New("corrupt"),
	}
	ledger := Open(backend, Options{})

	assert.Zero(t, ledger.Document().TotalWork)
	assert.Equal(t, model.DefaultConfig(), ledger.Config())
}

func TestOpen_PartialConfigIsMerged(t *testing.T) {
	backend := &memoryBackend{doc: model.Document{
		TotalWork: 30,
		Days:      map[string]model.DayTotals{"2026-10-17": {Work: 30}},
		Config:    model.Config{RestSeconds: 120, Language: "en"},
	}}
	ledger := Open(backend, Options{})

	config := ledger.Config()
	assert.Equal(t, model.DefaultWorkSeconds, config.WorkSeconds)
	assert.Equal(t, 120, config.RestSeconds)
	assert.Equal(t, "en", config.Language)
	assert.EqualValues(t, 30, ledger.Document().TotalWork)
}

func TestAdd_UpdatesTotalsAndDay(t *testing.T) {
	day := time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)
	backend := &memoryBackend{}
	ledger := Open(backend, Options{Now: fixedClock(day)})

	require.NoError(t, ledger.Add(model.KindWork, 25))
	require.NoError(t, ledger.Add(model.KindRest, 5))
	require.NoError(t, ledger.Add(model.KindWork, 10))

	snapshot := ledger.Snapshot()
	assert.Equal(t, Snapshot{TodayWork: 35, TodayRest: 5, TotalWork: 35, TotalRest: 5}, snapshot)
	assert.Equal(t, model.DayTotals{Work: 35, Rest: 5}, backend.doc.Days["2026-10-18"])
	assert.Equal(t, 3, backend.saves)
	assertDayConsistency(t, ledger.Document())
}

func TestAdd_SplitsAcrossDays(t *testing.T) {
	now := time.Date(2026, 10, 17, 23, 59, 0, 0, time.Local)
	ledger := Open(&memoryBackend{}, Options{Now: func() time.Time { return now }})

	require.NoError(t, ledger.Add(model.KindWork, 40))
	now = now.Add(2 * time.Minute)
	require.NoError(t, ledger.Add(model.KindWork, 20))

	doc := ledger.Document()
	assert.EqualValues(t, 40, doc.Days["2026-10-17"].Work)
	assert.EqualValues(t, 20, doc.Days["2026-10-18"].Work)
	assert.EqualValues(t, 20, ledger.Snapshot().TodayWork)
	assertDayConsistency(t, doc)
}

func TestAdd_IgnoresNonPositive(t *testing.T) {
	backend := &memoryBackend{}
	ledger := Open(backend, Options{})

	require.NoError(t, ledger.Add(model.KindWork, 0))
	require.NoError(t, ledger.Add(model.KindRest, -3))

	assert.Zero(t, backend.saves)
	assert.Empty(t, ledger.Document().Days)
}

func TestAdd_UnknownKind(t *testing.T) {
	ledger := Open(&memoryBackend{}, Options{})
	assert.Error(t, ledger.Add(model.Kind("nap"), 3))
}

func TestAdd_SaveFailureKeepsMemory(t *testing.T) {
	backend := &memoryBackend{saveErr: errors.New("disk full")}
	ledger := Open(backend, Options{})

	err := ledger.Add(model.KindWork, 12)
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.saveErr)
	assert.EqualValues(t, 12, ledger.Snapshot().TotalWork)

	backend.saveErr = nil
	require.NoError(t, ledger.Save())
	assert.EqualValues(t, 12, backend.doc.TotalWork)
}

func TestUpdateConfig_Persists(t *testing.T) {
	backend := &memoryBackend{}
	ledger := Open(backend, Options{})

	config, err := ledger.UpdateConfig(func(config *model.Config) {
		config.WorkSeconds = 1500
		config.Language = "en"
	})
	require.NoError(t, err)
	assert.Equal(t, 1500, config.WorkSeconds)
	assert.Equal(t, 1500, backend.doc.Config.WorkSeconds)
	assert.Equal(t, "en", backend.doc.Config.Language)
}

func TestDocument_IsACopy(t *testing.T) {
	ledger := Open(&memoryBackend{}, Options{})
	require.NoError(t, ledger.Add(model.KindWork, 1))

	doc := ledger.Document()
	doc.Days["2000-01-01"] = model.DayTotals{Work: 100}

	_, ok := ledger.Document().Days["2000-01-01"]
	assert.False(t, ok)
}
