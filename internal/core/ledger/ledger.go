// Package ledger keeps the lifetime and per-day work/rest totals together with
// the user configuration, and persists them through a Backend.
//
// Every mutation goes through the Ledger's mutex and is followed by a
// whole-document save. A failed save leaves the in-memory document intact;
// the next successful save carries the missed changes.
package ledger

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"workrest/internal/core/model"
)

// Backend loads and stores the whole statistics document.
//
// Load must return a zero Document and a nil error when nothing has been
// stored yet.
type Backend interface {
	Load() (model.Document, error)
	Save(doc model.Document) error
}

// Snapshot is a point-in-time view of the totals.
type Snapshot struct {
	TodayWork int64
	TodayRest int64
	TotalWork int64
	TotalRest int64
}

// Ledger is the single shared statistics store.
type Ledger struct {
	mu      sync.Mutex
	doc     model.Document
	backend Backend
	now     func() time.Time
	logger  *slog.Logger
}

// Options configures a Ledger.
type Options struct {
	// Now returns the wall clock used to pick the day bucket. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Open loads the document from backend. An unreadable or corrupt document is
// logged and replaced by defaults; Open never fails.
func Open(backend Backend, options Options) *Ledger {
	ledger := New(backend, options)

	doc, err := backend.Load()
	if err != nil {
		ledger.logger.Warn("load statistics failed, starting from defaults", "error", err)
		doc = model.NewDocument()
	}
	ledger.doc = doc.Normalize()
	return ledger
}

// New creates a ledger holding an empty document without reading backend.
func New(backend Backend, options Options) *Ledger {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return &Ledger{
		doc:     model.NewDocument(),
		backend: backend,
		now:     options.Now,
		logger:  options.Logger,
	}
}

// Add commits seconds of the given kind to the lifetime total and to today's
// bucket, then saves. Non-positive amounts are ignored. The in-memory totals
// are updated even when the save fails; the save error is returned.
func (ledger *Ledger) Add(kind model.Kind, seconds int64) error {
	if seconds <= 0 {
		return nil
	}

	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	switch kind {
	case model.KindWork:
		ledger.doc.TotalWork += seconds
	case model.KindRest:
		ledger.doc.TotalRest += seconds
	default:
		return fmt.Errorf("add seconds: unknown kind %q", kind)
	}
	key := model.DayKey(ledger.now())
	ledger.doc.Days[key] = ledger.doc.Days[key].Add(kind, seconds)

	return ledger.saveLocked()
}

// Save persists the current document unconditionally.
func (ledger *Ledger) Save() error {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()
	return ledger.saveLocked()
}

// Snapshot returns today's and lifetime totals.
func (ledger *Ledger) Snapshot() Snapshot {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	today := ledger.doc.Day(ledger.now())
	return Snapshot{
		TodayWork: today.Work,
		TodayRest: today.Rest,
		TotalWork: ledger.doc.TotalWork,
		TotalRest: ledger.doc.TotalRest,
	}
}

// Document returns a copy of the whole document.
func (ledger *Ledger) Document() model.Document {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()
	return ledger.doc.Clone()
}

// Config returns the stored user configuration.
func (ledger *Ledger) Config() model.Config {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()
	return ledger.doc.Config
}

// UpdateConfig applies update to the stored configuration and saves.
func (ledger *Ledger) UpdateConfig(update func(*model.Config)) (model.Config, error) {
	ledger.mu.Lock()
	defer ledger.mu.Unlock()

	update(&ledger.doc.Config)
	return ledger.doc.Config, ledger.saveLocked()
}

func (ledger *Ledger) saveLocked() error {
	if ledger.backend == nil {
		return nil
	}
	if err := ledger.backend.Save(ledger.doc.Clone()); err != nil {
		ledger.logger.Warn("save statistics failed", "error", err)
		return fmt.Errorf("save statistics: %w", err)
	}
	return nil
}
