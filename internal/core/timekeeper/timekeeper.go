package timekeeper

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"workrest/internal/core/ledger"
	"workrest/internal/core/model"
)

var (
	// ErrInvalidDuration rejects non-positive segment lengths.
	ErrInvalidDuration = errors.New("segment duration must be positive")
	// ErrInvalidLanguage rejects an empty locale id.
	ErrInvalidLanguage = errors.New("language must not be empty")
)

// Ledger is the statistics store the TimeKeeper commits elapsed time to.
type Ledger interface {
	Add(kind model.Kind, seconds int64) error
	Save() error
	Snapshot() ledger.Snapshot
	Config() model.Config
	UpdateConfig(update func(*model.Config)) (model.Config, error)
}

// Autostarter registers or removes the application from OS login items.
type Autostarter interface {
	SetAutoStart(enabled bool) error
}

// Config contains runtime options for TimeKeeper.
type Config struct {
	TickInterval time.Duration
	Logger       *slog.Logger
	// Now is the wall clock stamped on events. Defaults to time.Now.
	Now func() time.Time
}

// Status is a point-in-time view of the current segment.
type Status struct {
	State    State
	Elapsed  int
	Target   int
	Overtime int
}

// Stats is a point-in-time view of the committed totals.
type Stats = ledger.Snapshot

// TimeKeeper is the work/rest state machine.
//
// A single goroutine started by Start drives the clock. Every other caller
// only toggles flags, reads state, or flushes; all of it happens under mu.
type TimeKeeper struct {
	mu          sync.Mutex
	ledger      Ledger
	options     Config
	logger      *slog.Logger
	config      model.Config
	state       State
	clock       Clock
	account     Account
	autostarter Autostarter
	events      []chan Event
	running     bool
	stopCh      chan struct{}
	wakeCh      chan struct{}
	done        chan struct{}
	loop        chan struct{}
}

// New creates an idle TimeKeeper sized by the ledger's stored configuration.
func New(store Ledger, options Config) *TimeKeeper {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	if options.Now == nil {
		options.Now = time.Now
	}

	return &TimeKeeper{
		ledger:  store,
		options: options,
		logger:  options.Logger,
		config:  store.Config().Normalize(),
		state:   StateIdle,
	}
}

// SetAutostarter injects the OS login-item integration.
func (keeper *TimeKeeper) SetAutostarter(autostarter Autostarter) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.autostarter = autostarter
}

// Subscribe registers a new observer channel. Slow observers miss events.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	keeper.events = append(keeper.events, ch)
	keeper.mu.Unlock()
	return ch
}

// Start begins a work segment and launches the ticking loop. It is a no-op
// unless the TimeKeeper is idle. A loop left over from an earlier Stop is
// joined first so at most one loop ticks at a time.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	if keeper.running {
		keeper.mu.Unlock()
		return
	}
	previous := keeper.loop
	keeper.mu.Unlock()

	if previous != nil {
		<-previous
	}

	keeper.mu.Lock()
	if !keeper.beginLocked() {
		keeper.mu.Unlock()
		return
	}
	stopCh, wakeCh, done := keeper.stopCh, keeper.wakeCh, keeper.done
	keeper.loop = done
	keeper.mu.Unlock()

	go keeper.run(stopCh, wakeCh, done)
}

// Stop commits the in-flight segment and returns to idle. The loop exits on
// its next wakeup; use Wait to join it.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	keeper.flushLocked()
	keeper.running = false
	keeper.state = StateIdle
	keeper.clock.Reset()
	keeper.account.Reset()
	close(keeper.stopCh)

	keeper.emitLocked(Event{
		Type:   EventStateChange,
		State:  StateIdle,
		Notice: NoticeStopped,
		At:     keeper.options.Now(),
	})
}

// Wait blocks until the ticking loop has exited or timeout elapses, and
// reports whether it exited.
func (keeper *TimeKeeper) Wait(timeout time.Duration) bool {
	keeper.mu.Lock()
	done := keeper.done
	keeper.mu.Unlock()
	if done == nil {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

// Shutdown stops the loop, joins it for at most timeout, and closes observers.
func (keeper *TimeKeeper) Shutdown(timeout time.Duration) bool {
	keeper.Stop()
	exited := keeper.Wait(timeout)
	if !exited {
		keeper.logger.Warn("timer loop did not exit in time", "timeout", timeout)
	}

	keeper.mu.Lock()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()
	for _, ch := range events {
		close(ch)
	}
	return exited
}

// Pause freezes the running segment.
func (keeper *TimeKeeper) Pause() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	switch keeper.state {
	case StateWorking:
		keeper.state = StatePausedWorking
	case StateResting:
		keeper.state = StatePausedResting
	default:
		return
	}
	keeper.wakeLocked()
	keeper.emitStateLocked(NoticePaused)
}

// Resume continues a paused segment from where it stopped.
func (keeper *TimeKeeper) Resume() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if !keeper.resumeLocked() {
		return
	}
	keeper.emitStateLocked(NoticeResumed)
}

// PauseResume toggles between the paused and active variant of the segment.
func (keeper *TimeKeeper) PauseResume() {
	keeper.mu.Lock()
	paused := keeper.state.Paused()
	keeper.mu.Unlock()

	if paused {
		keeper.Resume()
		return
	}
	keeper.Pause()
}

// EndRest commits the rest segment and starts the next work segment.
func (keeper *TimeKeeper) EndRest() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if keeper.state != StateResting && keeper.state != StatePausedResting {
		return
	}
	keeper.flushLocked()
	keeper.enterSegmentLocked(StateWorking, NoticeWorkBegin)
	keeper.wakeLocked()
}

// Reconfigure changes the segment targets. The loop reads the target on
// every tick, so a work target already exceeded ends the segment on the next
// tick; a paused work segment in that situation is resumed for it.
func (keeper *TimeKeeper) Reconfigure(workSeconds, restSeconds int) error {
	if workSeconds <= 0 || restSeconds <= 0 {
		return fmt.Errorf("reconfigure %d/%d: %w", workSeconds, restSeconds, ErrInvalidDuration)
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.config.WorkSeconds = workSeconds
	keeper.config.RestSeconds = restSeconds
	_, err := keeper.ledger.UpdateConfig(func(config *model.Config) {
		config.WorkSeconds = workSeconds
		config.RestSeconds = restSeconds
	})

	if keeper.state == StatePausedWorking && keeper.clock.Elapsed() >= workSeconds {
		keeper.resumeLocked()
		keeper.emitStateLocked(NoticeNone)
	}
	keeper.emitConfigLocked()
	return err
}

// SetLanguage stores the display language.
func (keeper *TimeKeeper) SetLanguage(code string) error {
	if code == "" {
		return ErrInvalidLanguage
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.config.Language = code
	_, err := keeper.ledger.UpdateConfig(func(config *model.Config) {
		config.Language = code
	})
	keeper.emitConfigLocked()
	return err
}

// SetAutoStart stores the launch-at-login preference and applies it.
func (keeper *TimeKeeper) SetAutoStart(enabled bool) error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	keeper.config.AutoStart = enabled
	_, saveErr := keeper.ledger.UpdateConfig(func(config *model.Config) {
		config.AutoStart = enabled
	})
	keeper.emitConfigLocked()

	return errors.Join(saveErr, keeper.applyAutoStartLocked())
}

// ApplyAutoStart re-syncs the OS registration with the stored preference.
func (keeper *TimeKeeper) ApplyAutoStart() error {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.applyAutoStartLocked()
}

// Flush commits the unflushed part of the current segment. Safe to call
// from any goroutine, any number of times.
func (keeper *TimeKeeper) Flush() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.flushLocked()
}

// Autosave flushes and persists the ledger unconditionally.
func (keeper *TimeKeeper) Autosave() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()

	if committed := keeper.flushLocked(); committed > 0 {
		return
	}
	if err := keeper.ledger.Save(); err != nil {
		keeper.logger.Warn("autosave failed", "error", err)
	}
}

// Stats flushes and returns the committed totals, so the snapshot includes
// the running segment.
func (keeper *TimeKeeper) Stats() Stats {
	keeper.mu.Lock()
	keeper.flushLocked()
	keeper.mu.Unlock()
	return keeper.ledger.Snapshot()
}

// State returns the current state.
func (keeper *TimeKeeper) State() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state
}

// Elapsed returns the seconds elapsed in the current segment.
func (keeper *TimeKeeper) Elapsed() int {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.clock.Elapsed()
}

// WorkSeconds returns the current work target.
func (keeper *TimeKeeper) WorkSeconds() int {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config.WorkSeconds
}

// RestSeconds returns the current rest target.
func (keeper *TimeKeeper) RestSeconds() int {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config.RestSeconds
}

// Settings returns the configuration the TimeKeeper is running with.
func (keeper *TimeKeeper) Settings() model.Config {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.config
}

// Status returns the current segment's progress.
func (keeper *TimeKeeper) Status() Status {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return Status{
		State:    keeper.state,
		Elapsed:  keeper.clock.Elapsed(),
		Target:   keeper.targetLocked(),
		Overtime: keeper.overtimeLocked(),
	}
}

func (keeper *TimeKeeper) run(stopCh <-chan struct{}, wakeCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(keeper.options.TickInterval)
	defer ticker.Stop()

	for {
		if keeper.isPaused() {
			ticker.Stop()
			select {
			case <-stopCh:
				return
			case <-wakeCh:
				ticker.Reset(keeper.options.TickInterval)
				continue
			}
		}

		select {
		case <-stopCh:
			return
		case <-wakeCh:
		case tickTime := <-ticker.C:
			keeper.tick(tickTime)
		}
	}
}

func (keeper *TimeKeeper) isPaused() bool {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.state.Paused()
}

func (keeper *TimeKeeper) tick(tickTime time.Time) {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if !keeper.running {
		return
	}

	switch keeper.state {
	case StateWorking:
		target := keeper.config.WorkSeconds
		if keeper.clock.Elapsed() < target {
			keeper.clock.Tick()
		}
		if keeper.clock.Elapsed() >= target {
			keeper.flushLocked()
			keeper.enterSegmentLocked(StateResting, NoticeRestBegin)
			return
		}
	case StateResting:
		keeper.clock.Tick()
	default:
		return
	}

	keeper.emitLocked(Event{
		Type:     EventProgress,
		State:    keeper.state,
		Elapsed:  keeper.clock.Elapsed(),
		Target:   keeper.targetLocked(),
		Overtime: keeper.overtimeLocked(),
		At:       tickTime,
	})
}

func (keeper *TimeKeeper) beginLocked() bool {
	if keeper.running {
		return false
	}
	keeper.running = true
	keeper.stopCh = make(chan struct{})
	keeper.wakeCh = make(chan struct{}, 1)
	keeper.done = make(chan struct{})
	keeper.enterSegmentLocked(StateWorking, NoticeWorkBegin)
	return true
}

func (keeper *TimeKeeper) resumeLocked() bool {
	switch keeper.state {
	case StatePausedWorking:
		keeper.state = StateWorking
	case StatePausedResting:
		keeper.state = StateResting
	default:
		return false
	}
	keeper.wakeLocked()
	return true
}

func (keeper *TimeKeeper) enterSegmentLocked(state State, notice Notice) {
	keeper.clock.Reset()
	keeper.account.Reset()
	keeper.state = state
	keeper.emitStateLocked(notice)
}

// flushLocked returns the number of seconds committed.
func (keeper *TimeKeeper) flushLocked() int {
	kind, ok := keeper.state.Kind()
	if !ok {
		return 0
	}
	committed, err := keeper.account.Flush(&keeper.clock, func(delta int64) error {
		return keeper.ledger.Add(kind, delta)
	})
	if err != nil {
		keeper.logger.Warn("flush failed", "kind", kind, "seconds", committed, "error", err)
	}
	return committed
}

func (keeper *TimeKeeper) applyAutoStartLocked() error {
	if keeper.autostarter == nil {
		return nil
	}
	if err := keeper.autostarter.SetAutoStart(keeper.config.AutoStart); err != nil {
		return fmt.Errorf("apply autostart: %w", err)
	}
	return nil
}

func (keeper *TimeKeeper) targetLocked() int {
	kind, ok := keeper.state.Kind()
	if !ok {
		return 0
	}
	if kind == model.KindWork {
		return keeper.config.WorkSeconds
	}
	return keeper.config.RestSeconds
}

func (keeper *TimeKeeper) overtimeLocked() int {
	kind, ok := keeper.state.Kind()
	if !ok || kind != model.KindRest {
		return 0
	}
	return max(0, keeper.clock.Elapsed()-keeper.config.RestSeconds)
}

func (keeper *TimeKeeper) wakeLocked() {
	if keeper.wakeCh == nil {
		return
	}
	select {
	case keeper.wakeCh <- struct{}{}:
	default:
	}
}

func (keeper *TimeKeeper) emitStateLocked(notice Notice) {
	keeper.emitLocked(Event{
		Type:     EventStateChange,
		State:    keeper.state,
		Notice:   notice,
		Elapsed:  keeper.clock.Elapsed(),
		Target:   keeper.targetLocked(),
		Overtime: keeper.overtimeLocked(),
		Config:   keeper.config,
		At:       keeper.options.Now(),
	})
}

func (keeper *TimeKeeper) emitConfigLocked() {
	keeper.emitLocked(Event{
		Type:     EventConfig,
		State:    keeper.state,
		Elapsed:  keeper.clock.Elapsed(),
		Target:   keeper.targetLocked(),
		Overtime: keeper.overtimeLocked(),
		Config:   keeper.config,
		At:       keeper.options.Now(),
	})
}

func (keeper *TimeKeeper) emitLocked(event Event) {
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
