package timekeeper

import (
	"time"

	"workrest/internal/core/model"
)

// State represents the current TimeKeeper mode.
type State string

const (
	StateIdle          State = "idle"
	StateWorking       State = "working"
	StatePausedWorking State = "paused_working"
	StateResting       State = "resting"
	StatePausedResting State = "paused_resting"
)

// Kind reports which segment kind the state accounts to.
func (state State) Kind() (model.Kind, bool) {
	switch state {
	case StateWorking, StatePausedWorking:
		return model.KindWork, true
	case StateResting, StatePausedResting:
		return model.KindRest, true
	}
	return "", false
}

// Paused reports whether the state is one of the paused variants.
func (state State) Paused() bool {
	return state == StatePausedWorking || state == StatePausedResting
}

// Running reports whether a segment is in progress, paused or not.
func (state State) Running() bool {
	return state != StateIdle && state != ""
}

// Notice names a user-facing event. Display text is resolved by the UI.
type Notice int

const (
	NoticeNone Notice = iota
	NoticeWorkBegin
	NoticeRestBegin
	NoticePaused
	NoticeResumed
	NoticeStopped
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventConfig      EventType = "config"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type     EventType
	State    State
	Notice   Notice
	Elapsed  int
	Target   int
	Overtime int
	Config   model.Config
	At       time.Time
}
