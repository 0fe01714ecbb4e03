package main

import (
	"sync"
	"testing"

	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"
	"workrest/internal/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingView struct {
	mu    sync.Mutex
	calls []string
}

func (view *recordingView) record(call string) {
	view.mu.Lock()
	view.calls = append(view.calls, call)
	view.mu.Unlock()
}

func (view *recordingView) SetPaused(paused bool) {
	if paused {
		view.record("paused")
		return
	}
	view.record("active")
}
func (view *recordingView) SetLanguage(language string)    { view.record("lang:" + language) }
func (view *recordingView) ShowRest(elapsed, target int)   { view.record("show:" + i18n.FormatSeconds(elapsed) + "/" + i18n.FormatSeconds(target)) }
func (view *recordingView) UpdateRest(elapsed, target int) { view.record("update:" + i18n.FormatSeconds(elapsed)) }
func (view *recordingView) HideRest()                      { view.record("hide") }

type recordingNotifier struct {
	sent []string
}

func (notifier *recordingNotifier) Send(title, message string) error {
	notifier.sent = append(notifier.sent, title+": "+message)
	return nil
}

func immediately(fn func()) { fn() }

func newTestPump() (*eventPump, *recordingView, *recordingNotifier) {
	view := &recordingView{}
	notifier := &recordingNotifier{}
	return newEventPump(view, notifier, i18n.English, immediately), view, notifier
}

var testConfig = model.Config{WorkSeconds: 1500, RestSeconds: 300, Language: i18n.English}

func TestEventPump_RestCycle(t *testing.T) {
	pump, view, notifier := newTestPump()

	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StateWorking, Notice: timekeeper.NoticeWorkBegin, Target: 1500, Config: testConfig})
	pump.handle(timekeeper.Event{Type: timekeeper.EventProgress, State: timekeeper.StateWorking, Elapsed: 1, Target: 1500})
	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StateResting, Notice: timekeeper.NoticeRestBegin, Target: 300, Config: testConfig})
	pump.handle(timekeeper.Event{Type: timekeeper.EventProgress, State: timekeeper.StateResting, Elapsed: 61, Target: 300})
	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StatePausedResting, Notice: timekeeper.NoticePaused, Elapsed: 61, Target: 300, Config: testConfig})
	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StateWorking, Notice: timekeeper.NoticeWorkBegin, Target: 1500, Config: testConfig})

	assert.Equal(t, []string{
		"active", "hide",
		"active", "show:00:00/05:00",
		"update:01:01",
		"paused", "update:01:01",
		"active", "hide",
	}, view.calls)
	assert.Equal(t, []string{
		"Work Started: Focus for 25:00",
		"Break Started: Relax for 05:00",
		"Paused: Timer paused",
		"Work Started: Focus for 25:00",
	}, notifier.sent)
}

func TestEventPump_LanguageChange(t *testing.T) {
	pump, view, notifier := newTestPump()

	zh := testConfig
	zh.Language = i18n.Chinese
	pump.handle(timekeeper.Event{Type: timekeeper.EventConfig, State: timekeeper.StateIdle, Config: zh})
	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StateWorking, Notice: timekeeper.NoticeResumed, Config: zh})

	require.NotEmpty(t, view.calls)
	assert.Equal(t, "lang:zh", view.calls[0])
	assert.Equal(t, []string{"继续: 计时器已继续"}, notifier.sent)
}

func TestEventPump_StopIsSilent(t *testing.T) {
	pump, view, notifier := newTestPump()

	pump.handle(timekeeper.Event{Type: timekeeper.EventStateChange, State: timekeeper.StateIdle, Notice: timekeeper.NoticeStopped})

	assert.Equal(t, []string{"active", "hide"}, view.calls)
	assert.Empty(t, notifier.sent)
}

func TestEventPump_RunEndsOnClose(t *testing.T) {
	pump, view, _ := newTestPump()
	events := make(chan timekeeper.Event, 1)
	events <- timekeeper.Event{Type: timekeeper.EventProgress, State: timekeeper.StateResting, Elapsed: 5}
	close(events)

	require.NoError(t, pump.Run(events))
	assert.Equal(t, []string{"update:00:05"}, view.calls)
}
