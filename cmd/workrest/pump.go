package main

import (
	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"
	"workrest/internal/i18n"
	"workrest/internal/notify"
)

// view is what the event pump drives on the UI side.
type view interface {
	SetPaused(paused bool)
	SetLanguage(language string)
	ShowRest(elapsed, target int)
	UpdateRest(elapsed, target int)
	HideRest()
}

// eventPump turns timekeeper events into UI updates and notifications.
// UI calls go through do, which is fyne.Do in the running app.
type eventPump struct {
	view     view
	notifier notify.Notifier
	language string
	do       func(func())
}

func newEventPump(view view, notifier notify.Notifier, language string, do func(func())) *eventPump {
	return &eventPump{view: view, notifier: notifier, language: language, do: do}
}

// Run handles events until the channel is closed.
func (pump *eventPump) Run(events <-chan timekeeper.Event) error {
	for event := range events {
		pump.handle(event)
	}
	return nil
}

func (pump *eventPump) handle(event timekeeper.Event) {
	// Progress events carry no configuration.
	if event.Type != timekeeper.EventProgress && event.Config.Language != "" && event.Config.Language != pump.language {
		pump.language = event.Config.Language
		language := pump.language
		pump.do(func() { pump.view.SetLanguage(language) })
	}

	kind, _ := event.State.Kind()
	resting := kind == model.KindRest

	switch event.Type {
	case timekeeper.EventStateChange:
		paused := event.State.Paused()
		pump.do(func() {
			pump.view.SetPaused(paused)
			switch {
			case event.Notice == timekeeper.NoticeRestBegin:
				pump.view.ShowRest(event.Elapsed, event.Target)
			case resting:
				pump.view.UpdateRest(event.Elapsed, event.Target)
			default:
				pump.view.HideRest()
			}
		})
		if title, message, ok := i18n.Notice(pump.language, event.Notice, event.Config); ok {
			pump.notifier.Send(title, message)
		}
	case timekeeper.EventProgress, timekeeper.EventConfig:
		if resting {
			pump.do(func() { pump.view.UpdateRest(event.Elapsed, event.Target) })
		}
	}
}
