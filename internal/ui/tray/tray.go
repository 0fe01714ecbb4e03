package tray

import (
	"workrest/internal/i18n"
	"workrest/resources"

	"fyne.io/fyne/v2"
)

// App is the part of desktop.App the tray drives.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnStatus      func()
	OnStats       func()
	OnSettings    func()
	OnQuit        func()
}

// Manager owns the tray menu. Its methods must run on the fyne main thread.
type Manager struct {
	app       App
	callbacks Callbacks
	language  string
	paused    bool

	pauseItem    *fyne.MenuItem
	statusItem   *fyne.MenuItem
	statsItem    *fyne.MenuItem
	settingsItem *fyne.MenuItem
	quitItem     *fyne.MenuItem
}

// New installs the tray menu and the active icon.
func New(app App, language string, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		language:  language,
	}

	manager.pauseItem = fyne.NewMenuItem("", call(&manager.callbacks.OnTogglePause))
	manager.statusItem = fyne.NewMenuItem("", call(&manager.callbacks.OnStatus))
	manager.statsItem = fyne.NewMenuItem("", call(&manager.callbacks.OnStats))
	manager.settingsItem = fyne.NewMenuItem("", call(&manager.callbacks.OnSettings))
	manager.quitItem = fyne.NewMenuItem("", call(&manager.callbacks.OnQuit))
	// Keeps fyne from appending its own Quit entry.
	manager.quitItem.IsQuit = true

	manager.relabel()
	manager.refreshIcon()
	return manager
}

// SetPaused swaps the pause item label and the tray icon.
func (manager *Manager) SetPaused(paused bool) {
	if manager.paused == paused {
		return
	}
	manager.paused = paused
	manager.relabel()
	manager.refreshIcon()
}

// SetLanguage relabels every item.
func (manager *Manager) SetLanguage(language string) {
	if manager.language == language {
		return
	}
	manager.language = language
	manager.relabel()
}

// Paused reports the state last passed to SetPaused.
func (manager *Manager) Paused() bool {
	return manager.paused
}

func (manager *Manager) relabel() {
	pauseKey := i18n.Pause
	if manager.paused {
		pauseKey = i18n.Resume
	}
	manager.pauseItem.Label = i18n.Text(manager.language, pauseKey)
	manager.statusItem.Label = i18n.Text(manager.language, i18n.CurrentStatus)
	manager.statsItem.Label = i18n.Text(manager.language, i18n.ViewStats)
	manager.settingsItem.Label = i18n.Text(manager.language, i18n.OpenSettings)
	manager.quitItem.Label = i18n.Text(manager.language, i18n.Exit)

	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu("WorkRest",
			manager.pauseItem,
			manager.statusItem,
			manager.statsItem,
			manager.settingsItem,
			fyne.NewMenuItemSeparator(),
			manager.quitItem,
		))
	}
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	variant := resources.Active
	if manager.paused {
		variant = resources.Paused
	}
	manager.app.SetSystemTrayIcon(resources.MustIcon(variant))
}

// call defers the callback lookup so callbacks may be assigned after New.
func call(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
