package preferences

import (
	"errors"
	"strconv"
	"strings"

	"workrest/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var errNotPositive = errors.New("not a positive integer")

// Callbacks receive the user's edits.
type Callbacks struct {
	// OnSave runs on "Save & Close" with the edited settings.
	OnSave func(Settings)
	// OnLanguage runs as soon as another language is selected.
	OnLanguage func(language string)
}

// Window handles the settings UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	callbacks Callbacks

	workLabel     *widget.Label
	restLabel     *widget.Label
	languageLabel *widget.Label
	workEntry     *widget.Entry
	restEntry     *widget.Entry
	language      *widget.Select
	autoStart     *widget.Check
	saveButton    *widget.Button
}

// New creates the settings window, hidden.
func New(app fyne.App, settings Settings, callbacks Callbacks) *Window {
	prefs := &Window{
		window:        app.NewWindow(""),
		settings:      settings,
		callbacks:     callbacks,
		workLabel:     widget.NewLabel(""),
		restLabel:     widget.NewLabel(""),
		languageLabel: widget.NewLabel(""),
		workEntry:     widget.NewEntry(),
		restEntry:     widget.NewEntry(),
		autoStart:     widget.NewCheck("", nil),
	}

	prefs.workEntry.Validator = validatePositiveInt
	prefs.restEntry.Validator = validatePositiveInt
	prefs.language = widget.NewSelect(nil, prefs.handleLanguage)
	prefs.saveButton = widget.NewButton("", prefs.handleSave)
	prefs.saveButton.Importance = widget.HighImportance

	form := container.New(
		layout.NewFormLayout(),
		prefs.workLabel, prefs.workEntry,
		prefs.restLabel, prefs.restEntry,
		prefs.languageLabel, prefs.language,
	)
	prefs.window.SetContent(container.NewVBox(form, prefs.autoStart, prefs.saveButton))
	prefs.window.SetCloseIntercept(prefs.window.Hide)
	prefs.window.Resize(fyne.NewSize(360, 220))

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the window values and relabels it.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.restEntry.SetText(strconv.Itoa(settings.RestMinutes))
	prefs.autoStart.SetChecked(settings.AutoStart)
	prefs.relabel(settings.Language)
}

func (prefs *Window) relabel(language string) {
	prefs.window.SetTitle(i18n.Text(language, i18n.SettingsTitle))
	prefs.workLabel.SetText(i18n.Text(language, i18n.WorkMinutes))
	prefs.restLabel.SetText(i18n.Text(language, i18n.RestMinutes))
	prefs.languageLabel.SetText(i18n.Text(language, i18n.LanguageLabel))
	prefs.autoStart.Text = i18n.Text(language, i18n.AutoStartLabel)
	prefs.autoStart.Refresh()
	prefs.saveButton.SetText(i18n.Text(language, i18n.SaveClose))

	options := make([]string, 0, len(i18n.Languages()))
	for _, code := range i18n.Languages() {
		options = append(options, i18n.LanguageName(language, code))
	}
	// Swap the callback out so relabelling does not report a change.
	onChanged := prefs.language.OnChanged
	prefs.language.OnChanged = nil
	prefs.language.SetOptions(options)
	prefs.language.SetSelected(i18n.LanguageName(language, language))
	prefs.language.OnChanged = onChanged
}

func (prefs *Window) handleLanguage(selected string) {
	language := i18n.LanguageCode(selected)
	if language == prefs.settings.Language {
		return
	}
	prefs.settings.Language = language
	prefs.relabel(language)
	if prefs.callbacks.OnLanguage != nil {
		prefs.callbacks.OnLanguage(language)
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	// Invalid input keeps the previous value.
	if minutes, ok := parsePositiveInt(prefs.workEntry.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.restEntry.Text); ok {
		settings.RestMinutes = minutes
	}
	settings.AutoStart = prefs.autoStart.Checked

	prefs.settings = settings
	prefs.workEntry.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.restEntry.SetText(strconv.Itoa(settings.RestMinutes))
	prefs.window.Hide()

	if prefs.callbacks.OnSave != nil {
		prefs.callbacks.OnSave(settings)
	}
}

func validatePositiveInt(value string) error {
	if _, ok := parsePositiveInt(value); !ok {
		return errNotPositive
	}
	return nil
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
