package preferences

import (
	"testing"

	"workrest/internal/core/model"
	"workrest/internal/i18n"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Conversion(t *testing.T) {
	settings := FromConfig(model.Config{WorkSeconds: 3000, RestSeconds: 90, Language: "en", AutoStart: true})
	assert.Equal(t, Settings{WorkMinutes: 50, RestMinutes: 1, Language: "en", AutoStart: true}, settings)

	assert.Equal(t, 3000, settings.WorkSeconds())
	assert.Equal(t, 60, settings.RestSeconds())
	assert.Equal(t, 60, Settings{}.WorkSeconds())
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := parsePositiveInt(" 25 ")
	assert.True(t, ok)
	assert.Equal(t, 25, value)

	for _, input := range []string{"", "0", "-5", "1.5", "abc"} {
		_, ok := parsePositiveInt(input)
		assert.False(t, ok, input)
		assert.Error(t, validatePositiveInt(input), input)
	}
}

func newTestWindow(t *testing.T, callbacks Callbacks) *Window {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return New(app, Settings{WorkMinutes: 50, RestMinutes: 10, Language: i18n.English}, callbacks)
}

func TestWindow_Save(t *testing.T) {
	var saved []Settings
	prefs := newTestWindow(t, Callbacks{OnSave: func(settings Settings) { saved = append(saved, settings) }})

	prefs.workEntry.SetText("25")
	prefs.restEntry.SetText("nope")
	prefs.autoStart.SetChecked(true)
	test.Tap(prefs.saveButton)

	require.Len(t, saved, 1)
	assert.Equal(t, Settings{WorkMinutes: 25, RestMinutes: 10, Language: i18n.English, AutoStart: true}, saved[0])
	assert.Equal(t, "10", prefs.restEntry.Text)
}

func TestWindow_LanguageSwitch(t *testing.T) {
	var switched []string
	prefs := newTestWindow(t, Callbacks{OnLanguage: func(language string) { switched = append(switched, language) }})

	assert.Equal(t, "Settings", prefs.window.Title())
	assert.Equal(t, []string{"Chinese", "English"}, prefs.language.Options)
	assert.Equal(t, "English", prefs.language.Selected)

	prefs.language.SetSelected("Chinese")

	assert.Equal(t, []string{i18n.Chinese}, switched)
	assert.Equal(t, "设置", prefs.window.Title())
	assert.Equal(t, "保存并关闭", prefs.saveButton.Text)
	assert.Equal(t, []string{"中文", "English"}, prefs.language.Options)
	assert.Equal(t, "中文", prefs.language.Selected)

	prefs.UpdateSettings(Settings{WorkMinutes: 5, RestMinutes: 1, Language: i18n.Chinese})
	assert.Len(t, switched, 1, "programmatic updates are not reported")
}
