package overlay

import (
	"workrest/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// RestWindow shows rest progress and the "end rest" action. Closing the
// window ends the rest as well.
type RestWindow struct {
	window    fyne.Window
	info      *canvas.Text
	button    *widget.Button
	onEndRest func()

	language string
	elapsed  int
	target   int
	visible  bool
}

// NewRestWindow builds the window hidden.
func NewRestWindow(app fyne.App, language string, onEndRest func()) *RestWindow {
	rest := &RestWindow{
		window:    newPopup(app, "WorkRest"),
		info:      newInfoText(),
		onEndRest: onEndRest,
		language:  language,
	}
	rest.button = newWideButton(i18n.Text(language, i18n.EndRestButton), rest.endRest)

	rest.window.SetContent(darkPanel(rest.info, rest.button))
	rest.window.SetCloseIntercept(rest.endRest)
	rest.window.SetFixedSize(true)
	rest.refresh()
	return rest
}

// Show updates the progress and raises the window.
func (rest *RestWindow) Show(elapsed, target int) {
	rest.SetProgress(elapsed, target)
	rest.visible = true
	showOnTop(rest.window)
}

// Hide hides the window without ending the rest.
func (rest *RestWindow) Hide() {
	rest.visible = false
	rest.window.Hide()
}

// Visible reports whether Show was called since the last Hide.
func (rest *RestWindow) Visible() bool {
	return rest.visible
}

// SetProgress updates the elapsed and target seconds.
func (rest *RestWindow) SetProgress(elapsed, target int) {
	rest.elapsed, rest.target = elapsed, target
	rest.refresh()
}

// SetLanguage relabels the window.
func (rest *RestWindow) SetLanguage(language string) {
	rest.language = language
	rest.button.SetText(i18n.Text(language, i18n.EndRestButton))
	rest.refresh()
}

// Text returns the progress line currently displayed.
func (rest *RestWindow) Text() string {
	return rest.info.Text
}

func (rest *RestWindow) refresh() {
	rest.info.Text = i18n.RestProgress(rest.language, rest.elapsed, rest.target)
	rest.info.Refresh()
	// Text width changes with language and overtime.
	rest.window.Resize(rest.window.Content().MinSize())
}

func (rest *RestWindow) endRest() {
	rest.Hide()
	if rest.onEndRest != nil {
		rest.onEndRest()
	}
}
