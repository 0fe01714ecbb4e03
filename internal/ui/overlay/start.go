package overlay

import (
	"workrest/internal/i18n"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// StartWindow offers the single "start working" action.
type StartWindow struct {
	window  fyne.Window
	button  *widget.Button
	onStart func()
}

// NewStartWindow builds the window hidden. onStart runs after the window hides.
func NewStartWindow(app fyne.App, language string, onStart func()) *StartWindow {
	start := &StartWindow{
		window:  newPopup(app, "WorkRest"),
		onStart: onStart,
	}
	start.button = newWideButton(i18n.Text(language, i18n.StartWorkButton), start.begin)

	start.window.SetContent(darkPanel(start.button))
	start.window.SetCloseIntercept(start.window.Hide)
	start.window.SetFixedSize(true)
	return start
}

// Show raises the window above others.
func (start *StartWindow) Show() {
	showOnTop(start.window)
}

// Hide hides the window.
func (start *StartWindow) Hide() {
	start.window.Hide()
}

// SetLanguage relabels the button.
func (start *StartWindow) SetLanguage(language string) {
	start.button.SetText(i18n.Text(language, i18n.StartWorkButton))
}

func (start *StartWindow) begin() {
	start.window.Hide()
	if start.onStart != nil {
		start.onStart()
	}
}
