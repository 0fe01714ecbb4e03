// Package overlay holds the two small undecorated popups: the start window
// shown at launch and the rest window shown while a rest segment runs.
// Methods must be called on the fyne main thread.
package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var (
	darkBackground = color.NRGBA{R: 34, G: 40, B: 49, A: 255}
	lightText      = color.NRGBA{R: 238, G: 238, B: 238, A: 255}
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// newPopup creates an undecorated window when the driver supports it.
func newPopup(app fyne.App, title string) fyne.Window {
	window := app.NewWindow(title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	return window
}

func darkPanel(objects ...fyne.CanvasObject) fyne.CanvasObject {
	background := canvas.NewRectangle(darkBackground)
	return container.NewStack(background, container.NewPadded(container.NewVBox(objects...)))
}

func showOnTop(window fyne.Window) {
	window.Show()
	window.CenterOnScreen()
	window.RequestFocus()
	applyNativeTopmost(window)
}

func newInfoText() *canvas.Text {
	text := canvas.NewText("", lightText)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = 16
	return text
}

func newWideButton(label string, tapped func()) *widget.Button {
	button := widget.NewButton(label, tapped)
	button.Importance = widget.HighImportance
	return button
}
