//go:build !windows

package overlay

import "fyne.io/fyne/v2"

// Other platforms rely on RequestFocus; fyne has no portable always-on-top.
func applyNativeTopmost(fyne.Window) {}
