//go:build darwin

package notify

import (
	"fmt"
	"os/exec"
)

// darwinNotifier sends notifications through osascript.
type darwinNotifier struct{}

func newPlatformNotifier(string) platformNotifier {
	return &darwinNotifier{}
}

func (n *darwinNotifier) IsSupported() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

func (n *darwinNotifier) Send(title, message string) error {
	script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(message), escapeAppleScript(title))
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}
