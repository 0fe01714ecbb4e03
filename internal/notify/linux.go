//go:build linux

package notify

import (
	"fmt"
	"os/exec"
)

// linuxNotifier sends notifications through notify-send.
type linuxNotifier struct {
	appName string
}

func newPlatformNotifier(appName string) platformNotifier {
	return &linuxNotifier{appName: appName}
}

func (n *linuxNotifier) IsSupported() bool {
	_, err := exec.LookPath("notify-send")
	return err == nil
}

func (n *linuxNotifier) Send(title, message string) error {
	cmd := exec.Command("notify-send", "--app-name="+n.appName, title, message)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notify-send failed: %w", err)
	}
	return nil
}
