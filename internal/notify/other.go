//go:build !darwin && !linux

package notify

// Windows and the rest rely on the fallback notifier.
func newPlatformNotifier(string) platformNotifier {
	return nil
}
