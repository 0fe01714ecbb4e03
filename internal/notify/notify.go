// Package notify delivers desktop notifications. The platform notifier shells
// out to notify-send (Linux) or osascript (macOS); elsewhere, or when those
// tools are missing, the caller's fallback is used.
package notify

import (
	"errors"
	"log/slog"
)

// Notifier sends a desktop notification.
type Notifier interface {
	Send(title, message string) error
}

// Func adapts a plain function to Notifier.
type Func func(title, message string) error

// Send calls fn.
func (fn Func) Send(title, message string) error {
	return fn(title, message)
}

type platformNotifier interface {
	Notifier
	IsSupported() bool
}

type noopNotifier struct{}

func (noopNotifier) Send(string, string) error { return nil }

// New returns the platform notifier when it is usable, falling back to
// fallback when it fails. A nil fallback drops what the platform cannot send.
func New(appName string, fallback Notifier) Notifier {
	return newWith(newPlatformNotifier(appName), fallback)
}

func newWith(platform platformNotifier, fallback Notifier) Notifier {
	if platform == nil || !platform.IsSupported() {
		if fallback == nil {
			return noopNotifier{}
		}
		return fallback
	}
	if fallback == nil {
		return platform
	}
	return Chain(platform, fallback)
}

// Chain tries each notifier in order and stops at the first success.
func Chain(notifiers ...Notifier) Notifier {
	return Func(func(title, message string) error {
		var errs []error
		for _, notifier := range notifiers {
			if notifier == nil {
				continue
			}
			err := notifier.Send(title, message)
			if err == nil {
				return nil
			}
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})
}

// Logged wraps notifier so failures are logged instead of returned.
// Notifications are best effort and must never stall the caller.
func Logged(notifier Notifier, logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Func(func(title, message string) error {
		if err := notifier.Send(title, message); err != nil {
			logger.Warn("notification failed", "title", title, "error", err)
		}
		return nil
	})
}
