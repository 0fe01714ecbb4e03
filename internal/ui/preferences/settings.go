package preferences

import (
	"workrest/internal/core/model"
)

// Settings are the values edited in the settings window. Durations are in
// whole minutes, the unit the user types.
type Settings struct {
	WorkMinutes int
	RestMinutes int
	Language    string
	AutoStart   bool
}

// FromConfig converts the stored configuration to editable settings.
func FromConfig(config model.Config) Settings {
	return Settings{
		WorkMinutes: config.WorkSeconds / 60,
		RestMinutes: config.RestSeconds / 60,
		Language:    config.Language,
		AutoStart:   config.AutoStart,
	}
}

// WorkSeconds returns the work target, never below one minute.
func (settings Settings) WorkSeconds() int {
	return model.SegmentSecondsFromMinutes(settings.WorkMinutes)
}

// RestSeconds returns the rest target, never below one minute.
func (settings Settings) RestSeconds() int {
	return model.SegmentSecondsFromMinutes(settings.RestMinutes)
}
