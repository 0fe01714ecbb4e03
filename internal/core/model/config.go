package model

const (
	// DefaultWorkSeconds is the work segment length used when none is stored.
	DefaultWorkSeconds = 50 * 60
	// DefaultRestSeconds is the rest segment length used when none is stored.
	DefaultRestSeconds = 10 * 60
	// DefaultLanguage is the locale used when none is stored.
	DefaultLanguage = "zh"
	// MinSegmentSeconds is the floor applied at the settings boundary.
	MinSegmentSeconds = 60
)

// Config is the durable user configuration stored alongside the statistics.
type Config struct {
	WorkSeconds int    `json:"work_sec" yaml:"work_sec"`
	RestSeconds int    `json:"rest_sec" yaml:"rest_sec"`
	Language    string `json:"lang" yaml:"lang"`
	AutoStart   bool   `json:"auto_start" yaml:"auto_start"`
}

// DefaultConfig returns the configuration of a fresh install.
func DefaultConfig() Config {
	return Config{
		WorkSeconds: DefaultWorkSeconds,
		RestSeconds: DefaultRestSeconds,
		Language:    DefaultLanguage,
		AutoStart:   false,
	}
}

// Normalize replaces missing or non-positive fields with defaults.
func (config Config) Normalize() Config {
	defaults := DefaultConfig()
	if config.WorkSeconds <= 0 {
		config.WorkSeconds = defaults.WorkSeconds
	}
	if config.RestSeconds <= 0 {
		config.RestSeconds = defaults.RestSeconds
	}
	if config.Language == "" {
		config.Language = defaults.Language
	}
	return config
}

// SegmentSecondsFromMinutes converts a user-entered minute count to seconds,
// floored to MinSegmentSeconds.
func SegmentSecondsFromMinutes(minutes int) int {
	return max(MinSegmentSeconds, minutes*60)
}
