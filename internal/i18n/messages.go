package i18n

import (
	"fmt"

	"workrest/internal/core/model"
	"workrest/internal/core/timekeeper"
)

// Notice returns the notification title and message for a timekeeper notice.
// ok is false for notices that are not shown to the user, including stops,
// which only happen on quit.
func Notice(language string, notice timekeeper.Notice, config model.Config) (title, message string, ok bool) {
	switch notice {
	case timekeeper.NoticeWorkBegin:
		return Text(language, WorkBeginTitle),
			Format(language, WorkBeginMessage, Vars{"duration": FormatSeconds(config.WorkSeconds)}), true
	case timekeeper.NoticeRestBegin:
		return Text(language, RestBeginTitle),
			Format(language, RestBeginMessage, Vars{"duration": FormatSeconds(config.RestSeconds)}), true
	case timekeeper.NoticePaused:
		return Text(language, PausedTitle), Text(language, PausedMessage), true
	case timekeeper.NoticeResumed:
		return Text(language, ResumedTitle), Text(language, ResumedMessage), true
	}
	return "", "", false
}

// Status renders the "current status" notification body.
func Status(language string, status timekeeper.Status) string {
	kind, ok := status.State.Kind()
	if !ok {
		return Text(language, TimerNotStarted)
	}

	progressKey := StatusWorkProgress
	if kind == model.KindRest {
		progressKey = StatusRestProgress
	}
	progress := Format(language, progressKey, Vars{
		"elapsed": FormatSeconds(status.Elapsed),
		"target":  FormatSeconds(status.Target),
	})

	label := Text(language, StatusRunning)
	if status.State.Paused() {
		label = Text(language, StatusPaused)
	}
	return fmt.Sprintf("%s (%s)", progress, label)
}

// Stats renders the two-line statistics notification body.
func Stats(language string, stats timekeeper.Stats) string {
	work, rest := Text(language, StatsWork), Text(language, StatsRest)
	return fmt.Sprintf("%s %s %s  %s %s\n%s %s %s  %s %s",
		Text(language, StatsToday), work, FormatSeconds(stats.TodayWork), rest, FormatSeconds(stats.TodayRest),
		Text(language, StatsTotal), work, FormatSeconds(stats.TotalWork), rest, FormatSeconds(stats.TotalRest),
	)
}

// RestProgress renders the rest window line: elapsed against target, or the
// overtime once the target is reached.
func RestProgress(language string, elapsed, target int) string {
	if elapsed >= target {
		return Format(language, RestingOvertime, Vars{
			"elapsed":  FormatSeconds(elapsed),
			"overtime": FormatSeconds(elapsed - target),
		})
	}
	return Format(language, Resting, Vars{
		"elapsed": FormatSeconds(elapsed),
		"target":  FormatSeconds(target),
	})
}
