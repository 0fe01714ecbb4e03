// Package i18n holds the user-visible strings in Chinese and English. The
// language can change at runtime, so lookups always take the language code.
package i18n

import (
	"fmt"
	"strings"
)

// Supported language codes.
const (
	Chinese = "zh"
	English = "en"
)

// Key names one translatable string.
type Key string

const (
	Pause         Key = "pause"
	Resume        Key = "resume"
	CurrentStatus Key = "current_status"
	ViewStats     Key = "view_stats"
	OpenSettings  Key = "open_settings"
	Exit          Key = "exit"

	StartWorkButton Key = "start_work_btn"
	EndRestButton   Key = "end_rest_btn"
	SettingsTitle   Key = "settings_title"
	WorkMinutes     Key = "work_min_label"
	RestMinutes     Key = "rest_min_label"
	SaveClose       Key = "save_close_btn"
	LanguageLabel   Key = "language_label"
	AutoStartLabel  Key = "auto_start_label"
	InvalidMinutes  Key = "invalid_minutes"
	LanguageZh      Key = "lang_zh"
	LanguageEn      Key = "lang_en"

	WorkBeginTitle   Key = "notif_work_begin_title"
	WorkBeginMessage Key = "notif_work_begin_msg"
	RestBeginTitle   Key = "notif_rest_begin_title"
	RestBeginMessage Key = "notif_rest_begin_msg"
	ResumedTitle     Key = "notif_continue_title"
	ResumedMessage   Key = "notif_continue_msg"
	PausedTitle      Key = "notif_paused_title"
	PausedMessage    Key = "notif_paused_msg"
	StatsTitle       Key = "notif_stats_title"

	Resting         Key = "resting"
	RestingOvertime Key = "resting_overtime"

	StatsToday Key = "stats_today"
	StatsTotal Key = "stats_total"
	StatsWork  Key = "stats_work"
	StatsRest  Key = "stats_rest"

	StatusWorkProgress Key = "status_work_progress"
	StatusRestProgress Key = "status_rest_progress"
	StatusPaused       Key = "status_paused_label"
	StatusRunning      Key = "status_running_label"
	TimerNotStarted    Key = "timer_not_started"
)

var tables = map[string]map[Key]string{
	Chinese: {
		Pause:         "暂停",
		Resume:        "继续",
		CurrentStatus: "当前状态",
		ViewStats:     "查看统计",
		OpenSettings:  "打开设置",
		Exit:          "退出",

		StartWorkButton: "开始工作",
		EndRestButton:   "结束休息",
		SettingsTitle:   "设置",
		WorkMinutes:     "工作时长 (分钟):",
		RestMinutes:     "休息时长 (分钟):",
		SaveClose:       "保存并关闭",
		LanguageLabel:   "语言:",
		AutoStartLabel:  "开机自启动",
		InvalidMinutes:  "请输入正整数分钟数",
		LanguageZh:      "中文",
		LanguageEn:      "English",

		WorkBeginTitle:   "开始工作",
		WorkBeginMessage: "专注 {duration}",
		RestBeginTitle:   "开始休息",
		RestBeginMessage: "放松 {duration}",
		ResumedTitle:     "继续",
		ResumedMessage:   "计时器已继续",
		PausedTitle:      "已暂停",
		PausedMessage:    "计时器已暂停",
		StatsTitle:       "统计",

		Resting:         "休息 {elapsed} / {target}",
		RestingOvertime: "休息 {elapsed} (已超时 {overtime})",

		StatsToday: "今日",
		StatsTotal: "总计",
		StatsWork:  "工作",
		StatsRest:  "休息",

		StatusWorkProgress: "已工作 {elapsed} / {target}",
		StatusRestProgress: "已休息 {elapsed} / {target}",
		StatusPaused:       "暂停中",
		StatusRunning:      "计时中",
		TimerNotStarted:    "未开始计时",
	},
	English: {
		Pause:         "Pause",
		Resume:        "Resume",
		CurrentStatus: "Status",
		ViewStats:     "Statistics",
		OpenSettings:  "Settings",
		Exit:          "Quit",

		StartWorkButton: "Start Working",
		EndRestButton:   "End Rest",
		SettingsTitle:   "Settings",
		WorkMinutes:     "Work duration (minutes):",
		RestMinutes:     "Rest duration (minutes):",
		SaveClose:       "Save & Close",
		LanguageLabel:   "Language:",
		AutoStartLabel:  "Launch at startup",
		InvalidMinutes:  "Enter a positive number of minutes",
		LanguageZh:      "Chinese",
		LanguageEn:      "English",

		WorkBeginTitle:   "Work Started",
		WorkBeginMessage: "Focus for {duration}",
		RestBeginTitle:   "Break Started",
		RestBeginMessage: "Relax for {duration}",
		ResumedTitle:     "Resumed",
		ResumedMessage:   "Timer resumed",
		PausedTitle:      "Paused",
		PausedMessage:    "Timer paused",
		StatsTitle:       "Statistics",

		Resting:         "Rest {elapsed} / {target}",
		RestingOvertime: "Rest {elapsed} (overtime {overtime})",

		StatsToday: "Today",
		StatsTotal: "Total",
		StatsWork:  "Work",
		StatsRest:  "Rest",

		StatusWorkProgress: "Worked {elapsed} / {target}",
		StatusRestProgress: "Rested {elapsed} / {target}",
		StatusPaused:       "paused",
		StatusRunning:      "running",
		TimerNotStarted:    "Timer not started",
	},
}

// Languages lists the supported codes in menu order.
func Languages() []string {
	return []string{Chinese, English}
}

// Supported reports whether language has a string table.
func Supported(language string) bool {
	_, ok := tables[language]
	return ok
}

// Vars are the named placeholders substituted into a string, e.g. {elapsed}.
type Vars map[string]string

// Text returns the string for key in language. Unknown languages fall back to
// Chinese; unknown keys return the key itself.
func Text(language string, key Key) string {
	table, ok := tables[language]
	if !ok {
		table = tables[Chinese]
	}
	if text, ok := table[key]; ok {
		return text
	}
	return string(key)
}

// Format returns Text with every {name} in vars replaced.
func Format(language string, key Key, vars Vars) string {
	text := Text(language, key)
	if len(vars) == 0 {
		return text
	}
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// FormatSeconds renders seconds as mm:ss. Minutes are not wrapped into hours.
func FormatSeconds[T ~int | ~int64](seconds T) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", int64(seconds)/60, int64(seconds)%60)
}

// LanguageName returns the display name of code in the given UI language.
func LanguageName(language, code string) string {
	if code == English {
		return Text(language, LanguageEn)
	}
	return Text(language, LanguageZh)
}

// LanguageCode maps a display name back to its code. Anything that does not
// start with "E" (English) selects Chinese.
func LanguageCode(name string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(name)), "e") {
		return English
	}
	return Chinese
}
