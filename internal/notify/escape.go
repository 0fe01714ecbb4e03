package notify

import "strings"

// escapeAppleScript escapes backslashes and quotes for an AppleScript string.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
