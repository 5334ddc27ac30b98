package ui

import (
	"strings"
	"unicode/utf8"
)

const errorPrefix = "Error: "

// formatErrorForDisplay renders an error on a single truncated line so a
// long storage error never pushes the set list off screen.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := strings.TrimSpace(err.Error())
	if message == "" {
		message = "unknown error"
	}

	if maxWidth < 20 {
		maxWidth = 20
	}
	available := maxWidth - utf8.RuneCountInString(errorPrefix)

	runes := []rune(message)
	if len(runes) > available {
		if available > 3 {
			runes = runes[:available-3]
		}
		return errorPrefix + string(runes) + "..."
	}
	return errorPrefix + message
}
