package app

import "strings"

type Intent string

const (
	IntentDetails Intent = "details"
	IntentChat    Intent = "chat"
)

// detailTriggers are matched as case-insensitive substrings. Any text
// that hits none of them is a plain conversational message.
var detailTriggers = []string{
	"what did i do",
	"what have i done",
	"summary",
	"summarize my day",
	"details",
	"show my activities",
	"list my activities",
	"my day so far",
}

// ClassifyIntent decides whether a message asks for the day's activity
// details or is general conversation. Pure and total: every input,
// including the empty string, yields exactly one intent.
func ClassifyIntent(text string) Intent {
	lowered := strings.ToLower(text)
	for _, trigger := range detailTriggers {
		if strings.Contains(lowered, trigger) {
			return IntentDetails
		}
	}
	return IntentChat
}
