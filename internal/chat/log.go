// Package chat holds the in-memory conversation log shared between the
// wizard and the text-generation gateway.
package chat

import (
	"fmt"
	"strings"
)

// Turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ContextWindow is the number of most recent turns included when the
// gateway builds prompt context. Older turns stay in the log for
// display and export; they are simply invisible to the assistant.
const ContextWindow = 5

// Turn is a single entry in the conversation log.
type Turn struct {
	Role string // user, assistant
	Text string
}

// Log is an append-only ordered sequence of turns. It is owned by a
// single session and is never shared across sessions.
type Log struct {
	turns []Turn
}

// NewLog returns an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a turn to the end of the log.
func (l *Log) Append(role, text string) {
	l.turns = append(l.turns, Turn{Role: role, Text: text})
}

// Len returns the total number of turns, including those outside the
// context window.
func (l *Log) Len() int {
	return len(l.turns)
}

// Turns returns a copy of every turn in order.
func (l *Log) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Window returns a copy of the most recent n turns. If the log holds
// fewer than n turns, all of them are returned.
func (l *Log) Window(n int) []Turn {
	if n < 0 {
		n = 0
	}
	start := len(l.turns) - n
	if start < 0 {
		start = 0
	}
	out := make([]Turn, len(l.turns)-start)
	copy(out, l.turns[start:])
	return out
}

// Transcript renders the most recent n turns as role-prefixed lines
// joined by newlines, the form the gateway embeds in prompt context.
func (l *Log) Transcript(n int) string {
	window := l.Window(n)
	lines := make([]string, 0, len(window))
	for _, t := range window {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Role, t.Text))
	}
	return strings.Join(lines, "\n")
}

// Reset empties the log.
func (l *Log) Reset() {
	l.turns = nil
}
