// Package gateway wraps the external text-generation collaborator.
// It is the only network-facing component: it builds contextual
// prompts from session state, sends them, and converts every failure
// into a display string at this boundary.
package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/nichekit-dev/nichekit/internal/chat"
	"github.com/nichekit-dev/nichekit/internal/log"
	"github.com/nichekit-dev/nichekit/prompts"
)

// TextGenerator is the replaceable text-completion collaborator.
// Tests inject a deterministic stub; production uses AnthropicClient.
type TextGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// SessionState supplies the wizard context embedded in every request.
type SessionState interface {
	// StageName returns the current wizard stage name.
	StageName() string
	// Snapshot returns the response record as indented JSON.
	Snapshot() string
}

// Gateway builds contextual prompts and relays them to the text
// generator. On success it records both turns in the conversation
// log; on failure the log is left untouched and the error surfaces
// as a display string, never as an error value.
type Gateway struct {
	client TextGenerator
	log    *chat.Log
	state  SessionState
	events *log.Logger // optional
}

// New creates a Gateway over the given generator, conversation log,
// and session state source.
func New(client TextGenerator, conversation *chat.Log, state SessionState) *Gateway {
	return &Gateway{
		client: client,
		log:    conversation,
		state:  state,
	}
}

// SetEvents attaches an optional event logger. Event write failures
// are ignored; the log is an audit aid, not a dependency.
func (g *Gateway) SetEvents(events *log.Logger) {
	g.events = events
}

// Ask sends userInput with full session context to the collaborator.
// The request embeds the last five conversation turns, the current
// stage name, a JSON snapshot of the response record, and any
// caller-supplied extra context. On success the (user, assistant)
// turn pair is appended to the conversation log and the response text
// is returned. On any failure the log is not mutated and the returned
// string is "Error connecting to AI: <details>".
func (g *Gateway) Ask(ctx context.Context, userInput, extraContext string) string {
	block := prompts.ContextBlock(prompts.ContextData{
		History:  g.log.Transcript(chat.ContextWindow),
		Stage:    g.state.StageName(),
		Snapshot: g.state.Snapshot(),
		Extra:    extraContext,
	})
	prompt := fmt.Sprintf("%s\n\nUser input: %s", block, userInput)

	start := time.Now()
	response, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logEvent(log.LogEvent{
			Event:      log.EventGatewayFailed,
			Stage:      g.state.StageName(),
			Error:      err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		})
		return fmt.Sprintf("Error connecting to AI: %v", err)
	}

	g.log.Append(chat.RoleUser, userInput)
	g.log.Append(chat.RoleAssistant, response)

	g.logEvent(log.LogEvent{
		Event:      log.EventGatewayCalled,
		Stage:      g.state.StageName(),
		DurationMs: time.Since(start).Milliseconds(),
	})

	return response
}

func (g *Gateway) logEvent(event log.LogEvent) {
	if g.events == nil {
		return
	}
	_ = g.events.Append(event)
}
