// Package testutil provides test helper utilities for nichekit tests.
package testutil

import (
	"context"
	"errors"
)

// ScriptedGenerator is a deterministic TextGenerator stub. It records
// every prompt it receives and replays queued replies in order. When
// the queue is empty it returns DefaultReply. Setting Err makes every
// call fail instead.
type ScriptedGenerator struct {
	Replies      []string
	DefaultReply string
	Err          error
	Prompts      []string // every prompt received, in order
}

// NewScriptedGenerator returns a stub that answers every prompt with
// the given replies, then with "ok".
func NewScriptedGenerator(replies ...string) *ScriptedGenerator {
	return &ScriptedGenerator{
		Replies:      replies,
		DefaultReply: "ok",
	}
}

// NewFailingGenerator returns a stub whose every call fails with the
// given message.
func NewFailingGenerator(message string) *ScriptedGenerator {
	return &ScriptedGenerator{Err: errors.New(message)}
}

// Complete implements gateway.TextGenerator.
func (g *ScriptedGenerator) Complete(_ context.Context, prompt string) (string, error) {
	g.Prompts = append(g.Prompts, prompt)
	if g.Err != nil {
		return "", g.Err
	}
	if len(g.Replies) > 0 {
		reply := g.Replies[0]
		g.Replies = g.Replies[1:]
		return reply, nil
	}
	return g.DefaultReply, nil
}

// Calls returns how many prompts the stub has received.
func (g *ScriptedGenerator) Calls() int {
	return len(g.Prompts)
}
