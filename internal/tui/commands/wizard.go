// Package commands provides Bubble Tea commands for TUI operations.
// Every gateway-backed command is synchronous inside the command
// function; the Bubble Tea runtime keeps the UI responsive while at
// most one call is in flight.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nichekit-dev/nichekit/internal/plan"
	"github.com/nichekit-dev/nichekit/internal/tui"
	"github.com/nichekit-dev/nichekit/internal/wizard"
)

// SelectGroupCmd records the chosen focus group and fetches its
// insight. The group name must already have passed the session's
// membership check; callers validate before dispatching.
func SelectGroupCmd(session *wizard.Session, name string) tea.Cmd {
	return func() tea.Msg {
		insight, verr := session.SelectGroup(context.Background(), name)
		if verr != nil {
			return tui.InsightMsg{Text: ""}
		}
		return tui.InsightMsg{Text: insight}
	}
}

// SubmitTestCmd runs the viability test and returns feedback plus an
// optional size warning.
func SubmitTestCmd(session *wizard.Session, size wizard.SizeCheck, recognition string) tea.Cmd {
	return func() tea.Msg {
		feedback, warning, verr := session.SubmitTest(context.Background(), size, recognition)
		if verr != nil {
			return tui.FeedbackMsg{}
		}
		return tui.FeedbackMsg{Feedback: feedback, Warning: warning}
	}
}

// GenerateOfferingsCmd asks the gateway for offering suggestions and
// completes the wizard.
func GenerateOfferingsCmd(session *wizard.Session, availability, formatPref, location string) tea.Cmd {
	return func() tea.Msg {
		offerings, verr := session.GenerateOfferings(context.Background(), availability, formatPref, location)
		if verr != nil {
			return tui.OfferingsMsg{}
		}
		return tui.OfferingsMsg{Text: offerings}
	}
}

// ExportPlanCmd writes the plan document into dir.
func ExportPlanCmd(session *wizard.Session, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := plan.Write(dir, session.Record, session.Statement(), time.Now())
		if err != nil {
			return tui.ExportErrorMsg{Err: err}
		}
		session.RecordExport(path)
		return tui.ExportDoneMsg{Path: path}
	}
}
