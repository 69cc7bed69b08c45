// Package wizard implements the niche finder state machine: the stage
// sequence, the validation gates between stages, and the data each
// stage collects.
package wizard

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/nichekit-dev/nichekit/internal/chat"
	"github.com/nichekit-dev/nichekit/internal/gateway"
	"github.com/nichekit-dev/nichekit/internal/log"
	"github.com/nichekit-dev/nichekit/prompts"
)

// Stage is a named step in the wizard's linear sequence.
type Stage int

const (
	StageWelcome Stage = iota
	StageStory
	StageGroups
	StageSelectGroup
	StageNarrow
	StageTest
	StageOfferings
	StageComplete
)

// StageCount is the total number of stages.
const StageCount = 8

var stageNames = [StageCount]string{
	"welcome",
	"story",
	"groups",
	"select_group",
	"narrow",
	"test",
	"offerings",
	"complete",
}

var stageTitles = [StageCount]string{
	"Welcome",
	"Your Story",
	"Groups You Know",
	"Select Focus",
	"Get Specific",
	"Test Viability",
	"Design Offerings",
	"Complete",
}

// String returns the stage's wire name, e.g. "select_group".
func (s Stage) String() string {
	if s < 0 || int(s) >= StageCount {
		return "unknown"
	}
	return stageNames[s]
}

// Title returns the stage's display name, e.g. "Select Focus".
func (s Stage) Title() string {
	if s < 0 || int(s) >= StageCount {
		return "Unknown"
	}
	return stageTitles[s]
}

// Corrective warnings shown when the viability test fails.
const (
	WarnTooNarrow = "Your niche might be too narrow. Consider broadening slightly."
	WarnTooBroad  = "Your niche might be too broad. Consider being more specific."
)

// ValidationError reports which required fields block a transition.
// It is recoverable: the transition is refused, entered data stays.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Session is the aggregate wizard state: current stage, the response
// record, the conversation log, and the gateway. All state is
// in-memory and owned by a single session; there is no cross-session
// sharing.
type Session struct {
	ID           string
	Stage        Stage
	Record       ResponseRecord
	Conversation *chat.Log

	gw     *gateway.Gateway
	events *log.Logger // optional
}

// NewSession creates a fresh session at the welcome stage, wiring the
// gateway over the session's own conversation log and state.
func NewSession(client gateway.TextGenerator) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		Stage:        StageWelcome,
		Conversation: chat.NewLog(),
	}
	s.gw = gateway.New(client, s.Conversation, s)
	return s
}

// SetEvents attaches an optional event logger for stage transitions
// and gateway calls.
func (s *Session) SetEvents(events *log.Logger) {
	s.events = events
	s.gw.SetEvents(events)
	s.logEvent(log.LogEvent{Event: log.EventSessionStarted})
}

// StageName implements gateway.SessionState.
func (s *Session) StageName() string {
	return s.Stage.String()
}

// Snapshot implements gateway.SessionState: the response record as
// indented JSON, the form embedded in every gateway request.
func (s *Session) Snapshot() string {
	data, err := json.MarshalIndent(s.Record, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Statement returns the current niche statement, or "" if the narrow
// stage has not produced one yet.
func (s *Session) Statement() string {
	return s.Record.NicheStatement()
}

// Groups returns the collected group list.
func (s *Session) Groups() []string {
	return s.Record.Groups
}

// Begin moves welcome -> story. Unconditional; a no-op elsewhere.
func (s *Session) Begin() {
	if s.Stage == StageWelcome {
		s.advance(StageStory)
	}
}

// SubmitStory gates story -> groups: both answers must be present.
func (s *Session) SubmitStory(challenge, transformation string) *ValidationError {
	var fields []string
	if challenge == "" {
		fields = append(fields, "challenge")
	}
	if transformation == "" {
		fields = append(fields, "transformation")
	}
	if len(fields) > 0 {
		return s.refuse(fields)
	}

	s.Record.Challenge = challenge
	s.Record.Transformation = transformation
	s.advance(StageGroups)
	return nil
}

// SubmitGroups gates groups -> select_group: of the five input slots,
// the non-empty entries are retained in their original order, and at
// least three are required.
func (s *Session) SubmitGroups(slots [5]string) *ValidationError {
	var groups []string
	for _, g := range slots {
		if g != "" {
			groups = append(groups, g)
		}
	}
	if len(groups) < 3 {
		return s.refuse([]string{"groups"})
	}

	s.Record.Groups = groups
	s.advance(StageSelectGroup)
	return nil
}

// SelectGroup records the chosen focus group and synchronously asks
// the gateway for a short follow-up insight. The returned insight may
// be an error display string; selection succeeds either way. The
// session remains on select_group until ConfirmGroup.
func (s *Session) SelectGroup(ctx context.Context, name string) (string, *ValidationError) {
	if !s.isKnownGroup(name) {
		return "", s.refuse([]string{"selected_group"})
	}

	s.Record.SelectedGroup = name
	insight := s.gw.Ask(ctx, prompts.Insight(name), "")
	return insight, nil
}

// ConfirmGroup gates select_group -> narrow: a group must be selected.
// Advancement does not depend on the insight call having succeeded.
func (s *Session) ConfirmGroup() *ValidationError {
	if s.Record.SelectedGroup == "" {
		return s.refuse([]string{"selected_group"})
	}
	s.advance(StageNarrow)
	return nil
}

// SubmitNarrow gates narrow -> test: struggle and moment are required,
// the narrower who is optional. The niche statement derives from these
// three fields.
func (s *Session) SubmitNarrow(struggle, moment, who string) *ValidationError {
	var fields []string
	if struggle == "" {
		fields = append(fields, "specific_struggle")
	}
	if moment == "" {
		fields = append(fields, "acute_moment")
	}
	if len(fields) > 0 {
		return s.refuse(fields)
	}

	s.Record.SpecificStruggle = struggle
	s.Record.AcuteMoment = moment
	s.Record.SpecificWho = who
	s.advance(StageTest)
	return nil
}

// SubmitTest gates test -> offerings. Both answers are required. The
// gateway is asked once for qualitative feedback before branching; the
// feedback never gates the transition. A too_narrow or too_broad size
// answer keeps the session on test with a corrective warning — the
// only ways out are Back or an eventual sufficient answer.
func (s *Session) SubmitTest(ctx context.Context, size SizeCheck, recognition string) (feedback, warning string, verr *ValidationError) {
	var fields []string
	switch size {
	case SizeSufficient, SizeTooNarrow, SizeTooBroad:
	default:
		fields = append(fields, "size_check")
	}
	if recognition == "" {
		fields = append(fields, "recognition")
	}
	if len(fields) > 0 {
		return "", "", s.refuse(fields)
	}

	s.Record.SizeCheck = size
	s.Record.Recognition = recognition

	feedback = s.gw.Ask(ctx, prompts.Feedback(s.Statement(), size.Label(), recognition), "")

	switch size {
	case SizeTooNarrow:
		return feedback, WarnTooNarrow, nil
	case SizeTooBroad:
		return feedback, WarnTooBroad, nil
	}

	s.advance(StageOfferings)
	return feedback, "", nil
}

// GenerateOfferings gates offerings -> complete on an explicit
// generate action. All three preferences are required. The stored
// offerings value is whatever text the gateway returns — an error
// display string included — so the transition advances on success and
// failure alike.
func (s *Session) GenerateOfferings(ctx context.Context, availability, formatPref, location string) (string, *ValidationError) {
	var fields []string
	if availability == "" {
		fields = append(fields, "availability")
	}
	if formatPref == "" {
		fields = append(fields, "format_pref")
	}
	if location == "" {
		fields = append(fields, "location")
	}
	if len(fields) > 0 {
		return "", s.refuse(fields)
	}

	s.Record.Availability = availability
	s.Record.FormatPref = formatPref
	s.Record.Location = location

	offerings := s.gw.Ask(ctx, prompts.Offerings(s.Statement(), availability, formatPref, location), "")
	s.Record.Offerings = offerings

	s.logEvent(log.LogEvent{Event: log.EventOfferingsGenerated})
	s.advance(StageComplete)
	return offerings, nil
}

// RecordExport notes a successful plan export in the event log.
func (s *Session) RecordExport(path string) {
	s.logEvent(log.LogEvent{Event: log.EventPlanExported, Path: path})
}

// Back steps to the immediately preceding stage with no data loss.
// It reports whether a step happened: welcome has nothing before it
// and complete is terminal.
func (s *Session) Back() bool {
	if s.Stage <= StageWelcome || s.Stage >= StageComplete {
		return false
	}
	from := s.Stage
	s.Stage--
	s.logEvent(log.LogEvent{
		Event: log.EventStageBack,
		From:  from.String(),
		To:    s.Stage.String(),
	})
	return true
}

// Reset restores every field to its initial empty state under a fresh
// session id: the record, the conversation log, the derived statement,
// and the groups list.
func (s *Session) Reset() {
	s.logEvent(log.LogEvent{Event: log.EventSessionReset})
	s.ID = uuid.NewString()
	s.Stage = StageWelcome
	s.Record = ResponseRecord{}
	s.Conversation.Reset()
}

func (s *Session) isKnownGroup(name string) bool {
	if name == "" {
		return false
	}
	for _, g := range s.Record.Groups {
		if g == name {
			return true
		}
	}
	return false
}

func (s *Session) advance(to Stage) {
	from := s.Stage
	s.Stage = to
	s.logEvent(log.LogEvent{
		Event: log.EventStageAdvanced,
		From:  from.String(),
		To:    to.String(),
	})
}

func (s *Session) refuse(fields []string) *ValidationError {
	s.logEvent(log.LogEvent{
		Event:  log.EventValidationFailed,
		Stage:  s.Stage.String(),
		Fields: fields,
	})
	return &ValidationError{Fields: fields}
}

func (s *Session) logEvent(event log.LogEvent) {
	if s.events == nil {
		return
	}
	event.Session = s.ID
	_ = s.events.Append(event)
}
