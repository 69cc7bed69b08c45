package wizard

import (
	"context"
	"strings"
	"testing"

	"github.com/nichekit-dev/nichekit/internal/testutil"
)

func newTestSession(t *testing.T) (*Session, *testutil.ScriptedGenerator) {
	t.Helper()
	gen := testutil.NewScriptedGenerator()
	return NewSession(gen), gen
}

// driveToStage advances a fresh session to the requested stage with
// valid answers at every gate.
func driveToStage(t *testing.T, s *Session, target Stage) {
	t.Helper()
	ctx := context.Background()

	steps := []func(){
		func() { s.Begin() },
		func() {
			if err := s.SubmitStory("burnout", "calm under pressure"); err != nil {
				t.Fatalf("SubmitStory: %v", err)
			}
		},
		func() {
			if err := s.SubmitGroups([5]string{"nurses", "teachers", "parents"}); err != nil {
				t.Fatalf("SubmitGroups: %v", err)
			}
		},
		func() {
			if _, err := s.SelectGroup(ctx, "nurses"); err != nil {
				t.Fatalf("SelectGroup: %v", err)
			}
			if err := s.ConfirmGroup(); err != nil {
				t.Fatalf("ConfirmGroup: %v", err)
			}
		},
		func() {
			if err := s.SubmitNarrow("shift fatigue", "after night shifts", "ER nurses"); err != nil {
				t.Fatalf("SubmitNarrow: %v", err)
			}
		},
		func() {
			if _, _, err := s.SubmitTest(ctx, SizeSufficient, "always exhausted but can't sleep"); err != nil {
				t.Fatalf("SubmitTest: %v", err)
			}
		},
		func() {
			if _, err := s.GenerateOfferings(ctx, "5 hours/week", "6-week series", "online"); err != nil {
				t.Fatalf("GenerateOfferings: %v", err)
			}
		},
	}

	for s.Stage < target {
		steps[s.Stage]()
	}
}

func TestNewSessionStartsAtWelcome(t *testing.T) {
	s, _ := newTestSession(t)

	if s.Stage != StageWelcome {
		t.Errorf("initial stage = %s, want welcome", s.Stage)
	}
	if s.ID == "" {
		t.Error("session id is empty")
	}
	if s.Conversation.Len() != 0 {
		t.Errorf("initial conversation length = %d, want 0", s.Conversation.Len())
	}
}

func TestBeginOnlyLeavesWelcome(t *testing.T) {
	s, _ := newTestSession(t)

	s.Begin()
	if s.Stage != StageStory {
		t.Fatalf("stage after Begin = %s, want story", s.Stage)
	}

	// A second Begin from story is a no-op.
	s.Begin()
	if s.Stage != StageStory {
		t.Errorf("stage after repeated Begin = %s, want story", s.Stage)
	}
}

func TestSubmitStoryRequiresBothAnswers(t *testing.T) {
	tests := []struct {
		name           string
		challenge      string
		transformation string
		wantFields     []string
	}{
		{"missing challenge", "", "calm", []string{"challenge"}},
		{"missing transformation", "burnout", "", []string{"transformation"}},
		{"missing both", "", "", []string{"challenge", "transformation"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			s.Begin()

			verr := s.SubmitStory(tt.challenge, tt.transformation)
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if strings.Join(verr.Fields, ",") != strings.Join(tt.wantFields, ",") {
				t.Errorf("fields = %v, want %v", verr.Fields, tt.wantFields)
			}
			if s.Stage != StageStory {
				t.Errorf("stage = %s, want story (refused transition)", s.Stage)
			}
		})
	}
}

func TestSubmitGroupsKeepsOrderAndSkipsBlanks(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageGroups)

	if err := s.SubmitGroups([5]string{"nurses", "", "teachers", "", "parents"}); err != nil {
		t.Fatalf("SubmitGroups: %v", err)
	}

	got := s.Groups()
	want := []string{"nurses", "teachers", "parents"}
	if len(got) != len(want) {
		t.Fatalf("groups = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("groups[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if s.Stage != StageSelectGroup {
		t.Errorf("stage = %s, want select_group", s.Stage)
	}
}

func TestSubmitGroupsRequiresThree(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageGroups)

	verr := s.SubmitGroups([5]string{"nurses", "teachers"})
	if verr == nil {
		t.Fatal("expected validation error with two groups")
	}
	if s.Stage != StageGroups {
		t.Errorf("stage = %s, want groups", s.Stage)
	}
}

func TestSelectGroupRejectsUnknownName(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageSelectGroup)

	if _, verr := s.SelectGroup(context.Background(), "pilots"); verr == nil {
		t.Fatal("expected validation error for group outside the list")
	}
	if s.Record.SelectedGroup != "" {
		t.Errorf("selected_group = %q, want empty", s.Record.SelectedGroup)
	}
}

func TestSelectGroupAsksForInsightAndStays(t *testing.T) {
	gen := testutil.NewScriptedGenerator("nurses carry stress home")
	s := NewSession(gen)
	driveToStage(t, s, StageSelectGroup)

	insight, verr := s.SelectGroup(context.Background(), "nurses")
	if verr != nil {
		t.Fatalf("SelectGroup: %v", verr)
	}
	if insight != "nurses carry stress home" {
		t.Errorf("insight = %q", insight)
	}
	if s.Stage != StageSelectGroup {
		t.Errorf("stage = %s, want select_group until confirmed", s.Stage)
	}
	if s.Conversation.Len() != 2 {
		t.Errorf("conversation length = %d, want 2 (user + assistant)", s.Conversation.Len())
	}
}

func TestConfirmGroupRequiresSelection(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageSelectGroup)

	if verr := s.ConfirmGroup(); verr == nil {
		t.Fatal("expected validation error before any selection")
	}

	if _, verr := s.SelectGroup(context.Background(), "nurses"); verr != nil {
		t.Fatalf("SelectGroup: %v", verr)
	}
	if verr := s.ConfirmGroup(); verr != nil {
		t.Fatalf("ConfirmGroup: %v", verr)
	}
	if s.Stage != StageNarrow {
		t.Errorf("stage = %s, want narrow", s.Stage)
	}
}

func TestSelectGroupSucceedsWhenGatewayFails(t *testing.T) {
	gen := testutil.NewFailingGenerator("boom")
	s := NewSession(gen)
	driveToStage(t, s, StageSelectGroup)

	insight, verr := s.SelectGroup(context.Background(), "nurses")
	if verr != nil {
		t.Fatalf("SelectGroup: %v", verr)
	}
	if !strings.HasPrefix(insight, "Error connecting to AI: ") {
		t.Errorf("insight = %q, want error display string", insight)
	}
	if s.Conversation.Len() != 0 {
		t.Errorf("conversation length = %d, want 0 after failed call", s.Conversation.Len())
	}
	if verr := s.ConfirmGroup(); verr != nil {
		t.Fatalf("ConfirmGroup after failed insight: %v", verr)
	}
}

func TestNicheStatementDerivation(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageNarrow)

	if s.Statement() != "" {
		t.Errorf("statement before narrow answers = %q, want empty", s.Statement())
	}

	if err := s.SubmitNarrow("shift fatigue", "after night shifts", "ER nurses"); err != nil {
		t.Fatalf("SubmitNarrow: %v", err)
	}

	want := "I help ER nurses who struggle with shift fatigue, especially after night shifts"
	if s.Statement() != want {
		t.Errorf("statement = %q, want %q", s.Statement(), want)
	}
	// Derivation is stable across repeated reads.
	if s.Statement() != want {
		t.Errorf("statement changed on re-read")
	}
}

func TestNicheStatementFallsBackToSelectedGroup(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageNarrow)

	if err := s.SubmitNarrow("shift fatigue", "after night shifts", ""); err != nil {
		t.Fatalf("SubmitNarrow: %v", err)
	}

	want := "I help nurses who struggle with shift fatigue, especially after night shifts"
	if s.Statement() != want {
		t.Errorf("statement = %q, want %q", s.Statement(), want)
	}
}

func TestSubmitNarrowRequiresStruggleAndMoment(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageNarrow)

	verr := s.SubmitNarrow("", "", "ER nurses")
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Fields) != 2 {
		t.Errorf("fields = %v, want specific_struggle and acute_moment", verr.Fields)
	}
	if s.Stage != StageNarrow {
		t.Errorf("stage = %s, want narrow", s.Stage)
	}
}

func TestSubmitTestSufficientAdvances(t *testing.T) {
	gen := testutil.NewScriptedGenerator("insight", "solid niche")
	s := NewSession(gen)
	driveToStage(t, s, StageTest)

	feedback, warning, verr := s.SubmitTest(context.Background(), SizeSufficient, "always tired")
	if verr != nil {
		t.Fatalf("SubmitTest: %v", verr)
	}
	if feedback != "solid niche" {
		t.Errorf("feedback = %q", feedback)
	}
	if warning != "" {
		t.Errorf("warning = %q, want empty", warning)
	}
	if s.Stage != StageOfferings {
		t.Errorf("stage = %s, want offerings", s.Stage)
	}
}

func TestSubmitTestLoopsOnNarrowAndBroad(t *testing.T) {
	tests := []struct {
		name        string
		size        SizeCheck
		wantWarning string
	}{
		{"too narrow", SizeTooNarrow, WarnTooNarrow},
		{"too broad", SizeTooBroad, WarnTooBroad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			driveToStage(t, s, StageTest)

			// The loop has no exit except back or a sufficient answer.
			for i := 0; i < 3; i++ {
				_, warning, verr := s.SubmitTest(context.Background(), tt.size, "always tired")
				if verr != nil {
					t.Fatalf("SubmitTest #%d: %v", i, verr)
				}
				if warning != tt.wantWarning {
					t.Errorf("warning = %q, want %q", warning, tt.wantWarning)
				}
				if s.Stage != StageTest {
					t.Fatalf("stage = %s, want test", s.Stage)
				}
			}

			if _, _, verr := s.SubmitTest(context.Background(), SizeSufficient, "always tired"); verr != nil {
				t.Fatalf("SubmitTest sufficient: %v", verr)
			}
			if s.Stage != StageOfferings {
				t.Errorf("stage = %s, want offerings after sufficient answer", s.Stage)
			}
		})
	}
}

func TestSubmitTestRequiresBothAnswers(t *testing.T) {
	s, gen := newTestSession(t)
	driveToStage(t, s, StageTest)

	before := gen.Calls()
	_, _, verr := s.SubmitTest(context.Background(), SizeUnset, "")
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if gen.Calls() != before {
		t.Error("gateway was called despite failed validation")
	}
	if s.Stage != StageTest {
		t.Errorf("stage = %s, want test", s.Stage)
	}
}

func TestGenerateOfferingsStoresResultAndCompletes(t *testing.T) {
	gen := testutil.NewScriptedGenerator("insight", "feedback", "1. Night-shift reset series")
	s := NewSession(gen)
	driveToStage(t, s, StageOfferings)

	offerings, verr := s.GenerateOfferings(context.Background(), "5 hours/week", "6-week series", "online")
	if verr != nil {
		t.Fatalf("GenerateOfferings: %v", verr)
	}
	if offerings != "1. Night-shift reset series" {
		t.Errorf("offerings = %q", offerings)
	}
	if s.Record.Offerings != offerings {
		t.Errorf("stored offerings = %q, want %q", s.Record.Offerings, offerings)
	}
	if s.Stage != StageComplete {
		t.Errorf("stage = %s, want complete", s.Stage)
	}
}

func TestGenerateOfferingsRequiresAllPreferences(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageOfferings)

	if _, verr := s.GenerateOfferings(context.Background(), "", "", ""); verr == nil {
		t.Fatal("expected validation error with nothing selected")
	} else if len(verr.Fields) != 3 {
		t.Errorf("fields = %v, want all three preferences", verr.Fields)
	}
	if _, verr := s.GenerateOfferings(context.Background(), "5 hours/week", "", "online"); verr == nil {
		t.Fatal("expected validation error for unselected format")
	}
	if s.Stage != StageOfferings {
		t.Errorf("stage = %s, want offerings", s.Stage)
	}
}

func TestGenerateOfferingsAdvancesOnGatewayFailure(t *testing.T) {
	gen := testutil.NewScriptedGenerator("insight", "feedback")
	s := NewSession(gen)
	driveToStage(t, s, StageOfferings)

	gen.Err = context.DeadlineExceeded
	offerings, verr := s.GenerateOfferings(context.Background(), "5 hours/week", "6-week series", "online")
	if verr != nil {
		t.Fatalf("GenerateOfferings: %v", verr)
	}
	if !strings.HasPrefix(offerings, "Error connecting to AI: ") {
		t.Errorf("offerings = %q, want error display string", offerings)
	}
	if s.Record.Offerings != offerings {
		t.Errorf("stored offerings = %q, want the error display string", s.Record.Offerings)
	}
	if s.Stage != StageComplete {
		t.Errorf("stage = %s, want complete even on failure", s.Stage)
	}
}

func TestBackStepsWithoutDataLoss(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageNarrow)

	if !s.Back() {
		t.Fatal("Back from narrow returned false")
	}
	if s.Stage != StageSelectGroup {
		t.Errorf("stage = %s, want select_group", s.Stage)
	}
	if s.Record.Challenge == "" || len(s.Record.Groups) == 0 || s.Record.SelectedGroup == "" {
		t.Error("Back dropped previously entered data")
	}
}

func TestBackBoundaries(t *testing.T) {
	s, _ := newTestSession(t)
	if s.Back() {
		t.Error("Back from welcome should return false")
	}

	driveToStage(t, s, StageComplete)
	if s.Back() {
		t.Error("Back from complete should return false")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s, _ := newTestSession(t)
	driveToStage(t, s, StageComplete)
	oldID := s.ID

	s.Reset()

	if s.Stage != StageWelcome {
		t.Errorf("stage = %s, want welcome", s.Stage)
	}
	if s.ID == oldID {
		t.Error("session id unchanged after reset")
	}
	if len(s.Record.Groups) != 0 || s.Record.SelectedGroup != "" {
		t.Errorf("groups survived reset: %+v", s.Record)
	}
	if s.Record.Challenge != "" || s.Record.Offerings != "" || s.Record.SizeCheck != SizeUnset {
		t.Errorf("record fields survived reset: %+v", s.Record)
	}
	if s.Statement() != "" {
		t.Errorf("statement = %q, want empty", s.Statement())
	}
	if s.Conversation.Len() != 0 {
		t.Errorf("conversation length = %d, want 0", s.Conversation.Len())
	}
}

func TestStageNamesAndTitles(t *testing.T) {
	if StageWelcome.String() != "welcome" || StageComplete.String() != "complete" {
		t.Error("stage wire names wrong")
	}
	if StageSelectGroup.Title() != "Select Focus" {
		t.Errorf("select_group title = %q", StageSelectGroup.Title())
	}
	if Stage(99).String() != "unknown" {
		t.Errorf("out-of-range stage name = %q", Stage(99).String())
	}
}

func TestSizeCheckLabels(t *testing.T) {
	if SizeSufficient.Label() != "Yes - I can name 50+ people" {
		t.Errorf("sufficient label = %q", SizeSufficient.Label())
	}
	if SizeTooNarrow.Label() != "No - fewer than 50 people" {
		t.Errorf("too_narrow label = %q", SizeTooNarrow.Label())
	}
	if SizeTooBroad.Label() != "Too broad - millions would fit" {
		t.Errorf("too_broad label = %q", SizeTooBroad.Label())
	}
	if SizeUnset.Label() != "" {
		t.Errorf("unset label = %q", SizeUnset.Label())
	}
}
