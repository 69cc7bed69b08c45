package chat

import "testing"

func TestAppendPreservesOrder(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "first")
	l.Append(RoleAssistant, "second")
	l.Append(RoleUser, "third")

	turns := l.Turns()
	if len(turns) != 3 {
		t.Fatalf("Len: got %d, want 3", len(turns))
	}
	if turns[0].Text != "first" || turns[2].Text != "third" {
		t.Errorf("turns out of order: %v", turns)
	}
}

func TestWindowReturnsMostRecent(t *testing.T) {
	l := NewLog()
	for _, text := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		l.Append(RoleUser, text)
	}

	window := l.Window(ContextWindow)
	if len(window) != 5 {
		t.Fatalf("Window(5): got %d turns, want 5", len(window))
	}
	if window[0].Text != "c" || window[4].Text != "g" {
		t.Errorf("Window(5): got %v, want c..g", window)
	}

	// Truncation is for context only: the full log is untouched.
	if l.Len() != 7 {
		t.Errorf("Len after Window: got %d, want 7", l.Len())
	}
}

func TestWindowSmallerLog(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "only")

	window := l.Window(ContextWindow)
	if len(window) != 1 {
		t.Fatalf("Window on short log: got %d turns, want 1", len(window))
	}
}

func TestTranscriptFormat(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "hello")
	l.Append(RoleAssistant, "hi there")

	got := l.Transcript(ContextWindow)
	want := "user: hello\nassistant: hi there"
	if got != want {
		t.Errorf("Transcript: got %q, want %q", got, want)
	}
}

func TestTranscriptEmpty(t *testing.T) {
	l := NewLog()
	if got := l.Transcript(ContextWindow); got != "" {
		t.Errorf("Transcript on empty log: got %q, want empty", got)
	}
}

func TestReset(t *testing.T) {
	l := NewLog()
	l.Append(RoleUser, "something")
	l.Reset()

	if l.Len() != 0 {
		t.Errorf("Len after Reset: got %d, want 0", l.Len())
	}
}
