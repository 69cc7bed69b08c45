package tui

import "github.com/nichekit-dev/nichekit/internal/config"

// ViewState represents the current top-level screen of the TUI.
type ViewState int

const (
	StateWizard ViewState = iota
	StateCalculator
)

// Model holds the shared application state every screen can read.
type Model struct {
	Cfg    *config.Config
	State  ViewState
	Width  int
	Height int

	// CtrlCPending is true after a first Ctrl+C press, awaiting a
	// confirming second press.
	CtrlCPending bool
}

// NewModel creates the shared model with a sane default size so views
// render before the first WindowSizeMsg arrives.
func NewModel(cfg *config.Config) *Model {
	return &Model{
		Cfg:    cfg,
		State:  StateWizard,
		Width:  100,
		Height: 30,
	}
}
