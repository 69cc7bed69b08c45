// Package app provides the main TUI application that wires the
// wizard and calculator screens together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nichekit-dev/nichekit/internal/config"
	"github.com/nichekit-dev/nichekit/internal/tui"
	"github.com/nichekit-dev/nichekit/internal/tui/views"
	"github.com/nichekit-dev/nichekit/internal/wizard"
)

// App is the main TUI application.
type App struct {
	model   *tui.Model
	session *wizard.Session

	wizardView views.WizardModel
	calcView   views.CalculatorModel
}

// New creates the App over an existing wizard session.
func New(cfg *config.Config, session *wizard.Session) *App {
	model := tui.NewModel(cfg)
	return &App{
		model:      model,
		session:    session,
		wizardView: views.NewWizardModel(session, model.Width, model.Height),
		calcView:   views.NewCalculatorModel(cfg.Currency, "", model.Width, model.Height),
	}
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return a.wizardView.Init()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		var wizCmd, calcCmd tea.Cmd
		a.wizardView, wizCmd = a.wizardView.Update(msg)
		a.calcView, calcCmd = a.calcView.Update(msg)
		return a, tea.Batch(wizCmd, calcCmd)

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			if a.model.CtrlCPending {
				// Second press within the timeout quits.
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})

		case tui.KeyTab:
			// Tab cycles fields inside form stages; everywhere else
			// it switches between the wizard and the calculator.
			if a.canSwitchScreens() {
				a.toggleScreen()
				return a, nil
			}
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil
	}

	var cmd tea.Cmd
	switch a.model.State {
	case tui.StateWizard:
		a.wizardView, cmd = a.wizardView.Update(msg)
	case tui.StateCalculator:
		a.calcView, cmd = a.calcView.Update(msg)
	}
	return a, cmd
}

// View renders the active screen with a shared status bar.
func (a *App) View() string {
	var body string
	switch a.model.State {
	case tui.StateWizard:
		body = a.wizardView.View()
	case tui.StateCalculator:
		body = a.calcView.View()
	}

	status := "nichekit"
	if a.model.CtrlCPending {
		status = "Press Ctrl+C again to quit"
	}
	return body + "\n" + tui.StatusBarStyle.Render(status)
}

func (a *App) canSwitchScreens() bool {
	if a.model.State == tui.StateCalculator {
		return true
	}
	switch a.session.Stage {
	case wizard.StageWelcome, wizard.StageSelectGroup, wizard.StageComplete:
		return true
	}
	return false
}

func (a *App) toggleScreen() {
	if a.model.State == tui.StateWizard {
		// Carry the current niche statement into the calculator as
		// read-only context.
		a.calcView.SetStatement(a.session.Statement())
		a.model.State = tui.StateCalculator
		return
	}
	a.model.State = tui.StateWizard
}
