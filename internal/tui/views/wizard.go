// Package views provides TUI view components for the nichekit
// application.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nichekit-dev/nichekit/internal/tui"
	"github.com/nichekit-dev/nichekit/internal/tui/commands"
	"github.com/nichekit-dev/nichekit/internal/wizard"
)

// sizeChoices pairs the size radio answers with their labels, in menu
// order.
var sizeChoices = []wizard.SizeCheck{
	wizard.SizeSufficient,
	wizard.SizeTooNarrow,
	wizard.SizeTooBroad,
}

// WizardModel is the view model for the niche finder wizard. One
// model covers every stage; the field set is rebuilt on each stage
// entry.
type WizardModel struct {
	session *wizard.Session

	inputs     []textinput.Model
	labels     []string
	focusIndex int

	// select_group and test cursors
	cursor      int
	formatIndex int

	spinner spinner.Model
	busy    bool

	insight   string
	feedback  string
	warning   string
	errText   string
	exportMsg string

	width  int
	height int
}

// NewWizardModel creates the wizard view over an existing session.
func NewWizardModel(session *wizard.Session, width, height int) WizardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#E39F24"))

	m := WizardModel{
		session: session,
		spinner: sp,
		width:   width,
		height:  height,
	}
	m.rebuildInputs()
	return m
}

// Init returns the initial command for the wizard view.
func (m WizardModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// rebuildInputs recreates the text fields for the current stage and
// pre-fills them from the record so Back never loses entered data.
func (m *WizardModel) rebuildInputs() {
	rec := m.session.Record
	m.focusIndex = 0
	m.cursor = 0
	m.errText = ""

	var labels, values []string
	switch m.session.Stage {
	case wizard.StageStory:
		labels = []string{"What challenge did meditation help you through?", "What transformation did you experience?"}
		values = []string{rec.Challenge, rec.Transformation}
	case wizard.StageGroups:
		labels = []string{"Group 1", "Group 2", "Group 3", "Group 4", "Group 5"}
		values = make([]string, 5)
		for i, g := range rec.Groups {
			if i < 5 {
				values[i] = g
			}
		}
	case wizard.StageNarrow:
		labels = []string{"What do they specifically struggle with?", "When is it most acute?", "Narrow down who exactly (optional)"}
		values = []string{rec.SpecificStruggle, rec.AcuteMoment, rec.SpecificWho}
	case wizard.StageTest:
		labels = []string{"What phrase would make them say 'that's exactly me'?"}
		values = []string{rec.Recognition}
	case wizard.StageOfferings:
		labels = []string{"How many hours per week can you teach?", "Where will you teach? (online, studio, both)"}
		values = []string{rec.Availability, rec.Location}
		m.formatIndex = 0
		for i, f := range wizard.FormatOptions {
			if f == rec.FormatPref {
				m.formatIndex = i
			}
		}
	}

	m.labels = labels
	m.inputs = make([]textinput.Model, len(labels))
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 200
		ti.Width = 60
		ti.SetValue(values[i])
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
}

// Update handles messages for the wizard view.
func (m WizardModel) Update(msg tea.Msg) (WizardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tui.InsightMsg:
		m.busy = false
		m.insight = msg.Text
		return m, nil

	case tui.FeedbackMsg:
		m.busy = false
		m.feedback = msg.Feedback
		m.warning = msg.Warning
		if msg.Warning == "" && msg.Feedback != "" {
			// Sufficient size: the session already advanced.
			m.rebuildInputs()
		}
		return m, nil

	case tui.OfferingsMsg:
		m.busy = false
		if msg.Text != "" {
			m.rebuildInputs()
		}
		return m, nil

	case tui.ExportDoneMsg:
		m.exportMsg = "Plan saved to " + msg.Path
		return m, nil

	case tui.ExportErrorMsg:
		m.exportMsg = "Export failed: " + msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			// One gateway call in flight at a time; swallow input.
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m WizardModel) handleKey(msg tea.KeyMsg) (WizardModel, tea.Cmd) {
	key := msg.String()

	if key == tui.KeyEsc {
		if m.session.Back() {
			m.insight = ""
			m.feedback = ""
			m.warning = ""
			m.rebuildInputs()
		}
		return m, nil
	}

	switch m.session.Stage {
	case wizard.StageWelcome:
		if key == tui.KeyEnter {
			m.session.Begin()
			m.rebuildInputs()
		}
		return m, nil

	case wizard.StageStory:
		return m.handleFormKey(msg, func() (WizardModel, tea.Cmd) {
			if verr := m.session.SubmitStory(m.inputs[0].Value(), m.inputs[1].Value()); verr != nil {
				m.errText = "Please fill in both fields"
				return m, nil
			}
			m.rebuildInputs()
			return m, nil
		})

	case wizard.StageGroups:
		return m.handleFormKey(msg, func() (WizardModel, tea.Cmd) {
			var slots [5]string
			for i := range m.inputs {
				slots[i] = m.inputs[i].Value()
			}
			if verr := m.session.SubmitGroups(slots); verr != nil {
				m.errText = "Please list at least 3 groups"
				return m, nil
			}
			m.rebuildInputs()
			return m, nil
		})

	case wizard.StageSelectGroup:
		return m.handleSelectGroupKey(key)

	case wizard.StageNarrow:
		return m.handleFormKey(msg, func() (WizardModel, tea.Cmd) {
			if verr := m.session.SubmitNarrow(m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value()); verr != nil {
				m.errText = "Please fill in at least the first two fields"
				return m, nil
			}
			m.rebuildInputs()
			return m, nil
		})

	case wizard.StageTest:
		return m.handleTestKey(msg)

	case wizard.StageOfferings:
		return m.handleOfferingsKey(msg)

	case wizard.StageComplete:
		return m.handleCompleteKey(key)
	}

	return m, nil
}

// handleFormKey drives a plain multi-field form: tab/arrows cycle
// focus, enter on the last field submits.
func (m WizardModel) handleFormKey(msg tea.KeyMsg, submit func() (WizardModel, tea.Cmd)) (WizardModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyTab, tui.KeyDown:
		m.setFocus((m.focusIndex + 1) % len(m.inputs))
		return m, nil
	case tui.KeyUp:
		m.setFocus((m.focusIndex + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case tui.KeyEnter:
		if m.focusIndex < len(m.inputs)-1 {
			m.setFocus(m.focusIndex + 1)
			return m, nil
		}
		return submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m WizardModel) handleSelectGroupKey(key string) (WizardModel, tea.Cmd) {
	groups := m.session.Groups()
	switch key {
	case tui.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tui.KeyDown:
		if m.cursor < len(groups)-1 {
			m.cursor++
		}
	case tui.KeyEnter:
		if m.session.Record.SelectedGroup != "" && m.insight != "" {
			// Second enter confirms and moves on.
			if verr := m.session.ConfirmGroup(); verr == nil {
				m.insight = ""
				m.rebuildInputs()
			}
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, commands.SelectGroupCmd(m.session, groups[m.cursor]))
	}
	return m, nil
}

func (m WizardModel) handleTestKey(msg tea.KeyMsg) (WizardModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tui.KeyDown:
		if m.cursor < len(sizeChoices)-1 {
			m.cursor++
		}
		return m, nil
	case tui.KeyEnter:
		if m.inputs[0].Value() == "" {
			m.errText = "Please complete both questions"
			return m, nil
		}
		m.busy = true
		m.feedback = ""
		m.warning = ""
		return m, tea.Batch(m.spinner.Tick, commands.SubmitTestCmd(m.session, sizeChoices[m.cursor], m.inputs[0].Value()))
	}

	var cmd tea.Cmd
	m.inputs[0], cmd = m.inputs[0].Update(msg)
	return m, cmd
}

func (m WizardModel) handleOfferingsKey(msg tea.KeyMsg) (WizardModel, tea.Cmd) {
	switch msg.String() {
	case tui.KeyTab, tui.KeyDown:
		m.setFocus((m.focusIndex + 1) % len(m.inputs))
		return m, nil
	case tui.KeyUp:
		m.setFocus((m.focusIndex + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case tui.KeyLeft:
		if m.formatIndex > 0 {
			m.formatIndex--
		}
		return m, nil
	case tui.KeyRight:
		if m.formatIndex < len(wizard.FormatOptions)-1 {
			m.formatIndex++
		}
		return m, nil
	case tui.KeyEnter:
		format := wizard.FormatOptions[m.formatIndex]
		if m.inputs[0].Value() == "" || format == "" || m.inputs[1].Value() == "" {
			m.errText = "Please fill in all fields and pick a format"
			return m, nil
		}
		m.busy = true
		return m, tea.Batch(m.spinner.Tick, commands.GenerateOfferingsCmd(m.session, m.inputs[0].Value(), format, m.inputs[1].Value()))
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m WizardModel) handleCompleteKey(key string) (WizardModel, tea.Cmd) {
	switch key {
	case "e":
		return m, commands.ExportPlanCmd(m.session, ".")
	case "r":
		m.session.Reset()
		m.insight = ""
		m.feedback = ""
		m.warning = ""
		m.exportMsg = ""
		m.rebuildInputs()
	}
	return m, nil
}

func (m *WizardModel) setFocus(index int) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = index
	m.inputs[m.focusIndex].Focus()
}

// ============================================================================
// Rendering
// ============================================================================

// View renders the current wizard stage.
func (m WizardModel) View() string {
	var b strings.Builder

	b.WriteString(m.progressLine())
	b.WriteString("\n\n")
	b.WriteString(tui.TitleStyle.Render(m.session.Stage.Title()))
	b.WriteString("\n\n")

	switch m.session.Stage {
	case wizard.StageWelcome:
		b.WriteString("Find your specific meditation teaching niche.\n\n")
		b.WriteString("Seven short steps take you from your own story to a\n")
		b.WriteString("concrete niche statement and offering ideas.\n\n")
		b.WriteString(tui.DimStyle.Render("Press Enter to begin"))

	case wizard.StageStory, wizard.StageGroups, wizard.StageNarrow:
		m.renderForm(&b)
		b.WriteString(tui.DimStyle.Render("Tab to move between fields, Enter to continue, Esc to go back"))

	case wizard.StageSelectGroup:
		m.renderSelectGroup(&b)

	case wizard.StageTest:
		m.renderTest(&b)

	case wizard.StageOfferings:
		m.renderOfferings(&b)

	case wizard.StageComplete:
		m.renderComplete(&b)
	}

	if m.busy {
		b.WriteString("\n\n" + m.spinner.View() + " Thinking...")
	}
	if m.errText != "" {
		b.WriteString("\n\n" + tui.ErrorStyle.Render(m.errText))
	}

	return tui.BoxStyle.Width(min(m.width-2, 76)).Render(b.String())
}

func (m WizardModel) renderForm(b *strings.Builder) {
	for i, label := range m.labels {
		b.WriteString(label + "\n")
		b.WriteString(m.inputs[i].View() + "\n\n")
	}
	if m.session.Stage == wizard.StageNarrow {
		if stmt := m.session.Statement(); stmt != "" {
			b.WriteString(tui.SuccessStyle.Render(stmt) + "\n\n")
		}
	}
}

func (m WizardModel) renderSelectGroup(b *strings.Builder) {
	b.WriteString("Which group do you know best?\n\n")
	for i, g := range m.session.Groups() {
		cursor := "  "
		line := g
		if i == m.cursor {
			cursor = tui.StepCurrent + " "
			line = tui.SelectedStyle.Render(g)
		}
		if g == m.session.Record.SelectedGroup {
			line += " " + tui.StepDone
		}
		b.WriteString(cursor + line + "\n")
	}
	if m.insight != "" {
		b.WriteString("\n" + m.insight + "\n")
		b.WriteString("\n" + tui.DimStyle.Render("Enter to continue with this group, Esc to go back"))
	} else {
		b.WriteString("\n" + tui.DimStyle.Render("Enter to select, Esc to go back"))
	}
}

func (m WizardModel) renderTest(b *strings.Builder) {
	b.WriteString("Can you think of at least 50 people who fit this description?\n\n")
	for i, choice := range sizeChoices {
		marker := "( )"
		label := choice.Label()
		if i == m.cursor {
			marker = "(•)"
			label = tui.SelectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, label))
	}
	b.WriteString("\n" + m.labels[0] + "\n")
	b.WriteString(m.inputs[0].View() + "\n")

	if m.warning != "" {
		b.WriteString("\n" + tui.WarningStyle.Render(m.warning) + "\n")
	}
	if m.feedback != "" {
		b.WriteString("\n" + m.feedback + "\n")
	}
	b.WriteString("\n" + tui.DimStyle.Render("Up/Down to pick an answer, Enter to test, Esc to go back"))
}

func (m WizardModel) renderOfferings(b *strings.Builder) {
	b.WriteString(m.labels[0] + "\n")
	b.WriteString(m.inputs[0].View() + "\n\n")

	b.WriteString("Preferred format\n")
	format := wizard.FormatOptions[m.formatIndex]
	if format == "" {
		format = tui.DimStyle.Render("(none selected)")
	} else {
		format = tui.SelectedStyle.Render(format)
	}
	b.WriteString("  ◂ " + format + " ▸\n\n")

	b.WriteString(m.labels[1] + "\n")
	b.WriteString(m.inputs[1].View() + "\n\n")

	b.WriteString(tui.DimStyle.Render("Left/Right to pick a format, Enter to generate, Esc to go back"))
}

func (m WizardModel) renderComplete(b *strings.Builder) {
	b.WriteString(tui.SuccessStyle.Render(m.session.Statement()) + "\n\n")

	if offerings := m.session.Record.Offerings; offerings != "" {
		b.WriteString("YOUR OFFERINGS\n")
		b.WriteString(offerings + "\n\n")
	}

	b.WriteString("NEXT STEPS\n")
	b.WriteString("1. Choose ONE offering to pilot\n")
	b.WriteString("2. Use Income Calculator for pricing\n")
	b.WriteString("3. Find 5-10 beta students\n")
	b.WriteString("4. Run pilot and gather feedback\n")
	b.WriteString("5. Refine and officially launch\n\n")

	if m.exportMsg != "" {
		b.WriteString(tui.SuccessStyle.Render(m.exportMsg) + "\n\n")
	}
	b.WriteString(tui.DimStyle.Render("e to export your plan, r to start over, Tab for the calculator"))
}

// progressLine renders one glyph per wizard step.
func (m WizardModel) progressLine() string {
	var parts []string
	for st := wizard.StageWelcome; st <= wizard.StageComplete; st++ {
		switch {
		case st < m.session.Stage:
			parts = append(parts, tui.StepDone)
		case st == m.session.Stage:
			parts = append(parts, tui.StepCurrent)
		default:
			parts = append(parts, tui.StepPending)
		}
	}
	step := min(max(int(m.session.Stage), 1), 7)
	return strings.Join(parts, " ") + "  " + tui.DimStyle.Render(fmt.Sprintf("Step %d of 7", step))
}
