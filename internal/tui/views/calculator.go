package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nichekit-dev/nichekit/internal/projection"
	"github.com/nichekit-dev/nichekit/internal/tui"
)

// calcField is one adjustable calculator input: where it lives on the
// Inputs struct, how fast it moves, and how it is grouped on screen.
type calcField struct {
	label   string
	group   string
	step    float64
	get     func(*projection.Inputs) float64
	set     func(*projection.Inputs, float64)
	integer bool
}

var calcFields = []calcField{
	{"Price per student", "Series", 5, func(in *projection.Inputs) float64 { return in.PricePerStudent }, func(in *projection.Inputs, v float64) { in.PricePerStudent = v }, false},
	{"Students per series", "Series", 1, func(in *projection.Inputs) float64 { return in.StudentsPerSeries }, func(in *projection.Inputs, v float64) { in.StudentsPerSeries = v }, true},
	{"Series per year", "Series", 1, func(in *projection.Inputs) float64 { return in.SeriesPerYear }, func(in *projection.Inputs, v float64) { in.SeriesPerYear = v }, true},
	{"Scholarship spots", "Series", 1, func(in *projection.Inputs) float64 { return in.Scholarships }, func(in *projection.Inputs, v float64) { in.Scholarships = v }, true},
	{"Monthly members", "Membership", 1, func(in *projection.Inputs) float64 { return in.MonthlyMembers }, func(in *projection.Inputs, v float64) { in.MonthlyMembers = v }, true},
	{"Monthly price", "Membership", 5, func(in *projection.Inputs) float64 { return in.MonthlyPrice }, func(in *projection.Inputs, v float64) { in.MonthlyPrice = v }, false},
	{"Corporate workshops/year", "Corporate", 1, func(in *projection.Inputs) float64 { return in.CorporateWorkshops }, func(in *projection.Inputs, v float64) { in.CorporateWorkshops = v }, true},
	{"Corporate price", "Corporate", 50, func(in *projection.Inputs) float64 { return in.CorporatePrice }, func(in *projection.Inputs, v float64) { in.CorporatePrice = v }, false},
	{"Venue cost/month", "Costs", 25, func(in *projection.Inputs) float64 { return in.VenueCost }, func(in *projection.Inputs, v float64) { in.VenueCost = v }, false},
	{"Insurance/month", "Costs", 10, func(in *projection.Inputs) float64 { return in.InsuranceCost }, func(in *projection.Inputs, v float64) { in.InsuranceCost = v }, false},
	{"Marketing/month", "Costs", 10, func(in *projection.Inputs) float64 { return in.MarketingCost }, func(in *projection.Inputs, v float64) { in.MarketingCost = v }, false},
	{"Practice hours/week", "Time", 1, func(in *projection.Inputs) float64 { return in.PracticeHours }, func(in *projection.Inputs, v float64) { in.PracticeHours = v }, true},
	{"Education hours/week", "Time", 1, func(in *projection.Inputs) float64 { return in.EducationHours }, func(in *projection.Inputs, v float64) { in.EducationHours = v }, true},
	{"Value of your time/hour", "Time", 5, func(in *projection.Inputs) float64 { return in.TimeValue }, func(in *projection.Inputs, v float64) { in.TimeValue = v }, false},
	{"Minimum income goal", "Goals", 1000, func(in *projection.Inputs) float64 { return in.MinIncomeGoal }, func(in *projection.Inputs, v float64) { in.MinIncomeGoal = v }, false},
	{"Side income goal", "Goals", 1000, func(in *projection.Inputs) float64 { return in.SideIncomeGoal }, func(in *projection.Inputs, v float64) { in.SideIncomeGoal = v }, false},
	{"Full-time income goal", "Goals", 1000, func(in *projection.Inputs) float64 { return in.FullIncomeGoal }, func(in *projection.Inputs, v float64) { in.FullIncomeGoal = v }, false},
}

// CalculatorModel is the view model for the income projection screen.
// All arithmetic happens on every keystroke; projection is cheap and
// pure.
type CalculatorModel struct {
	inputs projection.Inputs
	cursor int

	// Niche statement shown as read-only context when the wizard has
	// produced one.
	statement string

	width  int
	height int
}

// NewCalculatorModel seeds the calculator from a currency code.
func NewCalculatorModel(currency, statement string, width, height int) CalculatorModel {
	return CalculatorModel{
		inputs:    projection.DefaultInputs(currency),
		statement: statement,
		width:     width,
		height:    height,
	}
}

// SetStatement updates the read-only niche context line.
func (m *CalculatorModel) SetStatement(statement string) {
	m.statement = statement
}

// Init returns the initial command for the calculator view.
func (m CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the calculator view.
func (m CalculatorModel) Update(msg tea.Msg) (CalculatorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tui.KeyDown:
			if m.cursor < len(calcFields)-1 {
				m.cursor++
			}
		case tui.KeyLeft:
			m.adjust(-1)
		case tui.KeyRight:
			m.adjust(1)
		case "c":
			m.cycleCurrency()
		}
	}
	return m, nil
}

// adjust moves the focused field by direction x its step, floored at
// zero.
func (m *CalculatorModel) adjust(direction float64) {
	f := calcFields[m.cursor]
	v := f.get(&m.inputs) + direction*f.step
	if v < 0 {
		v = 0
	}
	f.set(&m.inputs, v)
}

// cycleCurrency steps to the next currency and reseeds the goal
// fields with its defaults.
func (m *CalculatorModel) cycleCurrency() {
	codes := projection.CurrencyCodes
	next := 0
	for i, code := range codes {
		if code == m.inputs.Currency {
			next = (i + 1) % len(codes)
		}
	}
	c := projection.LookupCurrency(codes[next])
	m.inputs.Currency = c.Code
	m.inputs.MinIncomeGoal = c.MinGoal
	m.inputs.SideIncomeGoal = c.SideGoal
	m.inputs.FullIncomeGoal = c.FullGoal
}

// ============================================================================
// Rendering
// ============================================================================

// View renders the field list beside the live projection.
func (m CalculatorModel) View() string {
	metrics := projection.Project(m.inputs)
	currency := projection.LookupCurrency(m.inputs.Currency)

	var b strings.Builder
	b.WriteString(tui.TitleStyle.Render("Income Calculator"))
	b.WriteString("  " + tui.DimStyle.Render("Currency: "+currency.Code+" (c to change)"))
	b.WriteString("\n")
	if m.statement != "" {
		b.WriteString(tui.DimStyle.Render(m.statement) + "\n")
	}
	b.WriteString("\n")

	lastGroup := ""
	for i, f := range calcFields {
		if f.group != lastGroup {
			b.WriteString(tui.DimStyle.Render(f.group) + "\n")
			lastGroup = f.group
		}

		value := f.get(&m.inputs)
		rendered := formatAmount(currency.Symbol, value, f.integer)
		line := fmt.Sprintf("  %-26s %s", f.label, rendered)
		if i == m.cursor {
			line = tui.SelectedStyle.Render(fmt.Sprintf("▸ %-26s ◂ %s ▸", f.label, rendered))
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.renderMetrics(metrics, currency))
	b.WriteString("\n" + tui.DimStyle.Render("Up/Down to pick a field, Left/Right to adjust, Tab for the wizard"))

	return tui.BoxStyle.Width(min(m.width-2, 78)).Render(b.String())
}

func (m CalculatorModel) renderMetrics(metrics projection.Metrics, currency projection.Currency) string {
	sym := currency.Symbol
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Projection") + "\n")
	b.WriteString(fmt.Sprintf("  Total income    %s%.0f   (series %s%.0f, membership %s%.0f, corporate %s%.0f)\n",
		sym, metrics.TotalIncome, sym, metrics.SeriesIncome, sym, metrics.SubscriptionIncome, sym, metrics.CorporateIncome))
	b.WriteString(fmt.Sprintf("  Total costs     %s%.0f\n", sym, metrics.TotalCosts))

	net := fmt.Sprintf("%s%.0f", sym, metrics.NetIncome)
	if metrics.NetIncome >= 0 {
		net = tui.SuccessStyle.Render(net)
	} else {
		net = tui.ErrorStyle.Render(net)
	}
	b.WriteString(fmt.Sprintf("  Net income      %s   (%s%.0f/month, %s%.2f/hour)\n",
		net, sym, metrics.MonthlyNet, sym, metrics.EffectiveHourly))
	b.WriteString(fmt.Sprintf("  Hours per week  %.1f   (%.1f teaching, %.1f prep)\n\n",
		metrics.TotalHoursPerWeek, metrics.TeachingHoursPerWeek, metrics.PrepHoursPerWeek))

	b.WriteString(m.renderGoal("Minimum", metrics.NetIncome, m.inputs.MinIncomeGoal, sym))
	b.WriteString(m.renderGoal("Side income", metrics.NetIncome, m.inputs.SideIncomeGoal, sym))
	b.WriteString(m.renderGoal("Full-time", metrics.NetIncome, m.inputs.FullIncomeGoal, sym))

	if recs := projection.Recommend(m.inputs, metrics); len(recs) > 0 {
		b.WriteString("\n" + tui.TitleStyle.Render("Suggestions") + "\n")
		for _, r := range recs {
			b.WriteString("  • " + r + "\n")
		}
	}

	return b.String()
}

// renderGoal draws a ten-cell progress bar for one goal tier, or the
// shortfall when net income is not positive.
func (m CalculatorModel) renderGoal(name string, net, goal float64, sym string) string {
	p := projection.Progress(net, goal)
	if net <= 0 {
		return fmt.Sprintf("  %-12s %s short of %s%.0f goal\n",
			name, tui.ErrorStyle.Render(fmt.Sprintf("%s%.0f", sym, p.Shortfall)), sym, goal)
	}

	filled := int(p.Ratio * 10)
	bar := tui.ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		tui.ProgressEmptyStyle.Render(strings.Repeat("░", 10-filled))
	return fmt.Sprintf("  %-12s %s %3.0f%% of %s%.0f\n", name, bar, p.Ratio*100, sym, goal)
}

func formatAmount(symbol string, v float64, integer bool) string {
	if integer {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%s%.0f", symbol, v)
}
