// calc.go implements the non-interactive "nichekit calc" command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nichekit-dev/nichekit/internal/config"
	"github.com/nichekit-dev/nichekit/internal/projection"
)

var calcInputs projection.Inputs
var calcCurrency string

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Project annual income for a set of pricing inputs",
	Long: `Run the income projection once with the given flags and print the
full breakdown. Unset flags fall back to the currency defaults.`,
	RunE: runCalc,
}

func init() {
	defaults := projection.DefaultInputs("USD")
	flags := calcCmd.Flags()

	flags.StringVar(&calcCurrency, "currency", "", "Currency code (USD, EUR, GBP, INR); defaults to the configured one")
	flags.Float64Var(&calcInputs.PricePerStudent, "price", defaults.PricePerStudent, "Price per student per series")
	flags.Float64Var(&calcInputs.StudentsPerSeries, "students", defaults.StudentsPerSeries, "Students per series")
	flags.Float64Var(&calcInputs.SeriesPerYear, "series", defaults.SeriesPerYear, "Series per year")
	flags.Float64Var(&calcInputs.Scholarships, "scholarships", 0, "Scholarship spots")
	flags.Float64Var(&calcInputs.MonthlyMembers, "members", 0, "Monthly membership members")
	flags.Float64Var(&calcInputs.MonthlyPrice, "member-price", defaults.MonthlyPrice, "Monthly membership price")
	flags.Float64Var(&calcInputs.CorporateWorkshops, "workshops", 0, "Corporate workshops per year")
	flags.Float64Var(&calcInputs.CorporatePrice, "workshop-price", defaults.CorporatePrice, "Price per corporate workshop")
	flags.Float64Var(&calcInputs.VenueCost, "venue", 0, "Venue cost per month")
	flags.Float64Var(&calcInputs.InsuranceCost, "insurance", 0, "Insurance cost per month")
	flags.Float64Var(&calcInputs.MarketingCost, "marketing", 0, "Marketing cost per month")
	flags.Float64Var(&calcInputs.PracticeHours, "practice", defaults.PracticeHours, "Personal practice hours per week")
	flags.Float64Var(&calcInputs.EducationHours, "education", defaults.EducationHours, "Continuing education hours per week")
	flags.Float64Var(&calcInputs.TimeValue, "time-value", 0, "Value of your time per hour")
}

func runCalc(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg := config.LoadOrDefault(dir)

	code := calcCurrency
	if code == "" {
		code = cfg.Currency
	}
	c := projection.LookupCurrency(code)
	calcInputs.Currency = c.Code
	calcInputs.MinIncomeGoal = c.MinGoal
	calcInputs.SideIncomeGoal = c.SideGoal
	calcInputs.FullIncomeGoal = c.FullGoal
	if cfg.Goals.Minimum > 0 {
		calcInputs.MinIncomeGoal = cfg.Goals.Minimum
	}
	if cfg.Goals.Side > 0 {
		calcInputs.SideIncomeGoal = cfg.Goals.Side
	}
	if cfg.Goals.Full > 0 {
		calcInputs.FullIncomeGoal = cfg.Goals.Full
	}

	m := projection.Project(calcInputs)
	sym := c.Symbol

	fmt.Printf("Income (%s)\n", c.Code)
	fmt.Printf("  Series:       %s%.2f\n", sym, m.SeriesIncome)
	fmt.Printf("  Membership:   %s%.2f\n", sym, m.SubscriptionIncome)
	fmt.Printf("  Corporate:    %s%.2f\n", sym, m.CorporateIncome)
	fmt.Printf("  Scholarships: -%s%.2f\n", sym, m.ScholarshipCost)
	fmt.Printf("  Total:        %s%.2f\n\n", sym, m.TotalIncome)

	fmt.Printf("Costs\n")
	fmt.Printf("  Cash:  %s%.2f\n", sym, m.AnnualCashCosts)
	fmt.Printf("  Time:  %s%.2f\n", sym, m.AnnualTimeCosts)
	fmt.Printf("  Total: %s%.2f\n\n", sym, m.TotalCosts)

	fmt.Printf("Net income: %s%.2f (%s%.2f/month, %s%.2f/hour)\n", sym, m.NetIncome, sym, m.MonthlyNet, sym, m.EffectiveHourly)
	fmt.Printf("Hours/week: %.1f (%.1f teaching, %.1f prep)\n\n", m.TotalHoursPerWeek, m.TeachingHoursPerWeek, m.PrepHoursPerWeek)

	printGoal := func(name string, goal float64) {
		p := projection.Progress(m.NetIncome, goal)
		if m.NetIncome > 0 {
			fmt.Printf("  %-12s %3.0f%% of %s%.0f\n", name, p.Ratio*100, sym, goal)
			return
		}
		fmt.Printf("  %-12s %s%.0f short of %s%.0f\n", name, sym, p.Shortfall, sym, goal)
	}
	fmt.Println("Goals")
	printGoal("Minimum", calcInputs.MinIncomeGoal)
	printGoal("Side", calcInputs.SideIncomeGoal)
	printGoal("Full-time", calcInputs.FullIncomeGoal)

	if recs := projection.Recommend(calcInputs, m); len(recs) > 0 {
		fmt.Println("\nSuggestions")
		for _, r := range recs {
			fmt.Println("  - " + r)
		}
	}
	return nil
}
