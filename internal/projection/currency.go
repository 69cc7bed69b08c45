package projection

// Currency pairs a display symbol with default goal thresholds. The
// defaults only seed the calculator; every value stays adjustable.
type Currency struct {
	Code     string
	Symbol   string
	MinGoal  float64
	SideGoal float64
	FullGoal float64
}

// Currencies is the static currency table, keyed by ISO code.
var Currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", MinGoal: 12000, SideGoal: 30000, FullGoal: 60000},
	"EUR": {Code: "EUR", Symbol: "€", MinGoal: 12000, SideGoal: 30000, FullGoal: 60000},
	"GBP": {Code: "GBP", Symbol: "£", MinGoal: 12000, SideGoal: 30000, FullGoal: 60000},
	"INR": {Code: "INR", Symbol: "₹", MinGoal: 300000, SideGoal: 750000, FullGoal: 1500000},
}

// CurrencyCodes lists the supported codes in menu order.
var CurrencyCodes = []string{"USD", "EUR", "GBP", "INR"}

// LookupCurrency returns the currency for a code, falling back to USD
// for anything unknown.
func LookupCurrency(code string) Currency {
	if c, ok := Currencies[code]; ok {
		return c
	}
	return Currencies["USD"]
}

// DefaultInputs returns a starting input set for a currency: modest
// first-year numbers with the currency's default goal thresholds.
func DefaultInputs(code string) Inputs {
	c := LookupCurrency(code)
	return Inputs{
		PricePerStudent:   100,
		StudentsPerSeries: 10,
		SeriesPerYear:     4,
		MonthlyPrice:      30,
		CorporatePrice:    500,
		PracticeHours:     5,
		EducationHours:    2,
		MinIncomeGoal:     c.MinGoal,
		SideIncomeGoal:    c.SideGoal,
		FullIncomeGoal:    c.FullGoal,
		Currency:          c.Code,
	}
}
