// Package projection computes annual income, cost, and time metrics
// for a teaching practice from pricing and workload inputs. Everything
// here is pure arithmetic: same inputs, same outputs, no I/O.
package projection

import "math"

// Inputs are the calculator's adjustable levers. All quantities are
// annual unless named otherwise.
type Inputs struct {
	// Series revenue
	PricePerStudent   float64
	StudentsPerSeries float64
	SeriesPerYear     float64
	Scholarships      float64 // full-price seats given away

	// Recurring revenue
	MonthlyMembers float64
	MonthlyPrice   float64

	// Corporate revenue
	CorporateWorkshops float64 // per year
	CorporatePrice     float64

	// Monthly cash costs
	VenueCost     float64
	InsuranceCost float64
	MarketingCost float64

	// Weekly time commitments beyond teaching and prep, with every
	// working hour priced at TimeValue
	PracticeHours  float64
	EducationHours float64
	TimeValue      float64

	// Income goals for progress reporting
	MinIncomeGoal  float64
	SideIncomeGoal float64
	FullIncomeGoal float64

	Currency string
}

// Metrics is the full derived picture for one set of inputs.
type Metrics struct {
	SeriesIncome       float64
	SubscriptionIncome float64
	CorporateIncome    float64
	ScholarshipCost    float64
	TotalIncome        float64

	AnnualCashCosts float64

	SeriesHours          float64
	MonthlyHours         float64
	CorporateHours       float64
	TeachingHoursPerWeek float64
	SeriesPrepRatio      float64
	PrepHoursPerWeek     float64
	TotalHoursPerWeek    float64

	AnnualTimeCosts float64
	TotalCosts      float64

	NetIncome       float64
	MonthlyNet      float64
	EffectiveHourly float64
}

// Project derives all metrics from the inputs.
//
// Series teaching time assumes six sessions of ninety minutes per
// series. Running any membership costs a weekly hour year round.
// Corporate workshops take two hours each including travel. Prep
// scales down with experience: two hours of prep per teaching hour
// for a first-year teacher, shrinking by twelve minutes per
// additional yearly series and bottoming out at thirty minutes.
func Project(in Inputs) Metrics {
	var m Metrics

	m.SeriesIncome = in.PricePerStudent * in.StudentsPerSeries * in.SeriesPerYear
	m.SubscriptionIncome = in.MonthlyMembers * in.MonthlyPrice * 12
	m.CorporateIncome = in.CorporateWorkshops * in.CorporatePrice
	m.ScholarshipCost = in.Scholarships * in.PricePerStudent
	m.TotalIncome = m.SeriesIncome + m.SubscriptionIncome + m.CorporateIncome - m.ScholarshipCost

	m.AnnualCashCosts = (in.VenueCost + in.InsuranceCost + in.MarketingCost) * 12

	m.SeriesHours = in.SeriesPerYear * 6 * 1.5
	if in.MonthlyMembers > 0 {
		m.MonthlyHours = 52
	}
	m.CorporateHours = in.CorporateWorkshops * 2
	m.TeachingHoursPerWeek = (m.SeriesHours + m.MonthlyHours + m.CorporateHours) / 52

	m.SeriesPrepRatio = math.Max(0.5, 2-(in.SeriesPerYear-1)*0.2)
	m.PrepHoursPerWeek = 5 + m.TeachingHoursPerWeek*m.SeriesPrepRatio
	m.TotalHoursPerWeek = m.TeachingHoursPerWeek + m.PrepHoursPerWeek + in.PracticeHours + in.EducationHours

	m.AnnualTimeCosts = m.TotalHoursPerWeek * 52 * in.TimeValue
	m.TotalCosts = m.AnnualCashCosts + m.AnnualTimeCosts

	m.NetIncome = m.TotalIncome - m.TotalCosts
	m.MonthlyNet = m.NetIncome / 12
	if m.TotalHoursPerWeek > 0 {
		m.EffectiveHourly = m.NetIncome / (m.TotalHoursPerWeek * 52)
	}

	return m
}

// GoalProgress relates net income to one income goal.
type GoalProgress struct {
	Goal      float64
	Ratio     float64 // 0..1 portion of the goal reached
	Shortfall float64 // amount missing when net income is not positive
}

// Progress computes how far a net income is toward a goal. A zero
// goal always reads as zero progress. When net income is not positive
// the ratio is zero and the shortfall carries the full distance.
func Progress(netIncome, goal float64) GoalProgress {
	p := GoalProgress{Goal: goal}
	if netIncome > 0 {
		if goal > 0 {
			p.Ratio = math.Min(1, netIncome/goal)
		}
		return p
	}
	p.Shortfall = goal - netIncome
	return p
}

// Recommend suggests up to three concrete levers when net income sits
// below the minimum goal. Suggestions come in priority order and the
// list is empty once the minimum goal is met.
func Recommend(in Inputs, m Metrics) []string {
	if m.NetIncome >= in.MinIncomeGoal {
		return nil
	}

	var recs []string
	if in.CorporateWorkshops == 0 {
		recs = append(recs, "Add corporate workshops: one workshop per quarter adds significant income")
	}
	if in.MonthlyMembers == 0 {
		recs = append(recs, "Start a monthly membership for steady recurring revenue")
	}
	if in.PricePerStudent < 150 {
		recs = append(recs, "Consider raising your series price; specific niches support premium pricing")
	}
	if in.StudentsPerSeries < 15 {
		recs = append(recs, "Focus on filling existing series before adding new ones")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}
