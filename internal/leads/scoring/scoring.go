// Package scoring computes lead qualification scores.
//
// The score is a pure function of four criteria, each contributing an
// independent band, summed with no interaction terms:
//
//	budget        max 30
//	company size  max 30
//	industry      max 20
//	urgency       max 20
//
// Thresholds are inclusive and evaluated high-to-low, so a budget of exactly
// 50000 lands in the top band. The minimum achievable total is 30, not 0:
// every band has a non-zero floor. That floor is part of the contract.
package scoring

// Industry is a lead's industry segment.
type Industry string

const (
	IndustryTech       Industry = "tech"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryOther      Industry = "other"
)

// Urgency is how soon a lead intends to buy.
type Urgency string

const (
	UrgencyImmediately Urgency = "immediately"
	UrgencyThisWeek    Urgency = "this_week"
	UrgencyThisMonth   Urgency = "this_month"
	UrgencyLater       Urgency = "later"
)

// Industries lists the accepted industry values.
func Industries() []Industry {
	return []Industry{IndustryTech, IndustryFinance, IndustryHealthcare, IndustryOther}
}

// Urgencies lists the accepted urgency values.
func Urgencies() []Urgency {
	return []Urgency{UrgencyImmediately, UrgencyThisWeek, UrgencyThisMonth, UrgencyLater}
}

var industryPoints = map[Industry]int{
	IndustryTech:       20,
	IndustryFinance:    15,
	IndustryHealthcare: 10,
	IndustryOther:      5,
}

var urgencyPoints = map[Urgency]int{
	UrgencyImmediately: 20,
	UrgencyThisWeek:    15,
	UrgencyThisMonth:   10,
	UrgencyLater:       5,
}

// HighScoreThreshold marks a lead as high-scoring in aggregate statistics.
const HighScoreThreshold = 70

// Calculate returns the lead score for the given criteria. It is total:
// unrecognized industry or urgency values degrade to the lowest band rather
// than erroring. Budget and company size are assumed validated upstream
// (budget >= 0, size >= 1).
func Calculate(budget float64, companySize int, industry Industry, urgency Urgency) int {
	score := 0

	switch {
	case budget >= 50000:
		score += 30
	case budget >= 10000:
		score += 20
	default:
		score += 10
	}

	switch {
	case companySize >= 500:
		score += 30
	case companySize >= 100:
		score += 20
	default:
		score += 10
	}

	if points, ok := industryPoints[industry]; ok {
		score += points
	} else {
		score += industryPoints[IndustryOther]
	}

	if points, ok := urgencyPoints[urgency]; ok {
		score += points
	} else {
		score += urgencyPoints[UrgencyLater]
	}

	return score
}
