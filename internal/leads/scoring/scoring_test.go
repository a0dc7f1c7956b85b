package scoring

import "testing"

func TestCalculateFixedPoints(t *testing.T) {
	cases := []struct {
		name     string
		budget   float64
		size     int
		industry Industry
		urgency  Urgency
		want     int
	}{
		{"maximum", 50000, 500, IndustryTech, UrgencyImmediately, 100},
		{"minimum", 5000, 10, IndustryOther, UrgencyLater, 30},
		{"mid bands", 10000, 100, IndustryFinance, UrgencyThisWeek, 70},
		{"healthcare this_month", 25000, 250, IndustryHealthcare, UrgencyThisMonth, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.budget, tc.size, tc.industry, tc.urgency)
			if got != tc.want {
				t.Fatalf("Calculate(%v, %d, %q, %q) = %d, want %d",
					tc.budget, tc.size, tc.industry, tc.urgency, got, tc.want)
			}
		})
	}
}

func TestCalculateBudgetBoundaries(t *testing.T) {
	cases := []struct {
		budget float64
		want   int
	}{
		{0, 10},
		{9999.99, 10},
		{10000, 20},
		{49999, 20},
		{49999.99, 20},
		{50000, 30},
		{1000000, 30},
	}

	for _, tc := range cases {
		// Hold the other bands at their floors so only the budget band moves.
		got := Calculate(tc.budget, 1, IndustryOther, UrgencyLater)
		band := got - 10 - 5 - 5
		if band != tc.want {
			t.Errorf("budget %v: band = %d, want %d", tc.budget, band, tc.want)
		}
	}
}

func TestCalculateCompanySizeBoundaries(t *testing.T) {
	cases := []struct {
		size int
		want int
	}{
		{1, 10},
		{99, 10},
		{100, 20},
		{499, 20},
		{500, 30},
		{10000, 30},
	}

	for _, tc := range cases {
		got := Calculate(0, tc.size, IndustryOther, UrgencyLater)
		band := got - 10 - 5 - 5
		if band != tc.want {
			t.Errorf("company size %d: band = %d, want %d", tc.size, band, tc.want)
		}
	}
}

func TestCalculateUnrecognizedValuesDegrade(t *testing.T) {
	base := Calculate(5000, 10, IndustryOther, UrgencyLater)

	if got := Calculate(5000, 10, Industry("blockchain"), UrgencyLater); got != base {
		t.Errorf("unrecognized industry scored %d, want %d (same as other)", got, base)
	}
	if got := Calculate(5000, 10, IndustryOther, Urgency("someday")); got != base {
		t.Errorf("unrecognized urgency scored %d, want %d (same as later)", got, base)
	}
}

func TestCalculateRange(t *testing.T) {
	budgets := []float64{0, 9999, 10000, 49999, 50000, 200000}
	sizes := []int{1, 99, 100, 499, 500, 5000}
	industries := append(Industries(), Industry("unknown"))
	urgencies := append(Urgencies(), Urgency("unknown"))

	for _, b := range budgets {
		for _, s := range sizes {
			for _, i := range industries {
				for _, u := range urgencies {
					got := Calculate(b, s, i, u)
					if got < 30 || got > 100 {
						t.Fatalf("Calculate(%v, %d, %q, %q) = %d, outside [30,100]", b, s, i, u, got)
					}
				}
			}
		}
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	first := Calculate(42000, 321, IndustryFinance, UrgencyThisMonth)
	for i := 0; i < 10; i++ {
		if got := Calculate(42000, 321, IndustryFinance, UrgencyThisMonth); got != first {
			t.Fatalf("call %d returned %d, first call returned %d", i, got, first)
		}
	}
}
