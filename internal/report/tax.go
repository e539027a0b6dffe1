// Package report derives the tax overlay for a monthly earnings total.
// The model is the fixed Ukrainian sole-proprietor regime: a 5% single
// tax, a 1% military levy and a flat minimum social contribution.  The
// overlay is a pure function of the gross total; nothing here is
// persisted.
package report

import (
	"math"
	"strconv"
	"strings"
)

// Fixed tax parameters.  The social contribution is a flat monthly
// minimum owed regardless of how small the total is, which is why the
// net result may legitimately be negative in a slow month.
const (
	SingleTaxRate      = 0.05
	MilitaryTaxRate    = 0.01
	SocialContribution = 1902.34
)

// TaxEstimate is the derived breakdown for one month's gross total.
type TaxEstimate struct {
	SingleTax          float64 `json:"single_tax"`
	MilitaryTax        float64 `json:"military_tax"`
	SocialContribution float64 `json:"social_contribution"`
	TotalTax           float64 `json:"total_tax"`
	Net                float64 `json:"net"`
}

// Estimate computes the tax breakdown for a gross total.  Every figure
// is rounded to 2 decimals so the components always add up exactly in
// rendered output.
func Estimate(total float64) TaxEstimate {
	single := round2(total * SingleTaxRate)
	military := round2(total * MilitaryTaxRate)
	totalTax := round2(single + military + SocialContribution)
	return TaxEstimate{
		SingleTax:          single,
		MilitaryTax:        military,
		SocialContribution: SocialContribution,
		TotalTax:           totalTax,
		Net:                round2(total - totalTax),
	}
}

// FormatAmount renders a monetary value with exactly two decimal digits
// and a comma as the decimal separator, e.g. 1962.34 -> "1962,34".
func FormatAmount(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
