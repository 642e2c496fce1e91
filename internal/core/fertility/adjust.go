package fertility

// DefaultAlpha is the number of years each adverse childhood experience
// shifts the effective age.
const DefaultAlpha = 3.0

// AdjustAge returns the effective age used for the fertility lookup:
// age + alpha*aces.
//
// Each additional ACE is associated with a first birth roughly three years
// younger (Adverse Childhood Experiences, Early and Nonmarital Fertility,
// and Women's Health at Midlife, table 1 and its logistic regression).
// Rather than fitting a new distribution, p(age) is read as
// p(age + alpha*aces) from the unadjusted table.
//
// No input is rejected: negative ACE counts and any alpha are accepted.
func AdjustAge(age, aces int, alpha float64) float64 {
	return float64(age) + alpha*float64(aces)
}
