// Package matching implements the match scoring and filter derivation
// pipeline: stipend normalization, the filter predicate engine, smart
// filter generation from candidate profiles, compatibility scoring and
// the result-size suggestion heuristic.
package matching

// ParseStipend extracts the numeric amount from a free-text stipend string
// such as "₹12,000/month". Every rune that is not a decimal digit is
// discarded and the remainder parsed base-10. Strings with no digits
// parse to 0; the result is never negative and never an error. All
// stipend comparisons in the engine go through this function so filtering
// and sorting agree on the amount.
func ParseStipend(text string) int {
	amount := 0
	for _, r := range text {
		if r < '0' || r > '9' {
			continue
		}
		amount = amount*10 + int(r-'0')
	}
	return amount
}
