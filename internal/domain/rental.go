package domain

type Rental struct {
	Movie   Movie
	NumDays int
	Mode    PricingMode

	// Resolved once from Mode in NewRental. Changing Mode afterwards does not
	// change it.
	strategy PricingStrategy
}

// NewRental creates a rental and resolves its pricing strategy from mode.
// An empty mode means PricingModeDefault.
func NewRental(numDays int, movie Movie, mode PricingMode) *Rental {
	if mode == "" {
		mode = PricingModeDefault
	}
	return &Rental{
		Movie:    movie,
		NumDays:  numDays,
		Mode:     mode,
		strategy: ResolveStrategy(mode),
	}
}

// Strategy returns the strategy resolved at construction
func (r *Rental) Strategy() PricingStrategy {
	return r.strategy
}

// Cost delegates to the rental's pricing strategy
func (r *Rental) Cost() float64 {
	return r.strategy.Cost(r)
}
