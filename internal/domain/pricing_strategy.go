package domain

// SurgeFactor is the multiplier applied by SurgedStrategy
const SurgeFactor = 1.5

// PricingStrategy computes the cost of a single rental
type PricingStrategy interface {
	Cost(rental *Rental) float64
}

// DefaultStrategy charges the movie price for every rented day
type DefaultStrategy struct{}

func (DefaultStrategy) Cost(rental *Rental) float64 {
	return float64(rental.Movie.Price * float64(rental.NumDays))
}

// SurgedStrategy charges the default cost times SurgeFactor
type SurgedStrategy struct{}

func (SurgedStrategy) Cost(rental *Rental) float64 {
	return float64(float64(rental.Movie.Price*float64(rental.NumDays)) * SurgeFactor)
}

// TypeBasedStrategy is meant to price by movie type but has no price table
// yet. It always returns 0 and is not reachable through ResolveStrategy.
type TypeBasedStrategy struct{}

func (TypeBasedStrategy) Cost(*Rental) float64 {
	return 0
}
