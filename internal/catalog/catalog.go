package catalog

import (
	"fmt"

	"movie-rental-billing/internal/config"
	"movie-rental-billing/internal/domain"
	"movie-rental-billing/internal/logger"
)

// Build creates the customers described by cfg, in file order. Each rental
// entry becomes one *domain.Rental that is added to its customer Copies times.
// cfg is validated first, so Copies of 0 are set to 1 in place.
func Build(cfg config.CatalogConfig) ([]*domain.Customer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	movies := make(map[int]domain.Movie, len(cfg.Movies))
	for _, m := range cfg.Movies {
		movies[m.ID] = domain.Movie{
			ID:    m.ID,
			Title: m.Title,
			Price: m.Price,
			Type:  domain.MovieType(m.Type),
		}
	}

	customers := make([]*domain.Customer, 0, len(cfg.Customers))
	for _, c := range cfg.Customers {
		customer := domain.NewCustomer(c.ID, c.Name)
		for _, r := range c.Rentals {
			rental := domain.NewRental(r.Days, movies[r.MovieID], domain.PricingMode(r.Mode))
			if _, ok := rental.Strategy().(domain.DefaultStrategy); ok && rental.Mode != domain.PricingModeDefault {
				logger.Warn("Pricing mode has no strategy, using DEFAULT",
					"customer_id", customer.ID,
					"movie_id", r.MovieID,
					"mode", rental.Mode)
			}

			for i := 0; i < r.Copies; i++ {
				customer.AddRental(rental)
			}
		}

		logger.Debug("Customer loaded", "customer_id", customer.ID, "name", customer.Name, "rentals", len(customer.Rentals))
		customers = append(customers, customer)
	}

	return customers, nil
}
