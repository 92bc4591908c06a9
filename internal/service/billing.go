package service

import (
	"fmt"
	"log/slog"
	"strconv"

	"movie-rental-billing/internal/domain"
	"movie-rental-billing/internal/logger"
)

// ReceiptBanner opens every receipt line
const ReceiptBanner = "🍿🎞🍿🎞"

type billingService struct {
	log *slog.Logger
}

func NewBillingService() BillingService {
	return &billingService{log: logger.WithService("billing")}
}

// ComputeTotal sums the cost of every rental in insertion order. A rental
// added several times is charged once per addition.
func (s *billingService) ComputeTotal(customer *domain.Customer) float64 {
	logger.EnterMethod("billingService.ComputeTotal", "customer_id", customer.ID, "rentals", len(customer.Rentals))

	total := 0.0
	for i, rental := range customer.Rentals {
		cost := rental.Cost()
		s.log.Debug("Rental priced",
			"customer_id", customer.ID,
			"index", i,
			"movie", rental.Movie.Title,
			"days", rental.NumDays,
			"mode", rental.Mode,
			"cost", cost)
		total += cost
	}

	logger.ExitMethod("billingService.ComputeTotal", "customer_id", customer.ID, "total", total)
	return total
}

func (s *billingService) RenderReceipt(customer *domain.Customer) string {
	total := s.ComputeTotal(customer)
	return fmt.Sprintf("%s Cusomer: %s Cost is : %s", ReceiptBanner, customer.Name, FormatAmount(total))
}

// FormatAmount prints the shortest decimal that round-trips to v, with no
// fixed precision: 134.91, 67.455, 0.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
