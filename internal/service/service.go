package service

import (
	"movie-rental-billing/internal/domain"
)

type BillingService interface {
	ComputeTotal(customer *domain.Customer) float64
	RenderReceipt(customer *domain.Customer) string
}
