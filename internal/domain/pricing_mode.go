package domain

type PricingMode string

const (
	PricingModeDefault     PricingMode = "DEFAULT"
	PricingModeSurged      PricingMode = "SURGED"
	PricingModeBlackFriday PricingMode = "BLACK_FRIDAY"
)
