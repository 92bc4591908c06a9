package domain

// ResolveStrategy picks the pricing strategy for a mode.
// Modes without a dedicated strategy, BLACK_FRIDAY included, fall back to DefaultStrategy.
func ResolveStrategy(mode PricingMode) PricingStrategy {
	switch mode {
	case PricingModeDefault:
		return DefaultStrategy{}
	case PricingModeSurged:
		return SurgedStrategy{}
	default:
		return DefaultStrategy{}
	}
}
