package types

// RiskLevel represents a discrete risk tier derived from a risk score
type RiskLevel string

const (
	RiskLevelCritical RiskLevel = "critical"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelLow      RiskLevel = "low"
)

// AllRiskLevels returns all risk levels in descending order of severity
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelCritical,
		RiskLevelHigh,
		RiskLevelMedium,
		RiskLevelLow,
	}
}

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLevelCritical, RiskLevelHigh, RiskLevelMedium, RiskLevelLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (r RiskLevel) String() string {
	return string(r)
}

// AtLeast reports whether the level is as severe or more severe than other
func (r RiskLevel) AtLeast(other RiskLevel) bool {
	return r.rank() >= other.rank()
}

func (r RiskLevel) rank() int {
	switch r {
	case RiskLevelCritical:
		return 3
	case RiskLevelHigh:
		return 2
	case RiskLevelMedium:
		return 1
	default:
		return 0
	}
}
