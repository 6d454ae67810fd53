package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Executive protection questionnaire keys
const (
	executiveQPublicProfile    types.QuestionID = "profile_1"
	executiveQAddressKnown     types.QuestionID = "profile_2"
	executiveQPredictability   types.QuestionID = "routine_1"
	executiveQFixedCommute     types.QuestionID = "routine_2"
	executiveQDigitalFootprint types.QuestionID = "digital_1"
	executiveQGeographicRisk   types.QuestionID = "travel_1"
	executiveQHighRiskTravel   types.QuestionID = "travel_2"
	executiveQProtectionDetail types.QuestionID = "protection_1"
	executiveQResidenceSystem  types.QuestionID = "residence_1"
	executiveQSecureParking    types.QuestionID = "residence_2"
	executiveQThreatHistory    types.QuestionID = "incident_1"
	executiveQDependents       types.QuestionID = "family_1"
	executiveQStaffVetting     types.QuestionID = "staff_1"
)

// Exposure sub-factor weights. Exposure is a real-valued weighted
// composite; the fractional result feeds the multiplicative risk formula
// and must not be rounded.
const (
	weightPublicProfile  = 0.4
	weightPredictability = 0.3
	weightDigital        = 0.2
	weightGeographic     = 0.1
)

// executiveAdapter scores executive protection assessments. It is the one
// person-centric variant and the only adapter producing an exposure factor.
type executiveAdapter struct{}

var (
	_ adapter         = (*executiveAdapter)(nil)
	_ exposureAdapter = (*executiveAdapter)(nil)
)

func (a *executiveAdapter) domain() types.DomainType {
	return types.DomainExecutiveProtection
}

func (a *executiveAdapter) likelihood(rs model.ResponseSet, threatID types.ThreatID) int {
	var riskFactors int

	if rs.Bool(executiveQThreatHistory) {
		riskFactors++
	}

	switch threatID {
	case "travel_ambush", "kidnapping_ransom":
		if rs.Bool(executiveQHighRiskTravel) {
			riskFactors++
		}
		riskFactors += matchCount(rs, executiveQGeographicRisk)
	case "doxxing_exposure", "digital_surveillance":
		if matchKeyword(rs.Text(executiveQDigitalFootprint), digitalFootprintKeywords, 0) >= 4 {
			riskFactors++
		}
	case "stalking_harassment":
		if matchKeyword(rs.Text(executiveQPublicProfile), publicProfileKeywords, 0) >= 4 {
			riskFactors++
		}
	}

	return adjusted(baselineLikelihood, riskFactors)
}

// matchCount converts a high-geographic-risk answer into one likelihood
// signal for travel-related threats.
func matchCount(rs model.ResponseSet, id types.QuestionID) int {
	if matchKeyword(rs.Text(id), geographicRiskKeywords, 0) >= 4 {
		return 1
	}
	return 0
}

func (a *executiveAdapter) vulnerability(rs model.ResponseSet, threatID types.ThreatID) int {
	var riskFactors int

	// Absence of a protection detail is the dominant gap and counts double.
	if rs.No(executiveQProtectionDetail) {
		riskFactors += 2
	}

	switch threatID {
	case "home_invasion", "household_insider":
		if rs.No(executiveQResidenceSystem) {
			riskFactors++
		}
		if rs.No(executiveQStaffVetting) {
			riskFactors++
		}
	case "travel_ambush", "kidnapping_ransom":
		if rs.No(executiveQSecureParking) {
			riskFactors++
		}
		if rs.Bool(executiveQFixedCommute) {
			riskFactors++
		}
	case "digital_surveillance", "doxxing_exposure":
		if matchKeyword(rs.Text(executiveQDigitalFootprint), digitalFootprintKeywords, 0) >= 4 {
			riskFactors++
		}
	}

	return adjusted(baselineVulnerability, riskFactors)
}

func (a *executiveAdapter) impact(rs model.ResponseSet, threat *model.Threat) int {
	score := threat.TypicalImpact

	// Dependents in the household widen the consequence of any incident
	// that reaches the principal's home or family.
	if rs.Bool(executiveQDependents) {
		switch threat.ID {
		case "kidnapping_ransom", "home_invasion", "stalking_harassment", "household_insider":
			score++
		}
	}

	return clampScore(score)
}

// exposure is the weighted composite unique to this domain:
// PublicProfile*0.4 + Predictability*0.3 + DigitalFootprint*0.2 +
// GeographicRisk*0.1, each sub-factor keyword-mapped onto 1-5 with an
// additive +1 ceiling bump for documented secondary conditions. The result
// is clamped to [1,5] but never rounded.
func (a *executiveAdapter) exposure(rs model.ResponseSet) float64 {
	publicProfile := matchKeyword(rs.Text(executiveQPublicProfile), publicProfileKeywords, exposureSubFactorDefault)
	if rs.Bool(executiveQAddressKnown) && publicProfile < maxScore {
		publicProfile++
	}

	predictability := matchKeyword(rs.Text(executiveQPredictability), predictabilityKeywords, exposureSubFactorDefault)
	if rs.Bool(executiveQFixedCommute) && predictability < maxScore {
		predictability++
	}

	digital := matchKeyword(rs.Text(executiveQDigitalFootprint), digitalFootprintKeywords, exposureSubFactorDefault)
	geographic := matchKeyword(rs.Text(executiveQGeographicRisk), geographicRiskKeywords, exposureSubFactorDefault)

	composite := float64(publicProfile)*weightPublicProfile +
		float64(predictability)*weightPredictability +
		float64(digital)*weightDigital +
		float64(geographic)*weightGeographic

	return clampExposure(composite)
}

// combine reports the raw discounted L*V*E*I product rounded to an
// integer, commonly tens to low hundreds. Never normalized to 0-100.
func (a *executiveAdapter) combine(factors model.FactorScores, effectiveness float64) int {
	return combineRaw(factors, effectiveness)
}

func (a *executiveAdapter) recommendations(rs model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string

	if rs.No(executiveQProtectionDetail) {
		recs = append(recs, "Retain a trained protection detail for the principal")
	}

	switch threatID {
	case "home_invasion", "household_insider":
		if rs.No(executiveQResidenceSystem) {
			recs = append(recs, "Install a monitored residence security system")
		}
		if rs.No(executiveQStaffVetting) {
			recs = append(recs, "Vet household and domestic staff")
		}
	case "travel_ambush", "kidnapping_ransom":
		if rs.Bool(executiveQFixedCommute) {
			recs = append(recs, "Vary commute routes and departure times")
		}
		if rs.No(executiveQSecureParking) {
			recs = append(recs, "Use secured parking at residence and office")
		}
	case "doxxing_exposure", "digital_surveillance":
		recs = append(recs, "Commission a digital footprint reduction review")
	}

	if rs.Bool(executiveQAddressKnown) {
		recs = append(recs, "Remove the principal's residential address from public records")
	}

	return dedupe(recs)
}
