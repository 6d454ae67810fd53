package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Retail store questionnaire keys
const (
	retailQLocationCrime   types.QuestionID = "location_1"
	retailQShopliftHistory types.QuestionID = "incident_1"
	retailQRobberyHistory  types.QuestionID = "incident_2"
	retailQEASGates        types.QuestionID = "storefront_1"
	retailQPOSMonitoring   types.QuestionID = "pos_1"
	retailQCashPolicy      types.QuestionID = "cash_1"
	retailQCashRoom        types.QuestionID = "cash_2"
	retailQBackgroundCheck types.QuestionID = "staff_1"
	retailQLossPrevention  types.QuestionID = "staff_2"
	retailQCameraCoverage  types.QuestionID = "cctv_1"
	retailQHighValueMerch  types.QuestionID = "merch_1"
	retailQPostureRating   types.QuestionID = "security_2"
	retailQStoreSize       types.QuestionID = "facility_1"
)

// retailAdapter scores retail store assessments
type retailAdapter struct{}

var _ adapter = (*retailAdapter)(nil)

func (a *retailAdapter) domain() types.DomainType {
	return types.DomainRetailStore
}

func (a *retailAdapter) likelihood(rs model.ResponseSet, threatID types.ThreatID) int {
	riskFactors := crimeAreaSignals(rs, retailQLocationCrime)

	switch threatID {
	case "shoplifting", "inventory_shrinkage":
		if rs.Bool(retailQShopliftHistory) {
			riskFactors++
		}
	case "organized_retail_crime":
		if rs.Bool(retailQShopliftHistory) {
			riskFactors++
		}
		// High-value merchandise draws organized crews.
		if rs.Bool(retailQHighValueMerch) {
			riskFactors++
		}
	case "robbery", "burglary":
		if rs.Bool(retailQRobberyHistory) {
			riskFactors++
		}
	}

	return adjusted(baselineLikelihood, riskFactors)
}

func (a *retailAdapter) vulnerability(rs model.ResponseSet, threatID types.ThreatID) int {
	var riskFactors int

	if rs.No(retailQCameraCoverage) {
		riskFactors++
	}
	riskFactors += ratingSignals(rs, retailQPostureRating)

	switch threatID {
	case "shoplifting", "organized_retail_crime", "inventory_shrinkage":
		if rs.No(retailQEASGates) {
			riskFactors++
		}
		if rs.No(retailQLossPrevention) {
			riskFactors++
		}
	case "employee_theft":
		if rs.No(retailQBackgroundCheck) {
			riskFactors++
		}
		if rs.No(retailQPOSMonitoring) {
			riskFactors++
		}
	case "cash_handling_theft", "robbery":
		if rs.No(retailQCashPolicy) {
			riskFactors++
		}
		if rs.No(retailQCashRoom) {
			riskFactors++
		}
	}

	return adjusted(baselineVulnerability, riskFactors)
}

func (a *retailAdapter) impact(rs model.ResponseSet, threat *model.Threat) int {
	if threat.ID == "active_threat" {
		return maxScore
	}

	score := threat.TypicalImpact

	if rs.Bool(retailQHighValueMerch) {
		switch threat.ID {
		case "shoplifting", "organized_retail_crime", "burglary", "inventory_shrinkage":
			score++
		}
	}
	switch rs.Text(retailQStoreSize) {
	case "large", "flagship":
		score++
	}

	return clampScore(score)
}

func (a *retailAdapter) combine(factors model.FactorScores, effectiveness float64) int {
	return combineNormalized(factors, effectiveness)
}

func (a *retailAdapter) recommendations(rs model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string

	if rs.No(retailQCameraCoverage) {
		recs = append(recs, "Deploy camera coverage of the sales floor and exits")
	}

	switch threatID {
	case "shoplifting", "organized_retail_crime", "inventory_shrinkage":
		if rs.No(retailQEASGates) {
			recs = append(recs, "Install electronic article surveillance gates")
		}
		if rs.No(retailQLossPrevention) {
			recs = append(recs, "Assign dedicated loss prevention staff")
		}
	case "employee_theft":
		if rs.No(retailQBackgroundCheck) {
			recs = append(recs, "Run background checks on all new hires")
		}
		if rs.No(retailQPOSMonitoring) {
			recs = append(recs, "Enable POS exception monitoring and review")
		}
	case "cash_handling_theft", "robbery":
		if rs.No(retailQCashPolicy) {
			recs = append(recs, "Adopt a dual-control cash handling policy with drop safes")
		}
		if rs.No(retailQCashRoom) {
			recs = append(recs, "Restrict cash counting to a secured room")
		}
	case "active_threat":
		recs = append(recs, "Run active threat response training and drills")
	}

	if riskScore >= normalizedCritical {
		recs = append(recs, "Commission a store-level loss prevention audit")
	}

	return dedupe(recs)
}
