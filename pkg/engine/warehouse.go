package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Warehouse questionnaire keys
const (
	warehouseQLocationCrime   types.QuestionID = "location_1"
	warehouseQTheftHistory    types.QuestionID = "incident_1"
	warehouseQDockDoors       types.QuestionID = "dock_1"
	warehouseQDockCamera      types.QuestionID = "dock_2"
	warehouseQDriverCheckIn   types.QuestionID = "dock_3"
	warehouseQSealPractice    types.QuestionID = "dock_4"
	warehouseQYardFencing     types.QuestionID = "yard_1"
	warehouseQYardLighting    types.QuestionID = "yard_2"
	warehouseQAccessControl   types.QuestionID = "access_1"
	warehouseQCycleCounts     types.QuestionID = "inventory_1"
	warehouseQBackgroundCheck types.QuestionID = "staff_1"
	warehouseQHighValueGoods  types.QuestionID = "facility_4"
	warehouseQPostureRating   types.QuestionID = "security_2"
)

// noSealVerification is the free-text signal of the seal-practice answer.
// Missing trailer-seal verification is one of the strongest cargo theft
// indicators and counts double.
const noSealVerification = "no seal verification"

// warehouseAdapter scores warehouse and distribution center assessments
type warehouseAdapter struct{}

var _ adapter = (*warehouseAdapter)(nil)

func (a *warehouseAdapter) domain() types.DomainType {
	return types.DomainWarehouse
}

func (a *warehouseAdapter) likelihood(rs model.ResponseSet, threatID types.ThreatID) int {
	riskFactors := crimeAreaSignals(rs, warehouseQLocationCrime)

	if rs.Bool(warehouseQTheftHistory) {
		riskFactors++
	}

	switch threatID {
	case "cargo_theft_full_truckload", "trailer_theft":
		// Concentrated high-value cargo is a primary target selector.
		if rs.Bool(warehouseQHighValueGoods) {
			riskFactors += 2
		}
	case "cargo_theft_pilferage", "insider_collusion":
		if rs.Bool(warehouseQHighValueGoods) {
			riskFactors++
		}
	}

	return adjusted(baselineLikelihood, riskFactors)
}

func (a *warehouseAdapter) vulnerability(rs model.ResponseSet, threatID types.ThreatID) int {
	var riskFactors int

	riskFactors += ratingSignals(rs, warehouseQPostureRating)

	switch threatID {
	case "cargo_theft_full_truckload", "trailer_theft":
		if answerContains(rs, warehouseQSealPractice, noSealVerification) {
			riskFactors += 2
		}
		if rs.No(warehouseQDockCamera) {
			riskFactors += 2
		}
		if rs.No(warehouseQDriverCheckIn) {
			riskFactors++
		}
		if rs.No(warehouseQYardFencing) {
			riskFactors++
		}
	case "cargo_theft_pilferage":
		if rs.No(warehouseQDockCamera) {
			riskFactors += 2
		}
		if rs.No(warehouseQCycleCounts) {
			riskFactors++
		}
		if rs.No(warehouseQAccessControl) {
			riskFactors++
		}
	case "unauthorized_dock_access":
		if rs.No(warehouseQDockDoors) {
			riskFactors++
		}
		if rs.No(warehouseQDriverCheckIn) {
			riskFactors++
		}
		if rs.No(warehouseQYardFencing) {
			riskFactors++
		}
	case "insider_collusion":
		if rs.No(warehouseQBackgroundCheck) {
			riskFactors++
		}
		if rs.No(warehouseQCycleCounts) {
			riskFactors++
		}
	case "equipment_theft", "vandalism":
		if rs.No(warehouseQYardFencing) {
			riskFactors++
		}
		if rs.No(warehouseQYardLighting) {
			riskFactors++
		}
	}

	return adjusted(baselineVulnerability, riskFactors)
}

func (a *warehouseAdapter) impact(rs model.ResponseSet, threat *model.Threat) int {
	if threat.ID == "active_threat" {
		return maxScore
	}

	score := threat.TypicalImpact

	if rs.Bool(warehouseQHighValueGoods) {
		switch threat.ID {
		case "cargo_theft_full_truckload", "cargo_theft_pilferage", "trailer_theft", "insider_collusion":
			score++
		}
	}

	return clampScore(score)
}

// combine reports the raw discounted 1-125 product. Unlike the office and
// retail variants, the warehouse pathway is not normalized to 0-100.
func (a *warehouseAdapter) combine(factors model.FactorScores, effectiveness float64) int {
	return combineRaw(factors, effectiveness)
}

func (a *warehouseAdapter) recommendations(rs model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string

	switch threatID {
	case "cargo_theft_full_truckload", "trailer_theft":
		if answerContains(rs, warehouseQSealPractice, noSealVerification) {
			recs = append(recs, "Verify trailer seals against shipping documents at every arrival and departure")
		}
		if rs.No(warehouseQDockCamera) {
			recs = append(recs, "Install camera coverage of all loading dock positions")
		}
		if rs.No(warehouseQDriverCheckIn) {
			recs = append(recs, "Require driver identity verification at check-in")
		}
	case "cargo_theft_pilferage":
		if rs.No(warehouseQDockCamera) {
			recs = append(recs, "Install camera coverage of all loading dock positions")
		}
		if rs.No(warehouseQCycleCounts) {
			recs = append(recs, "Schedule recurring cycle counts of high-value SKUs")
		}
	case "unauthorized_dock_access":
		if rs.No(warehouseQDockDoors) {
			recs = append(recs, "Keep dock doors closed and locked when not actively loading")
		}
	case "insider_collusion":
		if rs.No(warehouseQBackgroundCheck) {
			recs = append(recs, "Run background checks on warehouse and dock staff")
		}
	}

	if rs.No(warehouseQYardFencing) {
		recs = append(recs, "Fence the trailer yard and control the gate")
	}
	if rs.No(warehouseQYardLighting) {
		recs = append(recs, "Light the yard and trailer parking area")
	}

	// Raw warehouse scale: the critical band of the 1-125 product.
	if riskScore >= 94 {
		recs = append(recs, "Engage a supply chain security review of this site")
	}

	return dedupe(recs)
}
