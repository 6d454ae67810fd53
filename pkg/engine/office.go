package engine

import (
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
)

// Office building questionnaire keys. The interview instrument numbers
// questions by section; the engine only reads the keys listed here.
const (
	officeQLocationCrime  types.QuestionID = "location_1"
	officeQBreakInHistory types.QuestionID = "incident_1"
	officeQTheftHistory   types.QuestionID = "incident_2"
	officeQThreatHistory  types.QuestionID = "incident_3"
	officeQPerimeter      types.QuestionID = "perimeter_1"
	officeQAccessControl  types.QuestionID = "access_1"
	officeQVisitorMgmt    types.QuestionID = "access_2"
	officeQCameraCoverage types.QuestionID = "cctv_1"
	officeQSecurityStaff  types.QuestionID = "security_1"
	officeQPostureRating  types.QuestionID = "security_2"
	officeQLighting       types.QuestionID = "lighting_1"
	officeQFacilitySize   types.QuestionID = "facility_1"
	officeQSensitiveData  types.QuestionID = "data_1"
)

// officeAdapter scores office building assessments. It is the default
// adapter: unknown domain types fall back here.
type officeAdapter struct{}

var _ adapter = (*officeAdapter)(nil)

func (a *officeAdapter) domain() types.DomainType {
	return types.DomainOfficeBuilding
}

func (a *officeAdapter) likelihood(rs model.ResponseSet, threatID types.ThreatID) int {
	riskFactors := crimeAreaSignals(rs, officeQLocationCrime)

	if rs.Bool(officeQBreakInHistory) {
		riskFactors++
	}

	switch threatID {
	case "theft_burglary", "forced_entry", "vandalism":
		if rs.Bool(officeQTheftHistory) {
			riskFactors++
		}
	case "workplace_violence", "active_threat", "insider_threat":
		if rs.Bool(officeQThreatHistory) {
			riskFactors++
		}
	}

	return adjusted(baselineLikelihood, riskFactors)
}

func (a *officeAdapter) vulnerability(rs model.ResponseSet, threatID types.ThreatID) int {
	var riskFactors int

	if rs.No(officeQAccessControl) {
		riskFactors++
	}
	if rs.No(officeQCameraCoverage) {
		riskFactors++
	}
	if rs.No(officeQSecurityStaff) {
		riskFactors++
	}
	if rs.No(officeQLighting) {
		riskFactors++
	}
	riskFactors += ratingSignals(rs, officeQPostureRating)

	switch threatID {
	case "forced_entry", "theft_burglary", "vandalism":
		if rs.No(officeQPerimeter) {
			riskFactors++
		}
	case "unauthorized_access", "workplace_violence", "data_theft":
		if rs.No(officeQVisitorMgmt) {
			riskFactors++
		}
	}

	return adjusted(baselineVulnerability, riskFactors)
}

func (a *officeAdapter) impact(rs model.ResponseSet, threat *model.Threat) int {
	// Documented override: an active threat scenario is always maximum
	// impact regardless of facility characteristics.
	if threat.ID == "active_threat" {
		return maxScore
	}

	score := threat.TypicalImpact

	switch rs.Text(officeQFacilitySize) {
	case "large", "campus":
		score++
	}

	if rs.Bool(officeQSensitiveData) {
		switch threat.ID {
		case "data_theft", "theft_burglary", "insider_threat":
			score++
		}
	}

	return clampScore(score)
}

func (a *officeAdapter) combine(factors model.FactorScores, effectiveness float64) int {
	return combineNormalized(factors, effectiveness)
}

func (a *officeAdapter) recommendations(rs model.ResponseSet, threatID types.ThreatID, riskScore int) []string {
	var recs []string

	if rs.No(officeQAccessControl) {
		recs = append(recs, "Install electronic access control at all entry points")
	}
	if rs.No(officeQCameraCoverage) {
		recs = append(recs, "Deploy CCTV coverage of entries and the perimeter")
	}
	if rs.No(officeQLighting) {
		recs = append(recs, "Upgrade exterior lighting to eliminate dark zones")
	}

	switch threatID {
	case "forced_entry", "theft_burglary":
		if rs.No(officeQPerimeter) {
			recs = append(recs, "Reinforce perimeter barriers and fencing")
		}
	case "unauthorized_access", "workplace_violence":
		if rs.No(officeQVisitorMgmt) {
			recs = append(recs, "Introduce a visitor management and escort policy")
		}
	case "active_threat":
		recs = append(recs, "Run active threat response training and drills")
	}

	if riskScore >= normalizedHigh && rs.No(officeQSecurityStaff) {
		recs = append(recs, "Staff a security officer during business hours")
	}
	if riskScore >= normalizedCritical {
		recs = append(recs, "Commission an independent physical penetration test")
	}

	return dedupe(recs)
}
