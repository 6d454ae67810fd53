package http

import (
	"net/http"
	"time"

	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/engine"
	"github.com/secmon-lab/argus/pkg/usecase"
	"github.com/secmon-lab/argus/pkg/utils/errutil"
)

type factorScoresResponse struct {
	Likelihood    int      `json:"likelihood"`
	Vulnerability int      `json:"vulnerability"`
	Impact        int      `json:"impact"`
	Exposure      *float64 `json:"exposure,omitempty"`
}

type riskResultResponse struct {
	ThreatID             string               `json:"threat_id"`
	ThreatName           string               `json:"threat_name"`
	Factors              factorScoresResponse `json:"factors"`
	InherentRisk         int                  `json:"inherent_risk"`
	CurrentRisk          int                  `json:"current_risk"`
	ResidualRisk         int                  `json:"residual_risk"`
	RiskLevel            string               `json:"risk_level"`
	ControlEffectiveness float64              `json:"control_effectiveness"`
	Recommendations      []string             `json:"recommendations,omitempty"`
	Findings             []string             `json:"findings,omitempty"`
}

func toRiskResultResponse(assessment *model.Assessment, r *model.RiskCalculationResult) riskResultResponse {
	resp := riskResultResponse{
		ThreatID:   r.ThreatID.String(),
		ThreatName: r.ThreatName,
		Factors: factorScoresResponse{
			Likelihood:    r.Factors.Likelihood,
			Vulnerability: r.Factors.Vulnerability,
			Impact:        r.Factors.Impact,
		},
		InherentRisk:         r.InherentRisk,
		CurrentRisk:          r.CurrentRisk,
		ResidualRisk:         r.ResidualRisk,
		RiskLevel:            string(engine.ClassifyScore(assessment.Domain, r.ResidualRisk)),
		ControlEffectiveness: r.ControlEffectiveness,
		Recommendations:      r.Recommendations,
		Findings:             r.Findings,
	}
	if r.Factors.HasExposure {
		exposure := r.Factors.Exposure
		resp.Factors.Exposure = &exposure
	}
	return resp
}

func calculateHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Results []riskResultResponse `json:"results"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := assessmentIDParam(r)

		assessment, err := uc.Assessment.GetAssessment(ctx, id)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		results, err := uc.Risk.Calculate(ctx, id)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{Results: make([]riskResultResponse, 0, len(results))}
		for _, result := range results {
			resp.Results = append(resp.Results, toRiskResultResponse(assessment, result))
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

func resultsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type storedResultResponse struct {
		riskResultResponse
		CalculatedAt time.Time `json:"calculated_at"`
	}
	type response struct {
		Results []storedResultResponse `json:"results"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := assessmentIDParam(r)

		assessment, err := uc.Assessment.GetAssessment(ctx, id)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		stored, err := uc.Risk.Results(ctx, id)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{Results: make([]storedResultResponse, 0, len(stored))}
		for _, s := range stored {
			resp.Results = append(resp.Results, storedResultResponse{
				riskResultResponse: toRiskResultResponse(assessment, &s.Result),
				CalculatedAt:       s.CalculatedAt,
			})
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

func shrinkageHandler(uc *usecase.UseCases) http.HandlerFunc {
	type breakdown struct {
		ThreatID string `json:"threat_id"`
		Score    int    `json:"score"`
		Weight   int    `json:"weight"`
	}
	type response struct {
		Score       int         `json:"score"`
		RiskLevel   string      `json:"risk_level"`
		Breakdown   []breakdown `json:"breakdown"`
		RiskFactors []string    `json:"risk_factors,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		result, err := uc.Risk.ShrinkageScore(ctx, assessmentIDParam(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{
			Score:       result.Score,
			RiskLevel:   string(result.RiskLevel),
			Breakdown:   make([]breakdown, 0, len(result.Breakdown)),
			RiskFactors: result.RiskFactors,
		}
		for _, b := range result.Breakdown {
			resp.Breakdown = append(resp.Breakdown, breakdown{
				ThreatID: b.ThreatID.String(),
				Score:    b.Score,
				Weight:   b.Weight,
			})
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

func tcorHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		AnnualRevenue         float64 `json:"annual_revenue"`
		InventoryValue        float64 `json:"inventory_value"`
		ShrinkageRate         float64 `json:"shrinkage_rate"`
		AnnualTurnoverCost    float64 `json:"annual_turnover_cost"`
		SecurityTurnoverShare float64 `json:"security_turnover_share"`
		LiabilityCost         float64 `json:"liability_cost"`
		IncidentCost          float64 `json:"incident_cost"`
		BrandDamageCost       float64 `json:"brand_damage_cost"`
	}
	type response struct {
		DirectLoss          float64 `json:"direct_loss"`
		TurnoverCost        float64 `json:"turnover_cost"`
		LiabilityCost       float64 `json:"liability_cost"`
		IncidentCost        float64 `json:"incident_cost"`
		BrandDamageCost     float64 `json:"brand_damage_cost"`
		TotalAnnualExposure float64 `json:"total_annual_exposure"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		tcor := uc.Risk.TotalCostOfRisk(ctx, &model.RiskProfile{
			AnnualRevenue:         req.AnnualRevenue,
			InventoryValue:        req.InventoryValue,
			ShrinkageRate:         req.ShrinkageRate,
			AnnualTurnoverCost:    req.AnnualTurnoverCost,
			SecurityTurnoverShare: req.SecurityTurnoverShare,
			LiabilityCost:         req.LiabilityCost,
			IncidentCost:          req.IncidentCost,
			BrandDamageCost:       req.BrandDamageCost,
		})

		respondJSON(ctx, w, http.StatusOK, response{
			DirectLoss:          tcor.DirectLoss,
			TurnoverCost:        tcor.TurnoverCost,
			LiabilityCost:       tcor.LiabilityCost,
			IncidentCost:        tcor.IncidentCost,
			BrandDamageCost:     tcor.BrandDamageCost,
			TotalAnnualExposure: tcor.TotalAnnualExposure,
		})
	}
}
