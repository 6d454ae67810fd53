package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/argus/pkg/domain/model"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/usecase"
	"github.com/secmon-lab/argus/pkg/utils/errutil"
)

type assessmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Domain      string    `json:"domain"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAssessmentResponse(a *model.Assessment) assessmentResponse {
	return assessmentResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Domain:      a.Domain.String(),
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func assessmentIDParam(r *http.Request) types.AssessmentID {
	return types.AssessmentID(chi.URLParam(r, "assessmentID"))
}

func createAssessmentHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Name        string `json:"name"`
		Domain      string `json:"domain"`
		Description string `json:"description"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		created, err := uc.Assessment.CreateAssessment(ctx, req.Name, types.DomainType(req.Domain), req.Description)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusCreated, toAssessmentResponse(created))
	}
}

func getAssessmentHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assessment, err := uc.Assessment.GetAssessment(ctx, assessmentIDParam(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, toAssessmentResponse(assessment))
	}
}

func listAssessmentsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Assessments []assessmentResponse `json:"assessments"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		listed, err := uc.Assessment.ListAssessments(ctx)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{Assessments: make([]assessmentResponse, 0, len(listed))}
		for _, a := range listed {
			resp.Assessments = append(resp.Assessments, toAssessmentResponse(a))
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

func updateAssessmentHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		updated, err := uc.Assessment.UpdateAssessment(ctx, assessmentIDParam(r), req.Name, req.Description)
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		respondJSON(ctx, w, http.StatusOK, toAssessmentResponse(updated))
	}
}

func deleteAssessmentHandler(uc *usecase.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := uc.Assessment.DeleteAssessment(ctx, assessmentIDParam(r)); err != nil {
			respondError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func putResponsesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type answer struct {
		QuestionID string `json:"question_id"`
		Answer     any    `json:"answer"`
	}
	type request struct {
		Responses []answer `json:"responses"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		responses := make([]model.Response, 0, len(req.Responses))
		for _, a := range req.Responses {
			responses = append(responses, model.Response{
				QuestionID: types.QuestionID(a.QuestionID),
				Answer:     a.Answer,
			})
		}

		if err := uc.Assessment.PutResponses(ctx, assessmentIDParam(r), responses); err != nil {
			respondError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getResponsesHandler(uc *usecase.UseCases) http.HandlerFunc {
	type answer struct {
		QuestionID string `json:"question_id"`
		Answer     any    `json:"answer"`
	}
	type response struct {
		Responses []answer `json:"responses"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rs, err := uc.Assessment.GetResponses(ctx, assessmentIDParam(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{Responses: make([]answer, 0, len(rs))}
		for _, item := range rs {
			resp.Responses = append(resp.Responses, answer{
				QuestionID: item.QuestionID.String(),
				Answer:     item.Answer,
			})
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}

type controlPayload struct {
	ID            string `json:"id"`
	ThreatID      string `json:"threat_id"`
	Name          string `json:"name"`
	ControlType   string `json:"control_type"`
	Effectiveness int    `json:"effectiveness"`
	PrimaryEffect string `json:"primary_effect,omitempty"`
}

func putControlsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type request struct {
		Controls []controlPayload `json:"controls"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req request
		if err := decodeJSON(r, &req); err != nil {
			errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
			return
		}

		controls := make([]model.Control, 0, len(req.Controls))
		for _, c := range req.Controls {
			controls = append(controls, model.Control{
				ID:            types.ControlID(c.ID),
				ThreatID:      types.ThreatID(c.ThreatID),
				Name:          c.Name,
				ControlType:   types.ControlType(c.ControlType),
				Effectiveness: c.Effectiveness,
				PrimaryEffect: c.PrimaryEffect,
			})
		}

		if err := uc.Assessment.PutControls(ctx, assessmentIDParam(r), controls); err != nil {
			respondError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func getControlsHandler(uc *usecase.UseCases) http.HandlerFunc {
	type response struct {
		Controls []controlPayload `json:"controls"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		controls, err := uc.Assessment.GetControls(ctx, assessmentIDParam(r))
		if err != nil {
			respondError(ctx, w, err)
			return
		}

		resp := response{Controls: make([]controlPayload, 0, len(controls))}
		for _, c := range controls {
			resp.Controls = append(resp.Controls, controlPayload{
				ID:            c.ID.String(),
				ThreatID:      c.ThreatID.String(),
				Name:          c.Name,
				ControlType:   c.ControlType.String(),
				Effectiveness: c.Effectiveness,
				PrimaryEffect: c.PrimaryEffect,
			})
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}
