package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/argus/pkg/domain/types"
	"github.com/secmon-lab/argus/pkg/usecase"
	"github.com/secmon-lab/argus/pkg/utils/errutil"
)

func domainsHandler(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Domains []string `json:"domains"`
	}

	resp := response{}
	for _, d := range types.AllDomainTypes() {
		resp.Domains = append(resp.Domains, d.String())
	}

	respondJSON(r.Context(), w, http.StatusOK, resp)
}

func catalogHandler(uc *usecase.UseCases) http.HandlerFunc {
	type threatResponse struct {
		ID                string `json:"id"`
		Name              string `json:"name"`
		Category          string `json:"category"`
		TypicalLikelihood int    `json:"typical_likelihood"`
		TypicalImpact     int    `json:"typical_impact"`
		TaxonomyCode      string `json:"taxonomy_code,omitempty"`
	}
	type response struct {
		Domain  string           `json:"domain"`
		Threats []threatResponse `json:"threats"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		domain := types.DomainType(chi.URLParam(r, "domain"))
		if !domain.IsValid() {
			errutil.HandleHTTP(ctx, w, goerr.New("unknown domain type", goerr.V("domain", domain)), http.StatusBadRequest)
			return
		}

		threats := uc.Engine().Catalog().ForDomain(domain)
		resp := response{
			Domain:  domain.String(),
			Threats: make([]threatResponse, 0, len(threats)),
		}
		for _, t := range threats {
			resp.Threats = append(resp.Threats, threatResponse{
				ID:                t.ID.String(),
				Name:              t.Name,
				Category:          t.Category,
				TypicalLikelihood: t.TypicalLikelihood,
				TypicalImpact:     t.TypicalImpact,
				TaxonomyCode:      t.TaxonomyCode,
			})
		}

		respondJSON(ctx, w, http.StatusOK, resp)
	}
}
