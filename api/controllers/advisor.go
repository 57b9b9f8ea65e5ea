package controllers

import (
	"net/http"

	"github.com/aura-commerce/ministore-backend/api/responses"
	"github.com/aura-commerce/ministore-backend/api/validators"
	"github.com/aura-commerce/ministore-backend/internal/advisor"
	"github.com/aura-commerce/ministore-backend/pkg/logger"
)

type adviseRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type adviseResponse struct {
	Reply string `json:"reply"`
}

// Advise answers a shopping question grounded in the live catalog. Upstream
// failures degrade to a canned apology rather than an error status.
func Advise(svc advisor.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adviseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := svc.Advise(r.Context(), payload.Prompt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, adviseResponse{Reply: reply})
	}
}
