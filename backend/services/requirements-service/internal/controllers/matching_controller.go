package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/dtos"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/services"
	shared_dtos "github.com/acquireintel/mono-repo/backend/shared/go-dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type MatchingController struct {
	matchingService services.MatchingService
	validate        *validator.Validate
}

func NewMatchingController(s services.MatchingService) *MatchingController {
	return &MatchingController{matchingService: s, validate: shared_dtos.NewValidator()}
}

// POST /api/v1/matching/run
func (c *MatchingController) RunMatchHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.MatchRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	results, err := c.matchingService.RunMatch(r.Context(), req.ToCandidate())
	if err != nil {
		respondServiceError(w, err, "Failed to run matching engine")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}
