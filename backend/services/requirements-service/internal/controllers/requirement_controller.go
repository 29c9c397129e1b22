package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/dtos"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/services"
	shared_dtos "github.com/acquireintel/mono-repo/backend/shared/go-dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type RequirementController struct {
	requirementService services.RequirementService
	validate           *validator.Validate
}

func NewRequirementController(s services.RequirementService) *RequirementController {
	return &RequirementController{requirementService: s, validate: shared_dtos.NewValidator()}
}

// GET /api/v1/requirements?limit=N
func (c *RequirementController) ListRecentHandler(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "limit must be an integer", nil, err)
			return
		}
		limit = n
	}

	profiles, err := c.requirementService.ListRecent(r.Context(), limit)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch requirements")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

// POST /api/v1/requirements
func (c *RequirementController) CreateRequirementHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateRequirementRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	profile, err := c.requirementService.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to create requirement")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, profile)
}

// DELETE /api/v1/requirements/{id}
func (c *RequirementController) DeleteRequirementHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.requirementService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete requirement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
