package controllers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/dtos"
	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/services"
	shared_dtos "github.com/acquireintel/mono-repo/backend/shared/go-dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type OperatorController struct {
	operatorService services.OperatorService
	validate        *validator.Validate
}

func NewOperatorController(s services.OperatorService) *OperatorController {
	return &OperatorController{operatorService: s, validate: shared_dtos.NewValidator()}
}

// GET /api/v1/operators
func (c *OperatorController) ListOperatorsHandler(w http.ResponseWriter, r *http.Request) {
	ops, err := c.operatorService.List(r.Context())
	if err != nil {
		respondServiceError(w, err, "Failed to fetch operators")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ops)
}

// POST /api/v1/operators
func (c *OperatorController) CreateOperatorHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateOperatorRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	op, err := c.operatorService.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to create operator")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, op)
}

// PATCH /api/v1/operators/{id}
func (c *OperatorController) UpdateOperatorHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req dtos.UpdateOperatorRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	op, err := c.operatorService.Update(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update operator")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, op)
}
