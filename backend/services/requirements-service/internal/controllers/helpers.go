package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	shared_dtos "github.com/acquireintel/mono-repo/backend/shared/go-dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

// decodeAndValidate writes a 400 and returns false when the body is not valid
// JSON for dst or fails its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return false
	}
	if err := v.Struct(dst); err != nil {
		utils.RespondErrorWithCode(
			w,
			http.StatusBadRequest,
			utils.ErrCodeValidation,
			"Validation error",
			shared_dtos.NewValidationErrorDetails(err),
			err,
		)
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid "+name, nil, err)
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service-layer sentinels onto HTTP status codes.
func respondServiceError(w http.ResponseWriter, err error, internalMsg string) {
	switch {
	case errors.Is(err, utils.ErrInvalidInput):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, publicMessage(err), nil, err)
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil, err)
	case errors.Is(err, utils.ErrOperatorExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "An operator with that name already exists", nil, err)
	case errors.Is(err, utils.ErrRowVersionConflict):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeRowVersionConflict, "Record was modified concurrently, retry", nil, err)
	case errors.Is(err, utils.ErrPersistence):
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodePersistence, internalMsg, nil, err)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}

// publicMessage strips the sentinel prefix from an invalid-input error.
func publicMessage(err error) string {
	msg := err.Error()
	prefix := utils.ErrInvalidInput.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
