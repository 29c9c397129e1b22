package controllers

import (
	"errors"
	"net/http"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/services"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

const csvFormField = "file"

type IngestionController struct {
	ingestionService services.IngestionService
}

func NewIngestionController(s services.IngestionService) *IngestionController {
	return &IngestionController{ingestionService: s}
}

// POST /api/v1/operator-csv/requirements
func (c *IngestionController) UploadRequirementsCSVHandler(w http.ResponseWriter, r *http.Request) {
	logger := utils.Logger.WithField("handler", "UploadRequirementsCSVHandler")

	r.Body = http.MaxBytesReader(w, r.Body, utils.MaxCSVUploadBytes)
	if err := r.ParseMultipartForm(utils.MaxCSVUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondErrorWithCode(w, http.StatusRequestEntityTooLarge, utils.ErrCodeInvalidPayload, "CSV file exceeds 5 MiB", nil, err)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Expected multipart form upload", nil, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(csvFormField)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "No file uploaded", nil, err)
		return
	}
	defer file.Close()
	logger.WithField("filename", header.Filename).Info("CSV upload received")

	rows, err := services.ParseCSV(file)
	if err != nil {
		respondServiceError(w, err, "Failed to read CSV")
		return
	}

	summary, err := c.ingestionService.Ingest(r.Context(), rows)
	if err != nil {
		respondServiceError(w, err, "Failed to ingest operator requirements")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, summary)
}
