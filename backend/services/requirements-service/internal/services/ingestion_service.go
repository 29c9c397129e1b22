package services

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type IngestionService interface {
	Ingest(ctx context.Context, rows []map[string]string) (*models.IngestSummary, error)
}

type ingestionService struct {
	tx repositories.Transactor
}

func NewIngestionService(tx repositories.Transactor) IngestionService {
	return &ingestionService{tx: tx}
}

// Ingest persists one requirement profile per valid row inside a single
// transaction. Invalid rows are recorded in the summary and skipped. Any
// store failure rolls the whole batch back and is returned as ErrPersistence.
//
// Operators are upserted by name, so re-running a batch never duplicates
// operators but always appends new profiles.
func (s *ingestionService) Ingest(ctx context.Context, rows []map[string]string) (*models.IngestSummary, error) {
	var summary *models.IngestSummary

	err := s.tx.RunInTx(ctx, func(repos *repositories.Repositories) error {
		// Reset on every attempt so a rolled-back run never leaks counts.
		summary = &models.IngestSummary{TotalRows: len(rows), Errors: []models.RowError{}}

		for i, raw := range rows {
			rowNum := i + 1

			parsed, msg := parseRequirementRow(raw)
			if msg != "" {
				summary.Errors = append(summary.Errors, models.RowError{Row: rowNum, Error: msg})
				continue
			}

			op, inserted, err := repos.Operators.Upsert(ctx, parsed.operator)
			if err != nil {
				return persistenceErr("upsert operator", err)
			}
			if inserted {
				summary.CreatedOperators++
			} else {
				summary.UpdatedOperators++
			}

			profile := parsed.profile
			profile.OperatorID = op.ID
			profile.OperatorName = op.Name
			if err := repos.Requirements.Create(ctx, &profile); err != nil {
				return persistenceErr("insert requirement profile", err)
			}
			summary.CreatedRequirements++
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, utils.ErrPersistence) {
			// Begin or commit failed outside the row loop.
			err = persistenceErr("ingest transaction", err)
		}
		utils.Logger.WithError(err).WithField("total_rows", len(rows)).Error("Requirement ingestion rolled back")
		return nil, err
	}

	utils.Logger.WithFields(logrus.Fields{
		"total_rows":           summary.TotalRows,
		"created_operators":    summary.CreatedOperators,
		"updated_operators":    summary.UpdatedOperators,
		"created_requirements": summary.CreatedRequirements,
		"row_errors":           len(summary.Errors),
	}).Info("Requirement ingestion committed")

	return summary, nil
}
