package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type RequirementService interface {
	Create(ctx context.Context, req dtos.CreateRequirementRequest) (*models.RequirementProfile, error)
	ListRecent(ctx context.Context, limit int) ([]*models.RequirementProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type requirementService struct {
	operators    repositories.OperatorRepository
	requirements repositories.RequirementProfileRepository
}

func NewRequirementService(
	operators repositories.OperatorRepository,
	requirements repositories.RequirementProfileRepository,
) RequirementService {
	return &requirementService{operators: operators, requirements: requirements}
}

func (s *requirementService) Create(ctx context.Context, req dtos.CreateRequirementRequest) (*models.RequirementProfile, error) {
	if req.MinSqft != nil && req.MaxSqft != nil && *req.MinSqft > *req.MaxSqft {
		return nil, invalidInput("%s", msgSizeRangeInverted)
	}
	for _, v := range []*int{req.MinSqft, req.MaxSqft, req.PowerRequirementKW} {
		if v != nil && (*v < 0 || *v > utils.MaxIntegerColumn) {
			return nil, invalidInput("integer fields must be between 0 and %d", utils.MaxIntegerColumn)
		}
	}
	minFrontage := req.MinFrontage
	if minFrontage != nil {
		d, ok := fitFrontage(*minFrontage)
		if !ok {
			return nil, invalidInput("frontage_min must be >= 0 and below %d", utils.FrontageUpperBound)
		}
		minFrontage = &d
	}

	op, err := s.operators.GetByID(ctx, req.OperatorID)
	if err != nil {
		return nil, persistenceErr("get operator", err)
	}
	if op == nil {
		return nil, fmt.Errorf("%w: operator %s", utils.ErrNotFound, req.OperatorID)
	}

	profile := &models.RequirementProfile{
		OperatorID:         op.ID,
		OperatorName:       op.Name,
		MinSqft:            req.MinSqft,
		MaxSqft:            req.MaxSqft,
		PreferredLocations: cleanList(req.PreferredLocations),
		ExcludedLocations:  cleanList(req.ExcludedLocations),
		UseClass:           trimmedPtr(req.UseClass),
		MinFrontage:        minFrontage,
		ExtractionRequired: req.ExtractionRequired,
		PowerRequirementKW: req.PowerRequirementKW,
		Notes:              trimmedPtr(req.Notes),
	}
	if err := s.requirements.Create(ctx, profile); err != nil {
		return nil, persistenceErr("create requirement profile", err)
	}
	return profile, nil
}

// ListRecent returns the newest profiles. A non-positive limit selects the
// default and anything above the maximum is clamped.
func (s *requirementService) ListRecent(ctx context.Context, limit int) ([]*models.RequirementProfile, error) {
	switch {
	case limit <= 0:
		limit = utils.DefaultRecentRequirements
	case limit > utils.MaxRecentRequirements:
		limit = utils.MaxRecentRequirements
	}

	profiles, err := s.requirements.ListRecent(ctx, limit)
	if err != nil {
		return nil, persistenceErr("list recent requirement profiles", err)
	}
	return profiles, nil
}

func (s *requirementService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.requirements.Delete(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: requirement profile %s", utils.ErrNotFound, id)
	}
	if err != nil {
		return persistenceErr("delete requirement profile", err)
	}
	utils.Logger.WithField("requirement_id", id).Info("Deleted requirement profile")
	return nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if t := utils.TrimmedOrNil(s); t != nil {
			out = append(out, *t)
		}
	}
	return out
}
