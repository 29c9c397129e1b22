package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/dtos"
	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type OperatorService interface {
	List(ctx context.Context) ([]*models.Operator, error)
	Create(ctx context.Context, req dtos.CreateOperatorRequest) (*models.Operator, error)
	Update(ctx context.Context, id uuid.UUID, req dtos.UpdateOperatorRequest) (*models.Operator, error)
}

type operatorService struct {
	repo repositories.OperatorRepository
}

func NewOperatorService(repo repositories.OperatorRepository) OperatorService {
	return &operatorService{repo: repo}
}

func (s *operatorService) List(ctx context.Context) ([]*models.Operator, error) {
	ops, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, persistenceErr("list operators", err)
	}
	return ops, nil
}

func (s *operatorService) Create(ctx context.Context, req dtos.CreateOperatorRequest) (*models.Operator, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, invalidInput("name is required")
	}

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, persistenceErr("find operator by name", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", utils.ErrOperatorExists, name)
	}

	op := &models.Operator{
		Name:    name,
		Sector:  trimmedPtr(req.Sector),
		Website: trimmedPtr(req.Website),
		Notes:   trimmedPtr(req.Notes),
	}
	if err := s.repo.Create(ctx, op); err != nil {
		// Lost a race with a concurrent create of the same name.
		if repositories.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", utils.ErrOperatorExists, name)
		}
		return nil, persistenceErr("create operator", err)
	}

	utils.Logger.WithField("operator_id", op.ID).Infof("Created operator %q", op.Name)
	return op, nil
}

// Update applies the non-nil fields of req under optimistic locking. An empty
// string clears an optional field.
func (s *operatorService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdateOperatorRequest) (*models.Operator, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, invalidInput("name cannot be blank")
	}

	var updated *models.Operator
	err := s.repo.UpdateWithRetry(ctx, id, func(o *models.Operator) error {
		if req.Name != nil {
			o.Name = strings.TrimSpace(*req.Name)
		}
		if req.Sector != nil {
			o.Sector = utils.TrimmedOrNil(*req.Sector)
		}
		if req.Website != nil {
			o.Website = utils.TrimmedOrNil(*req.Website)
		}
		if req.Notes != nil {
			o.Notes = utils.TrimmedOrNil(*req.Notes)
		}
		updated = o
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, pgx.ErrNoRows):
		return nil, fmt.Errorf("%w: operator %s", utils.ErrNotFound, id)
	case errors.Is(err, utils.ErrRowVersionConflict):
		return nil, err
	case repositories.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: %q", utils.ErrOperatorExists, utils.Val(req.Name))
	default:
		return nil, persistenceErr("update operator", err)
	}

	utils.Logger.WithField("operator_id", id).Debug("Updated operator")
	return updated, nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return utils.TrimmedOrNil(*s)
}
