package testhelpers

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
)

// CreateTestOperator inserts an operator with a unique name.
func (h *TestHelper) CreateTestOperator(namePrefix string) *models.Operator {
	h.T.Helper()
	op := &models.Operator{Name: namePrefix + "-" + uuid.NewString()[:8]}
	require.NoError(h.T, h.OperatorRepo.Create(h.Ctx, op))
	return op
}

// CreateTestRequirement inserts a profile owned by operatorID. mutate may be nil.
func (h *TestHelper) CreateTestRequirement(operatorID uuid.UUID, mutate func(*models.RequirementProfile)) *models.RequirementProfile {
	h.T.Helper()
	p := &models.RequirementProfile{OperatorID: operatorID}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(h.T, h.RequirementRepo.Create(h.Ctx, p))

	stored, err := h.RequirementRepo.GetByID(h.Ctx, p.ID)
	require.NoError(h.T, err)
	require.NotNil(h.T, stored)
	return stored
}
