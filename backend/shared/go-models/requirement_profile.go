package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequirementProfile is a space requirement owned by exactly one Operator.
type RequirementProfile struct {
	ID                 uuid.UUID        `json:"id"`
	OperatorID         uuid.UUID        `json:"operator_id"`
	OperatorName       string           `json:"operator_name"` // populated by joined reads only
	MinSqft            *int             `json:"min_sqft"`
	MaxSqft            *int             `json:"max_sqft"`
	PreferredLocations []string         `json:"preferred_locations"`
	ExcludedLocations  []string         `json:"excluded_locations"`
	UseClass           *string          `json:"use_class"`
	MinFrontage        *decimal.Decimal `json:"frontage_min"`
	ExtractionRequired *bool            `json:"extraction_required"`
	PowerRequirementKW *int             `json:"power_requirement_kw"`
	Notes              *string          `json:"notes"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// HasSizeRange is true when both square-footage bounds are set.
func (r *RequirementProfile) HasSizeRange() bool {
	return r.MinSqft != nil && r.MaxSqft != nil
}
