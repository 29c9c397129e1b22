package dtos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRequirementRequest is the manual-entry form of one requirement profile.
type CreateRequirementRequest struct {
	OperatorID         uuid.UUID        `json:"operator_id" validate:"required"`
	MinSqft            *int             `json:"min_sqft,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	MaxSqft            *int             `json:"max_sqft,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	PreferredLocations []string         `json:"preferred_locations,omitempty" validate:"omitempty,dive,required"`
	ExcludedLocations  []string         `json:"excluded_locations,omitempty" validate:"omitempty,dive,required"`
	UseClass           *string          `json:"use_class,omitempty" validate:"omitempty,max=32"`
	MinFrontage        *decimal.Decimal `json:"frontage_min,omitempty"`
	ExtractionRequired *bool            `json:"extraction_required,omitempty"`
	PowerRequirementKW *int             `json:"power_requirement_kw,omitempty" validate:"omitempty,gte=0,max=2147483647"`
	Notes              *string          `json:"notes,omitempty"`
}
