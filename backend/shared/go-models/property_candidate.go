package models

import "github.com/shopspring/decimal"

// PropertyCandidate is the transient input of a matching run. It is never stored.
type PropertyCandidate struct {
	SquareFootage float64
	Location      string
	UseClass      *string
	Frontage      *decimal.Decimal
}

// MatchResult is one scored profile. Details carries the full profile for display.
type MatchResult struct {
	OperatorName  string              `json:"operator_name"`
	RequirementID string              `json:"requirement_id"`
	Score         int                 `json:"score"`
	Details       *RequirementProfile `json:"details"`
}
