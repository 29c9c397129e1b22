package dtos

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

// MatchRequest is the property description posted to the matching endpoint.
type MatchRequest struct {
	Sqft     *float64         `json:"sqft" validate:"required,gte=0"`
	Location string           `json:"location"`
	UseClass *string          `json:"use_class,omitempty"`
	Frontage *decimal.Decimal `json:"frontage,omitempty"`
}

func (r *MatchRequest) ToCandidate() *models.PropertyCandidate {
	var useClass *string
	if r.UseClass != nil {
		useClass = utils.TrimmedOrNil(*r.UseClass)
	}
	return &models.PropertyCandidate{
		SquareFootage: utils.Val(r.Sqft),
		Location:      strings.TrimSpace(r.Location),
		UseClass:      useClass,
		Frontage:      r.Frontage,
	}
}
