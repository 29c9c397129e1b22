package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

// Recognized ingestion columns. Anything else in a row is ignored.
const (
	ColOperatorName       = "operator_name"
	ColSector             = "sector"
	ColWebsite            = "website"
	ColNotes              = "notes"
	ColMinSizeSqft        = "min_size_sqft"
	ColMaxSizeSqft        = "max_size_sqft"
	ColPreferredUseClass  = "preferred_use_classes"
	ColPreferredLocations = "preferred_locations"
	ColFrontageMin        = "frontage_min"
	ColExtractionRequired = "extraction_required"
	ColPowerRequirementKW = "power_requirement_kw"
	ColReqNotes           = "req_notes"
)

const (
	msgOperatorNameMissing = "operator_name missing"
	msgSizeRangeInverted   = "min_size_sqft greater than max_size_sqft"
)

type requirementRow struct {
	operator models.OperatorFields
	profile  models.RequirementProfile
}

// parseRequirementRow coerces one raw row. Unparseable optional values become
// absent; only a missing operator name or an inverted size range reject the row,
// in which case the returned message is non-empty.
func parseRequirementRow(raw map[string]string) (*requirementRow, string) {
	name := strings.TrimSpace(raw[ColOperatorName])
	if name == "" {
		return nil, msgOperatorNameMissing
	}

	row := &requirementRow{
		operator: models.OperatorFields{
			Name:    name,
			Sector:  utils.TrimmedOrNil(raw[ColSector]),
			Website: utils.TrimmedOrNil(raw[ColWebsite]),
			Notes:   utils.TrimmedOrNil(raw[ColNotes]),
		},
		profile: models.RequirementProfile{
			MinSqft:            parseNonNegativeInt(raw[ColMinSizeSqft]),
			MaxSqft:            parseNonNegativeInt(raw[ColMaxSizeSqft]),
			PreferredLocations: utils.SplitList(raw[ColPreferredLocations]),
			ExcludedLocations:  []string{},
			UseClass:           utils.TrimmedOrNil(raw[ColPreferredUseClass]),
			MinFrontage:        parseNonNegativeDecimal(raw[ColFrontageMin]),
			ExtractionRequired: parseOptionalBool(raw[ColExtractionRequired]),
			PowerRequirementKW: parseNonNegativeInt(raw[ColPowerRequirementKW]),
			Notes:              utils.TrimmedOrNil(raw[ColReqNotes]),
		},
	}

	if p := row.profile; p.HasSizeRange() && *p.MinSqft > *p.MaxSqft {
		return nil, msgSizeRangeInverted
	}
	return row, ""
}

// parseNonNegativeInt accepts "1200", "1,200" and "1200.0" (truncated).
// Values outside [0, utils.MaxIntegerColumn] are treated as absent.
func parseNonNegativeInt(s string) *int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	d = d.Truncate(0)
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(utils.MaxIntegerColumn)) {
		return nil
	}
	n := int(d.IntPart())
	return &n
}

// parseNonNegativeDecimal rounds to the frontage column scale. Negative values
// and values the column cannot hold are treated as absent.
func parseNonNegativeDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	d, ok := fitFrontage(d)
	if !ok {
		return nil
	}
	return &d
}

// fitFrontage rounds d to utils.FrontageScale places and reports whether the
// result fits the NUMERIC(10,2) frontage column.
func fitFrontage(d decimal.Decimal) (decimal.Decimal, bool) {
	d = d.Round(utils.FrontageScale)
	if d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(utils.FrontageUpperBound)) {
		return decimal.Decimal{}, false
	}
	return d, true
}

// parseOptionalBool: blank → nil, "true" in any case → true, anything else → false.
func parseOptionalBool(s string) *bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return utils.Ptr(strings.EqualFold(s, "true"))
}
