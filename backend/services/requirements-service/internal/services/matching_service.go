package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/acquireintel/mono-repo/backend/services/requirements-service/internal/config"
	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

// Rule weights. The final score is their plain sum and may be negative.
const (
	ScoreSizeInRange       = 40
	ScorePreferredLocation = 20
	ScoreExcludedLocation  = -20
	ScoreUseClassMatch     = 15
	ScoreFrontageMet       = 10
)

type MatchingService interface {
	RunMatch(ctx context.Context, candidate *models.PropertyCandidate) ([]models.MatchResult, error)
}

type matchingService struct {
	profiles         repositories.RequirementProfileRepository
	foldLocationCase bool
}

func NewMatchingService(cfg *config.Config, profiles repositories.RequirementProfileRepository) MatchingService {
	return &matchingService{
		profiles:         profiles,
		foldLocationCase: cfg.LDFlag_CaseInsensitiveLocations,
	}
}

// RunMatch scores every stored profile against the candidate and returns all
// of them, highest score first, ties by ascending profile id.
func (s *matchingService) RunMatch(ctx context.Context, candidate *models.PropertyCandidate) ([]models.MatchResult, error) {
	if candidate == nil {
		return nil, invalidInput("property candidate is required")
	}
	sqft := candidate.SquareFootage
	if math.IsNaN(sqft) || math.IsInf(sqft, 0) || sqft < 0 {
		return nil, invalidInput("sqft must be a finite, non-negative number")
	}

	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, persistenceErr("list requirement profiles", err)
	}

	results := make([]models.MatchResult, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, models.MatchResult{
			OperatorName:  p.OperatorName,
			RequirementID: p.ID.String(),
			Score:         ScoreProfile(candidate, p, s.foldLocationCase),
			Details:       p,
		})
	}

	// Canonical UUID strings are fixed-width lowercase hex, so string order is byte order.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].RequirementID < results[j].RequirementID
	})

	utils.Logger.WithField("profiles", len(results)).Debug("Matching run complete")
	return results, nil
}

// ScoreProfile sums the five independent rule contributions. Unknown fields on
// either side contribute nothing.
func ScoreProfile(c *models.PropertyCandidate, p *models.RequirementProfile, foldCase bool) int {
	score := 0

	if p.HasSizeRange() &&
		c.SquareFootage >= float64(*p.MinSqft) &&
		c.SquareFootage <= float64(*p.MaxSqft) {
		score += ScoreSizeInRange
	}

	if c.Location != "" {
		if containsLocation(p.PreferredLocations, c.Location, foldCase) {
			score += ScorePreferredLocation
		}
		if containsLocation(p.ExcludedLocations, c.Location, foldCase) {
			score += ScoreExcludedLocation
		}
	}

	if c.UseClass != nil && *c.UseClass != "" && p.UseClass != nil && *c.UseClass == *p.UseClass {
		score += ScoreUseClassMatch
	}

	if c.Frontage != nil && p.MinFrontage != nil && c.Frontage.GreaterThanOrEqual(*p.MinFrontage) {
		score += ScoreFrontageMet
	}

	return score
}

func containsLocation(list []string, location string, foldCase bool) bool {
	for _, l := range list {
		if l == location || (foldCase && strings.EqualFold(l, location)) {
			return true
		}
	}
	return false
}
