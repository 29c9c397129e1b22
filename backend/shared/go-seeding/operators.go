package seeding

import (
	"context"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-repositories"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

type demoOperator struct {
	fields  models.OperatorFields
	profile models.RequirementProfile
}

var demoOperators = []demoOperator{
	{
		fields: models.OperatorFields{
			Name:    "Starbucks",
			Sector:  utils.StrPtr("F&B"),
			Website: utils.StrPtr("https://www.starbucks.co.uk"),
			Notes:   utils.StrPtr("Coffee chain, typical size 1200-2000 sqft."),
		},
		profile: models.RequirementProfile{
			MinSqft:            utils.Ptr(1200),
			MaxSqft:            utils.Ptr(2000),
			PreferredLocations: []string{"London", "Manchester", "Birmingham"},
			UseClass:           utils.StrPtr("E(b)"),
		},
	},
	{
		fields: models.OperatorFields{
			Name:    "Nando's",
			Sector:  utils.StrPtr("F&B"),
			Website: utils.StrPtr("https://www.nandos.co.uk"),
			Notes:   utils.StrPtr("Restaurant, size usually 2500-4000 sqft."),
		},
		profile: models.RequirementProfile{
			MinSqft:            utils.Ptr(2500),
			MaxSqft:            utils.Ptr(4000),
			PreferredLocations: []string{"Leeds", "Bristol"},
			UseClass:           utils.StrPtr("E(b)"),
			ExtractionRequired: utils.Ptr(true),
		},
	},
	{
		fields: models.OperatorFields{
			Name:    "Tesco Express",
			Sector:  utils.StrPtr("Grocery"),
			Website: utils.StrPtr("https://www.tesco.com"),
			Notes:   utils.StrPtr("Convenience format 3000-6000 sqft."),
		},
		profile: models.RequirementProfile{
			MinSqft:            utils.Ptr(3000),
			MaxSqft:            utils.Ptr(6000),
			PreferredLocations: []string{"London"},
			UseClass:           utils.StrPtr("E(a)"),
		},
	},
	{
		fields: models.OperatorFields{
			Name:    "Five Guys",
			Sector:  utils.StrPtr("F&B"),
			Website: utils.StrPtr("https://fiveguys.co.uk"),
			Notes:   utils.StrPtr("Burger chain, 2000-3500 sqft."),
		},
		profile: models.RequirementProfile{
			MinSqft:            utils.Ptr(2000),
			MaxSqft:            utils.Ptr(3500),
			PreferredLocations: []string{"Manchester", "Glasgow"},
			ExcludedLocations:  []string{"Swindon"},
			UseClass:           utils.StrPtr("E(b)"),
			ExtractionRequired: utils.Ptr(true),
		},
	},
}

// SeedDefaultOperators upserts the demo operators in one transaction. A demo
// requirement profile is written only when its operator is new, so repeated
// seeding leaves profile counts unchanged.
func SeedDefaultOperators(ctx context.Context, tx repositories.Transactor) error {
	return tx.RunInTx(ctx, func(repos *repositories.Repositories) error {
		for _, d := range demoOperators {
			op, created, err := repos.Operators.Upsert(ctx, d.fields)
			if err != nil {
				return err
			}
			if !created {
				continue
			}
			p := d.profile
			p.OperatorID = op.ID
			if err := repos.Requirements.Create(ctx, &p); err != nil {
				return err
			}
			utils.Logger.Debugf("Seeded operator %q with one requirement profile", op.Name)
		}
		return nil
	})
}
