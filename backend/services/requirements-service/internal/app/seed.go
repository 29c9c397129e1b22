package app

import (
	"context"
	"fmt"

	"github.com/acquireintel/mono-repo/backend/shared/go-seeding"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

func (a *App) seed(ctx context.Context) error {
	if !a.Config.LDFlag_SeedDbWithTestData {
		utils.Logger.Debug("seed_db_with_test_data is off; skipping demo operators")
		return nil
	}
	if err := seeding.SeedDefaultOperators(ctx, a.Transactor); err != nil {
		return fmt.Errorf("seed demo operators: %w", err)
	}
	return nil
}
