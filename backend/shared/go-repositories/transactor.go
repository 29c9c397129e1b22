package repositories

import (
	"context"
)

// Repositories groups the repositories bound to one DB handle.
type Repositories struct {
	Operators    OperatorRepository
	Requirements RequirementProfileRepository
}

func NewRepositories(db DB) *Repositories {
	return &Repositories{
		Operators:    NewOperatorRepository(db),
		Requirements: NewRequirementProfileRepository(db),
	}
}

// Transactor runs fn with repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(repos *Repositories) error) error
}

type pgTransactor struct {
	db DB
}

func NewTransactor(db DB) Transactor {
	return &pgTransactor{db: db}
}

func (t *pgTransactor) RunInTx(ctx context.Context, fn func(repos *Repositories) error) (err error) {
	tx, err := t.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(NewRepositories(tx))
}
