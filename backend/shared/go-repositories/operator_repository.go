package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type OperatorRepository interface {
	Create(ctx context.Context, o *models.Operator) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error)
	FindByName(ctx context.Context, name string) (*models.Operator, error)
	ListAll(ctx context.Context) ([]*models.Operator, error)

	Update(ctx context.Context, o *models.Operator) error
	UpdateIfVersion(ctx context.Context, o *models.Operator, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Operator) error) error

	// Upsert inserts by name or merges non-nil fields into the existing row.
	// The bool is true when a new row was inserted.
	Upsert(ctx context.Context, f models.OperatorFields) (*models.Operator, bool, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type operatorRepo struct {
	*BaseVersionedRepo[*models.Operator]
	db DB
}

func NewOperatorRepository(db DB) OperatorRepository {
	r := &operatorRepo{db: db}
	r.BaseVersionedRepo = NewBaseRepo(db, baseSelectOperator()+" WHERE id=$1", scanOperator)
	return r
}

func (r *operatorRepo) Create(ctx context.Context, o *models.Operator) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, `
        INSERT INTO operators (
            id, name, sector, website, notes,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
        RETURNING created_at, updated_at, row_version
    `,
		o.ID,
		o.Name,
		o.Sector,
		o.Website,
		o.Notes,
	)
	return row.Scan(&o.CreatedAt, &o.UpdatedAt, &o.RowVersion)
}

func (r *operatorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Operator, error) {
	return r.BaseVersionedRepo.GetByID(ctx, id.String())
}

// FindByName returns the operator whose name equals the trimmed input, or nil.
// The match is case sensitive.
func (r *operatorRepo) FindByName(ctx context.Context, name string) (*models.Operator, error) {
	row := r.db.QueryRow(ctx, baseSelectOperator()+" WHERE name=$1", strings.TrimSpace(name))
	return scanOperator(row)
}

func (r *operatorRepo) ListAll(ctx context.Context) ([]*models.Operator, error) {
	rows, err := r.db.Query(ctx, baseSelectOperator()+" ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Operator
	for rows.Next() {
		o, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *operatorRepo) Update(ctx context.Context, o *models.Operator) error {
	_, err := r.update(ctx, o, false, 0)
	return err
}

func (r *operatorRepo) UpdateIfVersion(ctx context.Context, o *models.Operator, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, o, true, expected)
}

func (r *operatorRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Operator) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *operatorRepo) update(ctx context.Context, o *models.Operator, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE operators SET
            name=$1, sector=$2, website=$3, notes=$4,
            updated_at=NOW(), row_version=row_version+1
    `
	args := []any{o.Name, o.Sector, o.Website, o.Notes, o.ID}
	if check {
		sql += ` WHERE id=$5 AND row_version=$6`
		args = append(args, expected)
	} else {
		sql += ` WHERE id=$5`
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *operatorRepo) Upsert(ctx context.Context, f models.OperatorFields) (*models.Operator, bool, error) {
	row := r.db.QueryRow(ctx, `
        INSERT INTO operators (
            id, name, sector, website, notes,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
        ON CONFLICT (name) DO UPDATE SET
            sector      = COALESCE(EXCLUDED.sector,  operators.sector),
            website     = COALESCE(EXCLUDED.website, operators.website),
            notes       = COALESCE(EXCLUDED.notes,   operators.notes),
            updated_at  = NOW(),
            row_version = operators.row_version + 1
        RETURNING
            id, name, sector, website, notes,
            created_at, updated_at, row_version,
            (xmax = 0) AS inserted
    `,
		uuid.New(),
		f.Name,
		f.Sector,
		f.Website,
		f.Notes,
	)

	var (
		o        models.Operator
		inserted bool
	)
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Sector,
		&o.Website,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.RowVersion,
		&inserted,
	)
	if err != nil {
		return nil, false, err
	}
	return &o, inserted, nil
}

func baseSelectOperator() string {
	return `
        SELECT
            id, name, sector, website, notes,
            created_at, updated_at, row_version
        FROM operators
    `
}

func scanOperator(row pgx.Row) (*models.Operator, error) {
	var o models.Operator
	err := row.Scan(
		&o.ID,
		&o.Name,
		&o.Sector,
		&o.Website,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.RowVersion,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
