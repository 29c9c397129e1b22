package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
)

type RequirementProfileRepository interface {
	Create(ctx context.Context, p *models.RequirementProfile) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.RequirementProfile, error)
	ListAll(ctx context.Context) ([]*models.RequirementProfile, error)
	ListRecent(ctx context.Context, limit int) ([]*models.RequirementProfile, error)

	Delete(ctx context.Context, id uuid.UUID) error
}

type requirementProfileRepo struct {
	db DB
}

func NewRequirementProfileRepository(db DB) RequirementProfileRepository {
	return &requirementProfileRepo{db: db}
}

func (r *requirementProfileRepo) Create(ctx context.Context, p *models.RequirementProfile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx, `
        INSERT INTO operator_requirement_profiles (
            id, operator_id, min_sqft, max_sqft,
            preferred_locations, excluded_locations, use_class,
            frontage_min, extraction_required, power_requirement_kw, notes,
            created_at, updated_at
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8::numeric,$9,$10,$11, NOW(), NOW())
        RETURNING created_at, updated_at
    `,
		p.ID,
		p.OperatorID,
		p.MinSqft,
		p.MaxSqft,
		nonNilStrings(p.PreferredLocations),
		nonNilStrings(p.ExcludedLocations),
		p.UseClass,
		decimalText(p.MinFrontage),
		p.ExtractionRequired,
		p.PowerRequirementKW,
		p.Notes,
	)
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *requirementProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.RequirementProfile, error) {
	row := r.db.QueryRow(ctx, baseSelectRequirementProfile()+" WHERE p.id=$1", id)
	return scanRequirementProfile(row)
}

// ListAll returns every profile joined with its operator name, ordered by id.
func (r *requirementProfileRepo) ListAll(ctx context.Context) ([]*models.RequirementProfile, error) {
	return r.list(ctx, baseSelectRequirementProfile()+" ORDER BY p.id")
}

func (r *requirementProfileRepo) ListRecent(ctx context.Context, limit int) ([]*models.RequirementProfile, error) {
	return r.list(ctx, baseSelectRequirementProfile()+" ORDER BY p.created_at DESC, p.id LIMIT $1", limit)
}

func (r *requirementProfileRepo) list(ctx context.Context, sql string, args ...any) ([]*models.RequirementProfile, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.RequirementProfile
	for rows.Next() {
		p, err := scanRequirementProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *requirementProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM operator_requirement_profiles WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectRequirementProfile() string {
	return `
        SELECT
            p.id, p.operator_id, o.name,
            p.min_sqft, p.max_sqft,
            p.preferred_locations, p.excluded_locations, p.use_class,
            p.frontage_min::text, p.extraction_required, p.power_requirement_kw, p.notes,
            p.created_at, p.updated_at
        FROM operator_requirement_profiles p
        JOIN operators o ON o.id = p.operator_id
    `
}

func scanRequirementProfile(row pgx.Row) (*models.RequirementProfile, error) {
	var (
		p        models.RequirementProfile
		frontage *string
	)
	err := row.Scan(
		&p.ID,
		&p.OperatorID,
		&p.OperatorName,
		&p.MinSqft,
		&p.MaxSqft,
		&p.PreferredLocations,
		&p.ExcludedLocations,
		&p.UseClass,
		&frontage,
		&p.ExtractionRequired,
		&p.PowerRequirementKW,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if frontage != nil {
		d, err := decimal.NewFromString(*frontage)
		if err != nil {
			return nil, err
		}
		p.MinFrontage = &d
	}
	return &p, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// decimalText keeps NUMERIC exact on the wire; nil maps to SQL NULL.
func decimalText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
