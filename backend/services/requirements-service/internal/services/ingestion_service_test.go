package services

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acquireintel/mono-repo/backend/shared/go-models"
	"github.com/acquireintel/mono-repo/backend/shared/go-utils"
)

func row(name string, kv ...string) map[string]string {
	r := map[string]string{ColOperatorName: name}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i]] = kv[i+1]
	}
	return r
}

func TestIngest_SharedOperatorNameCreatesOneOperator(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	summary, err := svc.Ingest(context.Background(), []map[string]string{
		row("Acme", ColMinSizeSqft, "1000", ColMaxSizeSqft, "2000"),
		row("Acme", ColMinSizeSqft, "3000", ColMaxSizeSqft, "4000"),
	})
	require.NoError(t, err)

	assert.Equal(t, &models.IngestSummary{
		TotalRows:           2,
		CreatedOperators:    1,
		UpdatedOperators:    1,
		CreatedRequirements: 2,
		Errors:              []models.RowError{},
	}, summary)
	assert.Equal(t, 1, store.operatorCount())
	assert.Equal(t, 2, store.profileCount())
}

func TestIngest_MissingOperatorNameIsSkipped(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	summary, err := svc.Ingest(context.Background(), []map[string]string{
		row("Acme"),
		row("   "),
		{ColSector: "Retail"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 1, summary.CreatedRequirements)
	assert.Equal(t, []models.RowError{
		{Row: 2, Error: "operator_name missing"},
		{Row: 3, Error: "operator_name missing"},
	}, summary.Errors)
	assert.Equal(t, 1, store.profileCount())
}

func TestIngest_BlankCSVRecordReportsItsRow(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader("operator_name,sector\nAcme,Retail\n,\nGlobex,Tech\n"))
	require.NoError(t, err)

	summary, err := NewIngestionService(newMemStore()).Ingest(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalRows)
	assert.Equal(t, 2, summary.CreatedRequirements)
	assert.Equal(t, []models.RowError{{Row: 2, Error: "operator_name missing"}}, summary.Errors)
}

func TestIngest_ExtractionRequiredParsing(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	_, err := svc.Ingest(context.Background(), []map[string]string{
		row("A", ColExtractionRequired, "TRUE"),
		row("B", ColExtractionRequired, "tRuE"),
		row("C", ColExtractionRequired, ""),
		row("D", ColExtractionRequired, "maybe"),
		row("E"),
	})
	require.NoError(t, err)

	got := map[string]*bool{}
	for _, p := range store.profilesSnapshot() {
		got[store.operatorNameOf(p)] = p.ExtractionRequired
	}
	assert.Equal(t, utils.Ptr(true), got["A"])
	assert.Equal(t, utils.Ptr(true), got["B"])
	assert.Nil(t, got["C"])
	assert.Equal(t, utils.Ptr(false), got["D"])
	assert.Nil(t, got["E"])
}

func TestIngest_RerunIsIdempotentForOperators(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)
	batch := []map[string]string{row("Acme"), row("Globex"), row("Initech")}

	first, err := svc.Ingest(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 3, first.CreatedOperators)
	assert.Equal(t, 0, first.UpdatedOperators)
	assert.Equal(t, 3, first.CreatedRequirements)

	second, err := svc.Ingest(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, 0, second.CreatedOperators)
	assert.Equal(t, 3, second.UpdatedOperators)
	assert.Equal(t, 3, second.CreatedRequirements)

	assert.Equal(t, 3, store.operatorCount())
	assert.Equal(t, 6, store.profileCount())
}

func TestIngest_StoreFailureRollsBackBatch(t *testing.T) {
	store := newMemStore()
	store.failOnRequirementCreate = 3
	svc := NewIngestionService(store)

	summary, err := svc.Ingest(context.Background(), []map[string]string{
		row("One"), row("Two"), row("Three"), row("Four"), row("Five"),
	})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, utils.ErrPersistence)
	assert.ErrorIs(t, err, errStoreDown)

	assert.Zero(t, store.profileCount())
	assert.Zero(t, store.operatorCount())
}

func TestIngest_InvertedSizeRangeRejectsRow(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	summary, err := svc.Ingest(context.Background(), []map[string]string{
		row("Acme", ColMinSizeSqft, "5000", ColMaxSizeSqft, "1000"),
		row("Acme", ColMinSizeSqft, "1000", ColMaxSizeSqft, "1000"),
	})
	require.NoError(t, err)

	assert.Equal(t, []models.RowError{{Row: 1, Error: "min_size_sqft greater than max_size_sqft"}}, summary.Errors)
	assert.Equal(t, 1, summary.CreatedRequirements)
	assert.Equal(t, 1, summary.CreatedOperators)
	assert.Equal(t, 0, summary.UpdatedOperators)
}

func TestIngest_OperatorFieldsAreCoalesced(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)
	ctx := context.Background()

	_, err := svc.Ingest(ctx, []map[string]string{
		row("Acme", ColSector, "Retail", ColWebsite, "https://acme.example"),
	})
	require.NoError(t, err)

	_, err = svc.Ingest(ctx, []map[string]string{
		row(" Acme ", ColSector, "", ColNotes, "Expanding north"),
	})
	require.NoError(t, err)

	op := store.operatorByName("Acme")
	require.NotNil(t, op)
	assert.Equal(t, "Retail", utils.Val(op.Sector))
	assert.Equal(t, "https://acme.example", utils.Val(op.Website))
	assert.Equal(t, "Expanding north", utils.Val(op.Notes))
	assert.Equal(t, 1, store.operatorCount())
}

func TestIngest_FieldCoercion(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	_, err := svc.Ingest(context.Background(), []map[string]string{
		row("Acme",
			ColMinSizeSqft, "1,200",
			ColMaxSizeSqft, "abc",
			ColPowerRequirementKW, "75.9",
			ColFrontageMin, "6.25",
			ColPreferredLocations, "London; Leeds | York,",
			ColPreferredUseClass, " E(b) ",
			ColReqNotes, " needs parking ",
			"unrelated_column", "ignored",
		),
	})
	require.NoError(t, err)

	profiles := store.profilesSnapshot()
	require.Len(t, profiles, 1)
	p := profiles[0]

	assert.Equal(t, utils.Ptr(1200), p.MinSqft)
	assert.Nil(t, p.MaxSqft)
	assert.Equal(t, utils.Ptr(75), p.PowerRequirementKW)
	require.NotNil(t, p.MinFrontage)
	assert.True(t, p.MinFrontage.Equal(decimal.RequireFromString("6.25")))
	assert.Equal(t, []string{"London", "Leeds", "York"}, p.PreferredLocations)
	assert.Empty(t, p.ExcludedLocations)
	assert.Equal(t, "E(b)", utils.Val(p.UseClass))
	assert.Equal(t, "needs parking", utils.Val(p.Notes))
}

func TestIngest_EmptyBatch(t *testing.T) {
	summary, err := NewIngestionService(newMemStore()).Ingest(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, summary.TotalRows)
	assert.Empty(t, summary.Errors)
}

func TestParseNonNegativeInt(t *testing.T) {
	tests := []struct {
		in   string
		want *int
	}{
		{"", nil},
		{"  ", nil},
		{"1200", utils.Ptr(1200)},
		{" 1,500 ", utils.Ptr(1500)},
		{"1200.9", utils.Ptr(1200)},
		{"-5", nil},
		{"12k", nil},
		{"0", utils.Ptr(0)},
		{"2147483647", utils.Ptr(2147483647)},
		{"2,147,483,647.9", utils.Ptr(2147483647)},
		{"2147483648", nil},
		{"3000000000", nil},
		{"99999999999999999999", nil},
		{"18446744073709551617", nil},
		{"1e30", nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, parseNonNegativeInt(tc.in), "input %q", tc.in)
	}
}

func TestParseNonNegativeDecimal(t *testing.T) {
	assert.Nil(t, parseNonNegativeDecimal(""))
	assert.Nil(t, parseNonNegativeDecimal("wide"))
	assert.Nil(t, parseNonNegativeDecimal("-1.5"))

	d := parseNonNegativeDecimal(" 4.75 ")
	require.NotNil(t, d)
	assert.Equal(t, "4.75", d.String())

	d = parseNonNegativeDecimal("5.555")
	require.NotNil(t, d)
	assert.Equal(t, "5.56", d.String())

	d = parseNonNegativeDecimal("99999999.99")
	require.NotNil(t, d)
	assert.Equal(t, "99999999.99", d.String())

	assert.Nil(t, parseNonNegativeDecimal("100000000"))
	assert.Nil(t, parseNonNegativeDecimal("99999999.999"))
	assert.Nil(t, parseNonNegativeDecimal("123456789012.5"))
}

func TestIngest_OutOfRangeNumbersBecomeAbsent(t *testing.T) {
	store := newMemStore()
	svc := NewIngestionService(store)

	summary, err := svc.Ingest(context.Background(), []map[string]string{
		row("Acme",
			ColMinSizeSqft, "3000000000",
			ColMaxSizeSqft, "18446744073709551617",
			ColPowerRequirementKW, "99999999999999999999",
			ColFrontageMin, "123456789012.5",
		),
		row("Globex", ColMinSizeSqft, "500"),
	})
	require.NoError(t, err)
	assert.Empty(t, summary.Errors)
	assert.Equal(t, 2, summary.CreatedRequirements)

	var acme models.RequirementProfile
	for _, p := range store.profilesSnapshot() {
		if store.operatorNameOf(p) == "Acme" {
			acme = p
		}
	}
	assert.Nil(t, acme.MinSqft)
	assert.Nil(t, acme.MaxSqft)
	assert.Nil(t, acme.PowerRequirementKW)
	assert.Nil(t, acme.MinFrontage)
}
