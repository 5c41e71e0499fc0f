package database_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/analysis"
	"sme-financial-health/internal/services/database"
	"sme-financial-health/internal/services/dataset"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	// Skip integration tests if no database URL is provided
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		os.Exit(0)
	}

	var err error
	testDB, err = database.NewFromURL(context.Background(), url)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}
	if err := testDB.Migrate(context.Background()); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

var _ dataset.Source = (*database.BusinessRepository)(nil)

func TestDatabaseConnection(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.NoError(t, testDB.HealthCheck(ctx))
}

func TestBusinessRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := database.NewBusinessRepository(testDB)

	id := "TEST_" + uuid.NewString()
	record := &models.FinancialRecord{
		BusinessID:          id,
		IndustryType:        models.IndustryLogistics,
		AnnualRevenue:       1_500_000,
		TotalExpenses:       1_200_000,
		CurrentAssets:       models.Float(400_000),
		CurrentLiabilities:  models.Float(250_000),
		DSCR:                models.Float(1.3),
		GSTComplianceStatus: models.GSTDelayed,
		Source:              models.SourceCSVUpload,
	}

	result, err := repo.BulkUpsert(ctx, []*models.FinancialRecord{record})
	require.NoError(t, err)
	assert.Equal(t, 1, result.InsertedCount)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.IndustryLogistics, got.IndustryType)
	assert.Equal(t, 1.3, models.Value(got.DSCR))
	assert.Nil(t, got.TotalAssets)

	record.AnnualRevenue = 1_600_000
	require.NoError(t, repo.Upsert(ctx, record))
	got, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, float64(1_600_000), got.AnnualRevenue)

	_, err = repo.Get(ctx, "TEST_missing_"+uuid.NewString())
	assert.ErrorIs(t, err, models.ErrBusinessNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)

	_, err = testDB.ExecContext(ctx, "DELETE FROM businesses WHERE business_id = $1", id)
	require.NoError(t, err)
}

func TestAssessmentRepository_History(t *testing.T) {
	ctx := context.Background()
	repo := database.NewAssessmentRepository(testDB)

	id := "TEST_" + uuid.NewString()
	a := analysis.NewAnalyzer().Analyze(&models.FinancialRecord{BusinessID: id, AnnualRevenue: 1_000_000, TotalExpenses: 800_000})
	require.NotNil(t, a)

	first, err := repo.Record(ctx, a, "test")
	require.NoError(t, err)
	second, err := repo.Record(ctx, a, "test")
	require.NoError(t, err)

	history, err := repo.History(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second, history[0].ID)
	assert.Equal(t, first, history[1].ID)
	assert.Equal(t, a.FinancialHealth.RiskCategory, history[0].RiskCategory)
	assert.JSONEq(t, `"`+id+`"`, string(mustField(t, history[0].Analysis, "business_id")))

	_, err = testDB.ExecContext(ctx, "DELETE FROM assessments WHERE business_id = $1", id)
	require.NoError(t, err)
}

func mustField(t *testing.T, raw []byte, key string) []byte {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	return fields[key]
}
