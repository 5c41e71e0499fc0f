package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/dataset"
)

func TestMemorySource(t *testing.T) {
	ctx := context.Background()
	src := dataset.NewMemorySource(
		&models.FinancialRecord{BusinessID: "SME_002", IndustryType: models.IndustryRetail, AnnualRevenue: 200},
		&models.FinancialRecord{BusinessID: "SME_001", AnnualRevenue: 100},
		&models.FinancialRecord{BusinessID: "SME_002", IndustryType: models.IndustryServices, AnnualRevenue: 300},
	)

	assert.Equal(t, 2, src.Len())

	r, err := src.Get(ctx, " SME_002 ")
	require.NoError(t, err)
	assert.Equal(t, models.IndustryServices, r.IndustryType)

	r.AnnualRevenue = 1
	again, err := src.Get(ctx, "SME_002")
	require.NoError(t, err)
	assert.Equal(t, float64(300), again.AnnualRevenue, "Get returns a copy")

	_, err = src.Get(ctx, "SME_404")
	assert.ErrorIs(t, err, models.ErrBusinessNotFound)

	list, err := src.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "SME_002", list[0].BusinessID)
	assert.Equal(t, "SME_001", list[1].BusinessID)
}

func TestInferMissing(t *testing.T) {
	t.Run("revenue only", func(t *testing.T) {
		r := &models.FinancialRecord{BusinessID: "SME_1", AnnualRevenue: 1_000_000}
		dataset.InferMissing(r)

		assert.InDelta(t, 200_000, models.Value(r.CurrentAssets), 1e-6)
		assert.InDelta(t, 100_000, models.Value(r.CurrentLiabilities), 1e-6)
		assert.InDelta(t, 1_200_000, models.Value(r.TotalAssets), 1e-6)
		assert.InDelta(t, 360_000, models.Value(r.TotalLiabilities), 1e-6)
		assert.InDelta(t, 50_000, models.Value(r.Inventory), 1e-6)
	})

	t.Run("ratios supplied", func(t *testing.T) {
		r := &models.FinancialRecord{
			BusinessID:      "SME_2",
			AnnualRevenue:   1_000_000,
			CurrentRatio:    models.Float(2),
			DebtEquityRatio: models.Float(0.5),
		}
		dataset.InferMissing(r)

		assert.InDelta(t, 400_000, models.Value(r.CurrentAssets), 1e-6)
		assert.InDelta(t, 200_000, models.Value(r.CurrentLiabilities), 1e-6)
		assert.InDelta(t, 420_000, models.Value(r.TotalLiabilities), 1e-6)
	})

	t.Run("ratio with liabilities", func(t *testing.T) {
		r := &models.FinancialRecord{
			BusinessID:         "SME_3",
			AnnualRevenue:      1_000_000,
			CurrentRatio:       models.Float(1.5),
			CurrentLiabilities: models.Float(80_000),
		}
		dataset.InferMissing(r)
		assert.InDelta(t, 120_000, models.Value(r.CurrentAssets), 1e-6)
	})

	t.Run("zero revenue", func(t *testing.T) {
		r := &models.FinancialRecord{BusinessID: "SME_4"}
		dataset.InferMissing(r)

		assert.Equal(t, 0.0, models.Value(r.CurrentAssets))
		assert.Equal(t, 1.0, models.Value(r.CurrentLiabilities))
		assert.Equal(t, 0.0, models.Value(r.TotalAssets))
		assert.Equal(t, 0.0, models.Value(r.TotalLiabilities))
	})

	t.Run("supplied values kept", func(t *testing.T) {
		r := &models.FinancialRecord{BusinessID: "SME_5", AnnualRevenue: 1000, TotalAssets: models.Float(5000), Inventory: models.Float(0)}
		dataset.InferMissing(r)
		assert.Equal(t, 5000.0, models.Value(r.TotalAssets))
		assert.Equal(t, 0.0, models.Value(r.Inventory))
		assert.InDelta(t, 1500, models.Value(r.TotalLiabilities), 1e-6)
	})
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.csv")
	content := `business_id,industry_type,annual_revenue,total_expenses,current_ratio,debt_equity_ratio,dscr,gst_compliance_status,financial_health_score
SME_001,Retail,1000000,800000,2.0,0.5,1.4,Compliant,78
SME_002,Manufacturing,2500000,2300000,0.9,2.1,0.8,Delayed,41
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	src, err := dataset.LoadCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, src.Len())

	r, err := src.Get(context.Background(), "SME_002")
	require.NoError(t, err)
	assert.Equal(t, models.SourceDataset, r.Source)
	assert.Equal(t, models.GSTDelayed, r.GSTComplianceStatus)
	assert.Equal(t, 0.8, models.Value(r.DSCR))
	require.NotNil(t, r.TotalAssets)
	assert.InDelta(t, 3_000_000, *r.TotalAssets, 1e-6)

	list, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 78.0, models.Value(list[0].FinancialHealthScore))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := dataset.LoadCSV(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestRepairText(t *testing.T) {
	in := "business_id,industry_type,annual_revenue\r\n" +
		"SME_001,Retail,100 SME_002,Services,200SME_003,Logistics,\n" +
		"300\n\n" +
		"   SME_004,Agriculture,400   "

	out, err := dataset.RepairText(in)
	require.NoError(t, err)
	assert.Equal(t, "business_id,industry_type,annual_revenue\n"+
		"SME_001,Retail,100\n"+
		"SME_002,Services,200\n"+
		"SME_003,Logistics, 300\n"+
		"SME_004,Agriculture,400", out)
}

func TestRepairText_LeadingFragment(t *testing.T) {
	out, err := dataset.RepairText("h1,h2\norphan,1\nmore\nSME_9,x")
	require.NoError(t, err)
	assert.Equal(t, "h1,h2\norphan,1 more\nSME_9,x", out)
}

func TestRepairText_TooSmall(t *testing.T) {
	_, err := dataset.RepairText("business_id,annual_revenue")
	assert.ErrorIs(t, err, dataset.ErrDatasetTooSmall)
}
