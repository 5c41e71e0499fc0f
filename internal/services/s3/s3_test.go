package s3service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	key := UploadKey(`C:\exports\q1 statements.csv`)
	assert.True(t, strings.HasPrefix(key, UploadPrefix))
	assert.True(t, strings.HasSuffix(key, "-q1 statements.csv"))
	assert.NotEqual(t, key, UploadKey("q1 statements.csv"))

	assert.Equal(t, "processed/abc-data.csv", ProcessedKey("uploads/abc-data.csv"))
	assert.Equal(t, "failed/abc-data.csv", FailedKey("uploads/abc-data.csv"))

	report := ReportKey("SME_001", "SME_001_financial_report_20240315.pdf")
	assert.True(t, strings.HasPrefix(report, "reports/SME_001/"))
	assert.True(t, strings.HasSuffix(report, "/SME_001_financial_report_20240315.pdf"))
}

func TestNewService_RequiresBucket(t *testing.T) {
	_, err := NewService(context.Background(), "ap-south-1", "")
	assert.ErrorIs(t, err, ErrNoBucket)
}
