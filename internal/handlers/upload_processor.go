package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/assessment"
	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/utils"
)

const maxReportedErrors = 10

// FileStore reads uploaded objects and moves them once handled.
type FileStore interface {
	DownloadFile(ctx context.Context, key string) ([]byte, error)
	MoveFile(ctx context.Context, sourceKey, destKey string) error
}

// BusinessWriter stores uploaded business records.
type BusinessWriter interface {
	BulkUpsert(ctx context.Context, records []*models.FinancialRecord) (*models.BulkInsertResult, error)
}

// UploadProcessorHandler handles S3 events for uploaded statements.
type UploadProcessorHandler struct {
	files      FileStore
	assessor   *assessment.Service
	businesses BusinessWriter
}

// NewUploadProcessorHandler creates a new upload processor. businesses may be nil.
func NewUploadProcessorHandler(files FileStore, assessor *assessment.Service, businesses BusinessWriter) *UploadProcessorHandler {
	return &UploadProcessorHandler{
		files:      files,
		assessor:   assessor,
		businesses: businesses,
	}
}

// ProcessedBusiness is the headline result for one uploaded business.
type ProcessedBusiness struct {
	BusinessID   string              `json:"business_id"`
	HealthScore  int                 `json:"health_score"`
	RiskCategory models.RiskCategory `json:"risk_category"`
}

// UploadProcessResult is the result of processing an uploaded file.
type UploadProcessResult struct {
	Message    string              `json:"message"`
	Key        string              `json:"key,omitempty"`
	Stored     int                 `json:"stored"`
	Assessed   int                 `json:"assessed"`
	Failed     int                 `json:"failed"`
	Businesses []ProcessedBusiness `json:"businesses,omitempty"`
	Errors     []string            `json:"errors,omitempty"`
}

// UploadBatchResult summarizes every object in one S3 notification.
type UploadBatchResult struct {
	Message string                `json:"message"`
	Files   []UploadProcessResult `json:"files,omitempty"`
}

// Handle processes every uploaded object in an S3 event. A failing object
// does not stop the rest; all failures are joined into the returned error.
func (h *UploadProcessorHandler) Handle(ctx context.Context, s3Event events.S3Event) (UploadBatchResult, error) {
	if len(s3Event.Records) == 0 {
		return UploadBatchResult{Message: "No records to process"}, nil
	}

	batch := UploadBatchResult{Files: make([]UploadProcessResult, 0, len(s3Event.Records))}
	var errs []error
	for _, record := range s3Event.Records {
		result, err := h.processObject(ctx, record)
		if err != nil {
			errs = append(errs, err)
			result.Message = "Processing failed"
			result.Errors = []string{err.Error()}
		}
		batch.Files = append(batch.Files, result)
	}

	batch.Message = fmt.Sprintf("Processed %d of %d uploads", len(s3Event.Records)-len(errs), len(s3Event.Records))
	return batch, errors.Join(errs...)
}

func (h *UploadProcessorHandler) processObject(ctx context.Context, record events.S3EventRecord) (UploadProcessResult, error) {
	logger := utils.GetLogger()

	key, err := url.QueryUnescape(record.S3.Object.Key)
	if err != nil {
		return UploadProcessResult{Key: record.S3.Object.Key}, fmt.Errorf("failed to decode S3 key: %w", err)
	}

	if !strings.HasPrefix(key, s3service.UploadPrefix) {
		logger.Info("Skipping object outside uploads", utils.String("key", key))
		return UploadProcessResult{Message: "Skipped", Key: key}, nil
	}

	logger.Info("Processing upload",
		utils.String("bucket", record.S3.Bucket.Name),
		utils.String("key", key))

	content, err := h.files.DownloadFile(ctx, key)
	if err != nil {
		logger.Error("Failed to download upload", utils.Error(err))
		return UploadProcessResult{Key: key}, fmt.Errorf("failed to download upload %s: %w", key, err)
	}

	loaded, err := utils.LoadUpload(key, bytes.NewReader(content))
	if err != nil {
		logger.Warn("Upload rejected", utils.String("key", key), utils.Error(err))
		h.archive(ctx, key, s3service.FailedKey(key))
		return UploadProcessResult{
			Message: "No valid records found in upload",
			Key:     key,
			Errors:  limitErrors([]string{err.Error()}),
		}, nil
	}

	errs := loaded.RowErrorMessages()
	result := UploadProcessResult{
		Message: "Upload processed successfully",
		Key:     key,
		Failed:  len(loaded.RowErrors),
	}

	if h.businesses != nil {
		stored, err := h.businesses.BulkUpsert(ctx, loaded.Records)
		if err != nil {
			logger.Error("Failed to store businesses", utils.Error(err))
			return UploadProcessResult{Key: key}, fmt.Errorf("failed to store businesses from %s: %w", key, err)
		}
		result.Stored = stored.InsertedCount
		errs = append(errs, stored.Errors...)
	}

	for _, rec := range loaded.Records {
		out, err := h.assessor.AssessRecord(ctx, rec)
		if err != nil {
			result.Failed++
			errs = append(errs, fmt.Sprintf("%s: %v", rec.BusinessID, err))
			continue
		}
		result.Assessed++
		result.Businesses = append(result.Businesses, ProcessedBusiness{
			BusinessID:   out.BusinessID,
			HealthScore:  out.Analysis.FinancialHealth.HealthScore,
			RiskCategory: out.Analysis.FinancialHealth.RiskCategory,
		})
	}

	logger.Info("Processed upload",
		utils.String("key", key),
		utils.Int("assessed", result.Assessed),
		utils.Int("failed", result.Failed))

	h.archive(ctx, key, s3service.ProcessedKey(key))

	result.Errors = limitErrors(errs)
	return result, nil
}

// archive moves the upload out of uploads/. Failures are logged only.
func (h *UploadProcessorHandler) archive(ctx context.Context, key, dest string) {
	if err := h.files.MoveFile(ctx, key, dest); err != nil {
		utils.GetLogger().Warn("Failed to archive upload",
			utils.String("key", key),
			utils.String("dest", dest),
			utils.Error(err))
	}
}

func limitErrors(errs []string) []string {
	if len(errs) > maxReportedErrors {
		return errs[:maxReportedErrors]
	}
	return errs
}
