package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/utils"
)

// UploadResponse contains upload processing results
type UploadResponse struct {
	FilePath     string                `json:"file_path,omitempty"`
	TotalRecords int                   `json:"total_records"`
	Results      []*assessment.Outcome `json:"results"`
	RejectedRows []string              `json:"rejected_rows,omitempty"`
	ProcessingMs int64                 `json:"processing_ms"`
}

func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := utils.GetLogger()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "No file provided",
			Details: err.Error(),
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "No file provided"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "No file selected"})
		return
	}

	logger.Info("Processing upload",
		utils.String("filename", header.Filename),
		utils.Int64("size", header.Size))

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	savedPath, err := s.saveUpload(header.Filename, content, start)
	if err != nil {
		logger.Warn("Failed to save upload", utils.Error(err))
	}

	loaded, err := utils.LoadUpload(header.Filename, bytes.NewReader(content))
	if err != nil {
		writeUploadError(w, err)
		return
	}

	results := make([]*assessment.Outcome, 0, len(loaded.Records))
	rejected := loaded.RowErrorMessages()
	for _, record := range loaded.Records {
		out, err := s.assessor.AssessRecord(r.Context(), record)
		if err != nil {
			rejected = append(rejected, fmt.Sprintf("%s: %v", record.BusinessID, err))
			continue
		}
		results = append(results, out)
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: fmt.Sprintf("Processed %d records", len(results)),
		Data: UploadResponse{
			FilePath:     savedPath,
			TotalRecords: len(loaded.Records),
			Results:      results,
			RejectedRows: rejected,
			ProcessingMs: time.Since(start).Milliseconds(),
		},
		Count: count(len(results)),
	})
}

func writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrPDFUpload):
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: models.ErrPDFUpload.Error()})
	case errors.Is(err, models.ErrUnsupportedFile):
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "Unsupported file type. Please upload CSV or XLSX",
			Details: err.Error(),
		})
	case errors.Is(err, utils.ErrMissingColumns), errors.Is(err, utils.ErrNoDataRows):
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "Data validation failed",
			Details: err.Error(),
		})
	default:
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "Failed to load file",
			Details: err.Error(),
		})
	}
}

// saveUpload keeps a copy of the upload under the upload directory. An
// empty directory disables saving.
func (s *Server) saveUpload(filename string, content []byte, at time.Time) (string, error) {
	if s.uploadDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(s.uploadDir, at.Format("20060102_150405_")+sanitizeFilename(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
