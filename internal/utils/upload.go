package utils

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"sme-financial-health/internal/models"
)

// UploadResult holds the records accepted from an uploaded file and the
// rows that were rejected.
type UploadResult struct {
	Records   []*models.FinancialRecord
	RowErrors []error
}

// RowErrorMessages returns the rejected row errors as strings.
func (u *UploadResult) RowErrorMessages() []string {
	msgs := make([]string, 0, len(u.RowErrors))
	for _, err := range u.RowErrors {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

// IsSupportedUpload reports whether filename has an extension LoadUpload accepts.
func IsSupportedUpload(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// LoadUpload parses an uploaded CSV or Excel file into financial records.
// PDF statements are rejected with models.ErrPDFUpload.
func LoadUpload(filename string, r io.Reader) (*UploadResult, error) {
	var (
		records []*models.FinancialRecord
		errs    []error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".csv":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read upload: %w", err)
		}
		records, errs = NewCSVParser().ParseCSV(string(data))
	case ".xlsx", ".xlsm":
		rows, err := ReadXLSX(r)
		if err != nil {
			return nil, err
		}
		records, errs = NewXLSXParser().ParseRows(rows)
	case ".pdf":
		return nil, models.ErrPDFUpload
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedFile, ext)
	}

	if len(records) == 0 {
		return nil, errors.Join(errs...)
	}

	return &UploadResult{Records: records, RowErrors: errs}, nil
}
