// Package handlers provides the HTTP API and the Lambda handlers for the
// financial health engine.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/report"
	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/services/ses"
	"sme-financial-health/internal/utils"
)

// APIVersion is reported by the health endpoints.
const APIVersion = "1.0.0"

const (
	statusSuccess = "success"
	statusError   = "error"
)

var validate = validator.New()

// ReportStore archives a rendered report and returns a download link.
type ReportStore interface {
	ShareReport(ctx context.Context, businessID, filename, contentType string, data []byte, expiry time.Duration) (*s3service.PresignedURLResult, error)
}

// Mailer delivers report summary emails.
type Mailer interface {
	SendReportEmail(ctx context.Context, params ses.ReportEmailParams) (*ses.SendEmailResult, error)
}

// HistoryStore reads the assessment log.
type HistoryStore interface {
	History(ctx context.Context, businessID string, limit int) ([]models.Assessment, error)
}

// HealthChecker reports database connectivity.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Options configures the API server. Optional collaborators left nil make
// their endpoints answer 503.
type Options struct {
	Assessor       *assessment.Service
	Reports        *report.Generator
	Store          ReportStore
	Mailer         Mailer
	History        HistoryStore
	DB             HealthChecker
	UploadDir      string
	MaxUploadBytes int64
	LinkExpiry     time.Duration
}

// Server holds all dependencies of the HTTP API.
type Server struct {
	assessor       *assessment.Service
	reports        *report.Generator
	store          ReportStore
	mailer         Mailer
	history        HistoryStore
	db             HealthChecker
	uploadDir      string
	maxUploadBytes int64
	linkExpiry     time.Duration
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	if opts.Reports == nil {
		opts.Reports = report.NewGenerator()
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 16 << 20
	}
	if opts.LinkExpiry <= 0 {
		opts.LinkExpiry = time.Hour
	}

	return &Server{
		assessor:       opts.Assessor,
		reports:        opts.Reports,
		store:          opts.Store,
		mailer:         opts.Mailer,
		history:        opts.History,
		db:             opts.DB,
		uploadDir:      opts.UploadDir,
		maxUploadBytes: opts.MaxUploadBytes,
		linkExpiry:     opts.LinkExpiry,
	}
}

// Response represents a standard API response
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

type route struct {
	method      string
	path        string
	description string
	handler     http.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{http.MethodGet, "/api/health", "Service health and database state", s.healthHandler},
		{http.MethodGet, "/api/analysis/{business_id}", "Financial analysis and recommendations for one business", s.analysisHandler},
		{http.MethodGet, "/api/businesses", "List businesses in the dataset", s.businessesHandler},
		{http.MethodPost, "/api/upload", "Upload a CSV or XLSX file and analyze every row", s.uploadHandler},
		{http.MethodGet, "/api/report/pdf/{business_id}", "Download a PDF report", s.fileReportHandler(report.FormatPDF)},
		{http.MethodGet, "/api/report/excel/{business_id}", "Download an Excel report", s.fileReportHandler(report.FormatExcel)},
		{http.MethodGet, "/api/report/json/{business_id}", "JSON report", s.jsonReportHandler},
		{http.MethodPost, "/api/report/share/{business_id}", "Archive a report to S3 and return a download link", s.shareReportHandler},
		{http.MethodPost, "/api/report/email/{business_id}", "Email a report summary with a download link", s.emailReportHandler},
		{http.MethodGet, "/api/history/{business_id}", "Assessment history for one business", s.historyHandler},
		{http.MethodGet, "/api/languages", "Supported languages", s.languagesHandler},
		{http.MethodGet, "/api/translate/{key}", "Translate a display label", s.translateHandler},
		{http.MethodPost, "/api/batch-analysis", "Analyze several businesses", s.batchAnalysisHandler},
		{http.MethodGet, "/api/dashboard", "Dataset totals and risk distribution", s.dashboardHandler},
		{http.MethodGet, "/api/docs", "This endpoint listing", s.docsHandler},
	}
}

// Routes returns the API handler with request logging.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	for _, rt := range s.routes() {
		mux.HandleFunc(rt.method+" "+rt.path, rt.handler)
	}
	return logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		utils.GetLogger().Info("Request handled",
			utils.String("method", r.Method),
			utils.String("path", r.URL.Path),
			utils.Int("status", rec.status),
			utils.Duration("duration", time.Since(start)),
		)
	})
}

func count(n int) *int {
	return &n
}

// statusFor maps an error to its HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrBusinessNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrEmptyBusinessID),
		errors.Is(err, models.ErrInvalidRevenue),
		errors.Is(err, models.ErrInvalidExpenses),
		errors.Is(err, models.ErrUnsupportedFile),
		errors.Is(err, models.ErrPDFUpload),
		errors.Is(err, utils.ErrMissingColumns),
		errors.Is(err, utils.ErrNoDataRows),
		errors.Is(err, utils.ErrEmptyCSV),
		errors.Is(err, report.ErrUnknownFormat),
		errors.Is(err, report.ErrInsufficientData),
		errors.Is(err, assessment.ErrAnalysisFailed):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorBody builds the error envelope for err. Server errors keep the
// cause in details.
func errorBody(err error) (int, Response) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		return status, Response{Status: statusError, Message: "Internal server error", Details: err.Error()}
	}
	return status, Response{Status: statusError, Message: err.Error()}
}

func writeError(w http.ResponseWriter, err error) {
	status, body := errorBody(err)
	if status == http.StatusInternalServerError {
		utils.GetLogger().Error("Request failed", utils.Error(err))
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
