package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"sme-financial-health/internal/models"
	"sme-financial-health/internal/services/assessment"
	"sme-financial-health/internal/services/report"
	s3service "sme-financial-health/internal/services/s3"
	"sme-financial-health/internal/services/ses"
	"sme-financial-health/internal/utils"
)

// EmailReportRequest is the body of a report email request.
type EmailReportRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Format string `json:"format"`
}

// SharedReport describes an archived report.
type SharedReport struct {
	BusinessID string    `json:"business_id"`
	Format     string    `json:"format"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	Key        string    `json:"key"`
	ExpiresAt  time.Time `json:"expires_at"`
	Email      string    `json:"email,omitempty"`
	MessageID  string    `json:"message_id,omitempty"`
}

func (s *Server) render(f report.Format, out *assessment.Outcome) ([]byte, string, error) {
	data, err := s.reports.Render(f, out.Record, out.Analysis, out.Recommendations)
	if err != nil {
		return nil, "", err
	}
	return data, report.Filename(out.BusinessID, f, s.reports.Now()), nil
}

func (s *Server) fileReportHandler(f report.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := s.assessor.Assess(r.Context(), r.PathValue("business_id"))
		if err != nil {
			writeError(w, err)
			return
		}

		data, filename, err := s.render(f, out)
		if err != nil {
			writeError(w, fmt.Errorf("failed to generate %s report: %w", f, err))
			return
		}

		w.Header().Set("Content-Type", f.ContentType())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func (s *Server) jsonReportHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.assessor.Assess(r.Context(), r.PathValue("business_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	doc, err := s.reports.JSON(out.Record, out.Analysis, out.Recommendations)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: statusSuccess, Data: doc})
}

// shareReport renders the report in format and archives it.
func (s *Server) shareReport(r *http.Request, out *assessment.Outcome, format string) (*SharedReport, error) {
	if s.store == nil {
		return nil, fmt.Errorf("report storage: %w", models.ErrNotConfigured)
	}

	f, err := report.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	data, filename, err := s.render(f, out)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s report: %w", f, err)
	}

	link, err := s.store.ShareReport(r.Context(), out.BusinessID, filename, f.ContentType(), data, s.linkExpiry)
	if err != nil {
		return nil, err
	}

	return &SharedReport{
		BusinessID: out.BusinessID,
		Format:     string(f),
		Filename:   filename,
		URL:        link.URL,
		Key:        link.Key,
		ExpiresAt:  link.ExpiresAt,
	}, nil
}

func (s *Server) shareReportHandler(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, fmt.Errorf("report storage: %w", models.ErrNotConfigured))
		return
	}

	out, err := s.assessor.Assess(r.Context(), r.PathValue("business_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	shared, err := s.shareReport(r, out, r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: "Report archived",
		Data:    shared,
	})
}

func (s *Server) emailReportHandler(w http.ResponseWriter, r *http.Request) {
	if s.store == nil || s.mailer == nil {
		writeError(w, fmt.Errorf("report email: %w", models.ErrNotConfigured))
		return
	}

	var req EmailReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "Invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Status:  statusError,
			Message: "A valid email address is required",
			Details: err.Error(),
		})
		return
	}

	out, err := s.assessor.Assess(r.Context(), r.PathValue("business_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	shared, err := s.shareReport(r, out, req.Format)
	if err != nil {
		writeError(w, err)
		return
	}

	health := out.Analysis.FinancialHealth
	sent, err := s.mailer.SendReportEmail(r.Context(), ses.ReportEmailParams{
		To:               req.Email,
		BusinessID:       out.BusinessID,
		Industry:         out.Analysis.IndustryType,
		HealthScore:      health.HealthScore,
		RiskCategory:     string(health.RiskCategory),
		RiskColor:        report.RiskColor(health.RiskCategory),
		ExecutiveSummary: out.Recommendations.ExecutiveSummary,
		Format:           shared.Format,
		ReportURL:        shared.URL,
		ExpiresAt:        shared.ExpiresAt,
	})
	if err != nil {
		writeError(w, fmt.Errorf("failed to send report email: %w", err))
		return
	}

	shared.Email = req.Email
	shared.MessageID = sent.MessageID

	utils.GetLogger().Info("Report emailed",
		utils.String("business_id", out.BusinessID),
		utils.String("format", shared.Format),
		utils.String("message_id", sent.MessageID))

	writeJSON(w, http.StatusOK, Response{
		Status:  statusSuccess,
		Message: "Report sent to " + req.Email,
		Data:    shared,
	})
}

func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, fmt.Errorf("assessment history: %w", models.ErrNotConfigured))
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, Response{Status: statusError, Message: "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := s.history.History(r.Context(), r.PathValue("business_id"), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Status: statusSuccess,
		Data:   entries,
		Count:  count(len(entries)),
	})
}

var _ ReportStore = (*s3service.Service)(nil)
var _ Mailer = (*ses.Service)(nil)
